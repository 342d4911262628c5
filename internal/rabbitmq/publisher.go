package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/nikaa770/noire-backend/internal/models"
)

// ReservationEvent — конверт события о новой заявке.
type ReservationEvent struct {
	EventID     string             `json:"event_id"`
	OccurredAt  time.Time          `json:"occurred_at"`
	Reservation models.Reservation `json:"reservation"`
}

// Publisher публикует события бронирования в exchange.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher создает Publisher поверх открытого канала.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// PublishReservationCreated публикует событие о созданной заявке.
func (p *Publisher) PublishReservationCreated(res models.Reservation) error {
	const op = "rabbitmq.PublishReservationCreated"

	event := ReservationEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Reservation: res,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = p.ch.Publish(
		Exchange,
		"created",
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
