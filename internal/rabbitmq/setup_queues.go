package rabbitmq

// Exchange — exchange событий бронирования.
const Exchange = "reservations"

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetReservationQueues возвращает очереди потребителей событий.
func GetReservationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "reservations.created", RoutingKey: "created"},
	}
}
