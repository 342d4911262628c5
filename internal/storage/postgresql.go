package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage инкапсулирует соединение с PostgreSQL и реализует Adapter
// поверх единственной таблицы noire_records (key text primary key,
// value text с JSON-содержимым).
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

// Get читает JSON-значение по ключу. Отсутствие строки — не ошибка.
func (s *Storage) Get(ctx context.Context, key string, result any) (bool, error) {
	const op = "storage.Get"

	query := `SELECT value FROM noire_records WHERE key = $1`
	var raw string
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal([]byte(raw), result); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сохраняет JSON-значение под ключом, перезаписывая прежнее.
func (s *Storage) Set(ctx context.Context, key string, value any) error {
	const op = "storage.Set"

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	query := `INSERT INTO noire_records (key, value) VALUES ($1, $2)
			  ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := s.DB.ExecContext(ctx, query, key, string(raw)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
