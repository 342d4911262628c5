// Package storage реализует слой долговременного key-value хранилища
// сайта Noire. Все записи — JSON-значения под именованными ключами.
// Контракт чтения терпим к мусору: отсутствие ключа — это found=false,
// повреждённый payload — ошибка, которую типизированные хранилища
// маскируют fallback-значением и не поднимают выше.
package storage

import "context"

// Adapter описывает минимальный контракт key-value хранилища записей.
type Adapter interface {
	// Get читает значение по ключу и распаковывает его в result.
	// Возвращает found=false, если ключа нет.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сериализует значение и сохраняет его под ключом,
	// перезаписывая прежнее.
	Set(ctx context.Context, key string, value any) error
}
