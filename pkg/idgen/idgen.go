package idgen

import "github.com/google/uuid"

// UUIDGenerator генерирует строковые идентификаторы UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID в каноническом виде
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}
