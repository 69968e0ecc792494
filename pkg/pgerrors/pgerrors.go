package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые обрабатываются репозиториями
const (
	CodeUniqueViolation      pq.ErrorCode = "23505"
	CodeForeignKeyViolation  pq.ErrorCode = "23503"
	CodeSerializationFailure pq.ErrorCode = "40001"
)

// Code возвращает код ошибки PostgreSQL или пустую строку
func Code(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// IsUniqueViolation нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

// IsForeignKeyViolation нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool {
	return Code(err) == CodeForeignKeyViolation
}

// IsSerializationFailure конфликт сериализуемой транзакции
func IsSerializationFailure(err error) bool {
	return Code(err) == CodeSerializationFailure
}
