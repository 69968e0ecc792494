package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := fmt.Errorf("insert employee: %w", &pq.Error{Code: "23505"})
	fk := &pq.Error{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40001"}))
	assert.Equal(t, pq.ErrorCode(""), Code(errors.New("plain")))
}
