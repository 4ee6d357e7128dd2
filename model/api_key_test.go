package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewAPIKeyGeneratesFreshValue(t *testing.T) {
	first := NewAPIKey()
	second := NewAPIKey()

	assert.NotEmpty(t, first.Key)
	assert.NotEqual(t, first.Key, second.Key)

	_, err := uuid.Parse(first.Key)
	assert.NoError(t, err)

	assert.WithinDuration(t, time.Now(), first.CreatedAt, time.Second)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}
