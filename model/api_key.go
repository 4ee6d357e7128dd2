package model

import (
	"time"

	"github.com/google/uuid"
)

type APIKey struct {
	ID        int64     `json:"id" db:"id"`
	Key       string    `json:"api_key" db:"api_key"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewAPIKey creates a key record with a value generated at call time. Every
// stored row must get its own random key, never a shared default.
func NewAPIKey() *APIKey {
	now := time.Now()
	return &APIKey{
		Key:       uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
