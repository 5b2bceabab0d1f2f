package utils

import "github.com/google/uuid"

// TokenSource mints post identifiers and sortable modification stamps.
type TokenSource interface {
	NewID() string
	NewStamp() string
}

// UUIDTokens mints random v4 ids and time-ordered v7 stamps.
// v7 strings compare lexically in creation order and are monotonic per process.
type UUIDTokens struct{}

func (UUIDTokens) NewID() string {
	return uuid.NewString()
}

func (UUIDTokens) NewStamp() string {
	return uuid.Must(uuid.NewV7()).String()
}
