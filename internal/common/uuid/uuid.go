package uuid

import (
	"encoding/hex"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/arcade/internal/common/uuid KeyGenerator

// KeyGenerator produces unique opaque keys
type KeyGenerator interface {
	NewKey() string
}

// DefaultKeyGenerator issues random v4 UUIDs as 32 hex characters.
// The compact form keeps keys free of separators so they can be embedded in component IDs.
type DefaultKeyGenerator struct{}

func New() *DefaultKeyGenerator {
	return &DefaultKeyGenerator{}
}

// NewKey returns a new random key
func (d *DefaultKeyGenerator) NewKey() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
