package uuidgen

import (
	"github.com/google/uuid"
	"github.com/judoclub/clubsite/internal/domain/contract"
)

// Generator implements the contract.IUUIDGenerator interface.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new random (v4) UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

// IsValid reports whether s parses as a UUID. Used to accept client-provided request ids.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Ensure Generator implements the contract.IUUIDGenerator interface
var _ contract.IUUIDGenerator = (*Generator)(nil)
