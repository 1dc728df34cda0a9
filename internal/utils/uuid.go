package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered record ids (UUIDv7), so ids of purchases
// and tips sort in creation order.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7 string, or a random UUIDv4 when the v7 source
// fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
