package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator produces friend ids.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates random (v4) UUIDs.
type UUIDGenerator struct{}

// Generate returns a new UUID string.
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// ULIDGenerator generates lexicographically sortable ULIDs.
type ULIDGenerator struct{}

// Generate returns a new ULID string.
func (ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

// NewIDGenerator returns the generator for a config id_format value.
// An empty format selects UUIDs.
func NewIDGenerator(format string) (IDGenerator, error) {
	switch format {
	case "", "uuid":
		return UUIDGenerator{}, nil
	case "ulid":
		return ULIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown id format %q", ErrValidation, format)
	}
}
