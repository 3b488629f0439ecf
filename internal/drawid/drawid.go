// Package drawid generates identifiers for individual team draws so that a
// rendered team list can be correlated with the log line that produced it.
package drawid

import (
	"encoding/base32"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32 alphabet, lower case.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded draw ID.
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator produces time-ordered draw IDs.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a generator reading entropy from r. A nil reader
// uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// New returns a draw ID from the default generator.
func New() string {
	return NewGenerator(nil).New()
}

// New returns a UUIDv7 encoded as 26 base32 characters. It falls back to a
// random v4 UUID if the entropy source fails.
func (g *Generator) New() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		id = uuid.New()
	}
	return encoding.EncodeToString(id[:])
}

// Validate checks that id is a well-formed draw ID.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("draw ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	if _, err := encoding.DecodeString(id); err != nil {
		return fmt.Errorf("decode draw ID: %w", err)
	}
	return nil
}
