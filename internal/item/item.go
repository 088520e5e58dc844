package item

import (
	"crypto/rand"
	"strings"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/todo/internal/errors"
)

// Item is a single todo entry.
type Item struct {
	// ID is a ULID assigned at creation; it is the only lookup key in storage
	ID ulid.ULID

	// Name is the display text, fixed at creation
	Name string

	// Completed is flipped by toggling
	Completed bool
}

// New creates an open item with a fresh ID.
// Returns ErrInvalidRequest if name is blank or contains control characters.
func New(name string) (Item, error) {
	if err := ValidateName(name); err != nil {
		return Item{}, err
	}
	id, err := NewID()
	if err != nil {
		return Item{}, errors.NewInternal(err)
	}
	return Item{ID: id, Name: name}, nil
}

// NewID generates a ULID from crypto/rand with monotonic entropy.
func NewID() (ulid.ULID, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.New(ulid.Timestamp(time.Now()), entropy)
}

// ValidateName rejects names that are empty after trimming whitespace or
// that contain control characters. A name always renders as a single line.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewInvalidRequest("name must not be empty")
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return errors.NewInvalidRequest("name must not contain control characters")
	}
	return nil
}

// ParseID parses the canonical 26-character ULID string form.
func ParseID(s string) (ulid.ULID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ulid.ULID{}, errors.NewInvalidRequest("id is required")
	}
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return ulid.ULID{}, errors.NewInvalidRequest("invalid id " + s + ": " + err.Error())
	}
	return id, nil
}

// Toggled returns a copy with Completed flipped.
func (it Item) Toggled() Item {
	it.Completed = !it.Completed
	return it
}
