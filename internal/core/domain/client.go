// internal/core/domain/client.go
package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Client represents a customer of the retail operation.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate performs domain validation on the client.
func (c *Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if c.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: malformed email %q", ErrInvalidInput, c.Email)
	}
	return nil
}

// PrepareForStorage assigns the identifier and creation timestamp.
func (c *Client) PrepareForStorage() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}

// ClientPatch carries the optional per-field values of a partial update.
// A nil field means "leave the current value unchanged".
type ClientPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// IsEmpty reports whether the patch supplies no fields.
func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil
}

// Validate rejects supplied-but-invalid field values.
func (p ClientPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if p.Email != nil {
		if _, err := mail.ParseAddress(*p.Email); err != nil {
			return fmt.Errorf("%w: malformed email %q", ErrInvalidInput, *p.Email)
		}
	}
	return nil
}
