// internal/core/domain/sale.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records a single purchase of a product by a client. Sales are
// history records; corrections go through the same partial-update path
// as the other entities.
type Sale struct {
	ID        uuid.UUID       `json:"id"`
	ClientID  uuid.UUID       `json:"client_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	SaleDate  time.Time       `json:"sale_date"`
	CreatedAt time.Time       `json:"created_at"`
}

// Validate performs domain validation on the sale.
func (s *Sale) Validate() error {
	if s.ClientID == uuid.Nil {
		return fmt.Errorf("%w: client_id is required", ErrInvalidInput)
	}
	if s.ProductID == uuid.Nil {
		return fmt.Errorf("%w: product_id is required", ErrInvalidInput)
	}
	if s.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if s.Total.IsNegative() {
		return fmt.Errorf("%w: total cannot be negative", ErrInvalidInput)
	}
	return nil
}

// PrepareForStorage assigns the identifier and defaults the sale date to
// creation time when absent.
func (s *Sale) PrepareForStorage() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now()
	if s.SaleDate.IsZero() {
		s.SaleDate = now
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
}

// SalePatch carries the optional per-field values of a partial update.
type SalePatch struct {
	ClientID  *uuid.UUID       `json:"client_id,omitempty"`
	ProductID *uuid.UUID       `json:"product_id,omitempty"`
	Quantity  *int             `json:"quantity,omitempty"`
	Total     *decimal.Decimal `json:"total,omitempty"`
	SaleDate  *time.Time       `json:"sale_date,omitempty"`
}

// IsEmpty reports whether the patch supplies no fields.
func (p SalePatch) IsEmpty() bool {
	return p.ClientID == nil && p.ProductID == nil && p.Quantity == nil &&
		p.Total == nil && p.SaleDate == nil
}

// Validate rejects supplied-but-invalid field values.
func (p SalePatch) Validate() error {
	if p.ClientID != nil && *p.ClientID == uuid.Nil {
		return fmt.Errorf("%w: client_id cannot be nil", ErrInvalidInput)
	}
	if p.ProductID != nil && *p.ProductID == uuid.Nil {
		return fmt.Errorf("%w: product_id cannot be nil", ErrInvalidInput)
	}
	if p.Quantity != nil && *p.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if p.Total != nil && p.Total.IsNegative() {
		return fmt.Errorf("%w: total cannot be negative", ErrInvalidInput)
	}
	return nil
}
