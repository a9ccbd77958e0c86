// Package application implements the order processing pipeline: stateful
// validation, price calculation, ingredient aggregation, and the
// processor that sequences them over one batch.
package application

import (
	"fmt"
	"strings"
	"time"

	catalogdomain "github.com/zngreg/pizzeria-orders/internal/domains/catalog/domain"
	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
)

// Validator checks orders against the catalog and the business rules.
// It keeps the set of order ids it has already seen, so duplicate ids
// across calls are rejected; that state is scoped to one validator
// instance, and a fresh instance must be used per run.
type Validator struct {
	catalog *catalogdomain.Catalog
	seen    map[string]struct{}
	now     func() time.Time
}

// ValidatorOption customizes a Validator.
type ValidatorOption func(*Validator)

// WithClock overrides the wall clock used for the timestamp checks.
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// NewValidator creates a validator with an empty seen-set.
func NewValidator(catalog *catalogdomain.Catalog, opts ...ValidatorOption) *Validator {
	v := &Validator{
		catalog: catalog,
		seen:    make(map[string]struct{}),
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// Validate runs the checks in a fixed order and stops at the first
// failure. The duplicate check registers the order id even when a later
// check fails, so re-validating the same order always fails as a
// duplicate.
func (v *Validator) Validate(order *domain.Order) domain.ValidationResult {
	if order == nil {
		return invalid("Order is null.")
	}

	if _, dup := v.seen[order.ID]; dup {
		return invalid(fmt.Sprintf("Duplicate OrderId found: %s", order.ID))
	}
	v.seen[order.ID] = struct{}{}

	if strings.TrimSpace(order.ID) == "" {
		return invalid("Order ID is null or empty.")
	}

	if len(order.Lines) == 0 {
		return invalid("Products list is null or empty.")
	}

	for _, line := range order.Lines {
		if strings.TrimSpace(line.ProductID) == "" || !v.catalog.HasProduct(line.ProductID) {
			return invalid("One or more product IDs in the order are invalid.")
		}
	}

	for _, line := range order.Lines {
		if line.Quantity <= 0 {
			return invalid("One or more product quantities in the order are invalid.")
		}
	}

	now := v.now()
	if !order.DeliverAt.After(order.CreatedAt) || !order.DeliverAt.After(now) {
		return invalid(fmt.Sprintf("Delivery time '%s' is invalid.", order.DeliverAt.Format(time.RFC3339)))
	}

	if order.CreatedAt.After(now) {
		return invalid(fmt.Sprintf("Order creation time '%s' is in the future.", order.CreatedAt.Format(time.RFC3339)))
	}

	if strings.TrimSpace(order.CustomerAddress) == "" {
		return invalid("Customer address is null or empty.")
	}

	return domain.ValidationResult{Valid: true}
}

func invalid(reason string) domain.ValidationResult {
	return domain.ValidationResult{Valid: false, Reason: reason}
}
