// Package invoicing holds the pure business rules of invoice generation:
// input validation and the discount/tax arithmetic. Nothing here touches
// the database, the filesystem or the clock.
package invoicing

import (
	"fmt"
	"strings"
)

// LineRequest is one requested (SKU, quantity) pair, before catalog resolution.
type LineRequest struct {
	SKU      string
	Quantity int64
}

// Minimum lengths after trimming.
const (
	minNameLen    = 2
	minAddressLen = 5
)

// ValidateInput checks customer identity and the requested items. Every
// violation is collected so the caller can report all problems at once;
// an empty slice means the input is valid. No side effects.
func ValidateInput(customerName, customerAddress string, items []LineRequest) []string {
	var errs []string

	if len(strings.TrimSpace(customerName)) < minNameLen {
		errs = append(errs, "customer name is required and must be at least 2 characters")
	}
	if len(strings.TrimSpace(customerAddress)) < minAddressLen {
		errs = append(errs, "customer address is required and must be at least 5 characters")
	}

	if len(items) == 0 {
		errs = append(errs, "at least one item is required")
		return errs
	}
	for i, item := range items {
		if strings.TrimSpace(item.SKU) == "" {
			errs = append(errs, fmt.Sprintf("item %d: SKU is required", i+1))
		}
		if item.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("item %d: quantity must be greater than zero", i+1))
		}
	}
	return errs
}
