// =============================================================================
// Compute Sales - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - catalogue
//   - sales
//   - report
//
// =============================================================================

package types

import "fmt"

// =============================================================================
// CATALOGUE TYPES
// =============================================================================

// Catalogue maps a product name to its unit price.
type Catalogue map[string]float64

// PriceEntry is a single product in the price catalogue.
type PriceEntry struct {
	// Name is the unique product name. Later duplicates overwrite earlier ones.
	Name string

	// UnitPrice is the price of one unit of the product.
	UnitPrice float64
}

// =============================================================================
// SALES TYPES
// =============================================================================

// ErrorKind classifies a rejected sales record.
type ErrorKind string

const (
	// ProductNotFound means the record names a product absent from the catalogue.
	ProductNotFound ErrorKind = "product_not_found"

	// InvalidQuantity means the quantity is not numeric or is negative.
	InvalidQuantity ErrorKind = "invalid_quantity"
)

// RecordError describes one sales record that did not contribute to the total.
type RecordError struct {
	// Kind is the reason the record was rejected.
	Kind ErrorKind

	// Index is the zero-based position of the record in the sales input.
	Index int

	// Product is the product name as it appeared in the input.
	Product string

	// Quantity is the quantity as it appeared in the input.
	Quantity string
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	switch e.Kind {
	case ProductNotFound:
		return fmt.Sprintf("Product not found: %s", e.Product)
	case InvalidQuantity:
		return fmt.Sprintf("Invalid quantity for %s: %s", e.Product, e.Quantity)
	default:
		return fmt.Sprintf("Invalid record %d: %s", e.Index, e.Product)
	}
}

// =============================================================================
// RESULT TYPES
// =============================================================================

// Result is the outcome of matching sales records against a catalogue.
type Result struct {
	// TotalCost is the sum of unit price times quantity over all valid records.
	TotalCost float64

	// Errors holds one entry per rejected record, in input order.
	Errors []*RecordError

	// ValidRecords is the number of records that contributed to TotalCost.
	ValidRecords int

	// InvalidRecords is the number of records that were rejected.
	InvalidRecords int
}

// Messages returns the human-readable form of every record error, in order.
func (r *Result) Messages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Error()
	}
	return messages
}
