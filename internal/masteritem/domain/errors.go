package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("master item not found")
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError enumerates every failing row/field pair of a batch
// store request. ConflictingSKUs and ConflictingBarcodes list submitted
// values that were already taken, either in the store or earlier in the
// same batch.
type ValidationError struct {
	Fields              []FieldError `json:"errors"`
	ConflictingSKUs     []string     `json:"conflicting_skus,omitempty"`
	ConflictingBarcodes []string     `json:"conflicting_barcodes,omitempty"`
}

func (v *ValidationError) Error() string {
	switch {
	case len(v.ConflictingSKUs) > 0:
		return fmt.Sprintf("validation error: the following SKUs have already been taken: %s",
			strings.Join(v.ConflictingSKUs, ", "))
	case len(v.ConflictingBarcodes) > 0:
		return fmt.Sprintf("validation error: the following barcode serials have already been taken: %s",
			strings.Join(v.ConflictingBarcodes, ", "))
	default:
		return "validation error"
	}
}

func (v *ValidationError) Add(field, code, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Code: code, Message: message})
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0 || len(v.ConflictingSKUs) > 0 || len(v.ConflictingBarcodes) > 0
}
