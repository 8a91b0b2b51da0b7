package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("scanned item not found")
	// ErrLimitExceeded signals a per_page above the hard ceiling; the
	// request is rejected, never clamped.
	ErrLimitExceeded = errors.New("per_page cannot be more than 500")
	// ErrDuplicateCheckEmpty rejects a duplicate check with neither
	// invoices nor barcodes.
	ErrDuplicateCheckEmpty = errors.New("invoices or barcodes must be provided")
	// ErrRenameValuesRequired rejects a bulk rename missing either the
	// original or the new invoice number.
	ErrRenameValuesRequired = errors.New("both original and edited invoice numbers are required")
	// ErrInvoiceNumberRequired rejects an invoice view without an
	// invoice number.
	ErrInvoiceNumberRequired = errors.New("invoice_number is required")
	// ErrRenameInProgress reports that another request holds the rename
	// lock for the same source invoice.
	ErrRenameInProgress = errors.New("invoice is already being renamed")
)

// FieldError is one failing field of one input row.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError enumerates every failing row/field pair of a request.
// Ingestion validates all rows before writing any, so a single batch
// can carry failures from several rows at once.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation error"
	}
	names := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		names = append(names, f.Field)
	}
	return "validation error: " + strings.Join(names, ", ")
}

func (v *ValidationError) Add(field, code, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Code: code, Message: message})
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ConflictError reports a uniqueness violation during batch insert,
// carrying the submitted values that collided.
type ConflictError struct {
	Values []string
	Cause  error
}

func (e *ConflictError) Error() string {
	if len(e.Values) == 0 {
		return "conflict on commit"
	}
	return fmt.Sprintf("conflict on commit: %s", strings.Join(e.Values, ", "))
}

func (e *ConflictError) Unwrap() error {
	return e.Cause
}
