package domain

import "time"

// FieldScope narrows a text search to one column.
type FieldScope string

const (
	ScopeNone    FieldScope = ""
	ScopeSKU     FieldScope = "sku"
	ScopeInvoice FieldScope = "invoice"
	ScopeSerial  FieldScope = "sn"
)

func ParseFieldScope(raw string) (FieldScope, bool) {
	switch FieldScope(raw) {
	case ScopeNone, ScopeSKU, ScopeInvoice, ScopeSerial:
		return FieldScope(raw), true
	default:
		return ScopeNone, false
	}
}

// Filter is the typed input of the filter composer. Every field is
// optional; each set field contributes one predicate fragment.
//
// Combination rules, in priority order:
//  1. DuplicateOnly short-circuits everything else.
//  2. Exact with no scope ORs sku/barcode_sn/invoice_number.
//  3. A scope restricts the text match to that one column.
//  4. Equal start and end dates select that calendar day; otherwise the
//     bounds apply independently, end-of-day inclusive.
//  5. The invoice-number and serial-number sets AND with the rest;
//     SetMatchAny ORs the two sets against each other (historical
//     behavior, pinned by configuration).
type Filter struct {
	Exact          string
	ExactMatch     bool
	Scope          FieldScope
	StartDate      *time.Time
	EndDate        *time.Time
	InvoiceNumbers []string
	SerialNumbers  []string
	DuplicateOnly  bool
	SetMatchAny    bool
}
