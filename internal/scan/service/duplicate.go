package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
)

// CheckDuplicates reports which of the submitted invoice numbers and
// barcode serials already exist in the store. "Duplicate" here means
// "exists at all": one prior legitimate scan already flags a value.
// This is distinct from the duplicate-only query filter, which means
// "occurs more than once".
//
// The probe is advisory and read-only; nothing stops a concurrent
// ingestion between this check and a later commit. The store's unique
// constraints are the real backstop.
func (s *Service) CheckDuplicates(ctx context.Context, req domain.DuplicateCheckRequest) (domain.DuplicateCheckResult, error) {
	invoices := dedupe(req.Invoices)
	barcodes := dedupe(req.Barcodes)

	result := domain.DuplicateCheckResult{
		Invoices: []string{},
		Barcodes: []string{},
	}

	if len(invoices) == 0 && len(barcodes) == 0 {
		return result, domain.ErrDuplicateCheckEmpty
	}

	for _, invoice := range invoices {
		exists, err := s.repo.InvoiceExists(ctx, s.db, invoice)
		if err != nil {
			return result, fmt.Errorf("check invoice %q: %w", invoice, err)
		}
		if exists {
			result.Invoices = append(result.Invoices, invoice)
		}
	}

	for _, barcode := range barcodes {
		exists, err := s.repo.BarcodeExists(ctx, s.db, barcode)
		if err != nil {
			return result, fmt.Errorf("check barcode %q: %w", barcode, err)
		}
		if exists {
			result.Barcodes = append(result.Barcodes, barcode)
		}
	}

	return result, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
