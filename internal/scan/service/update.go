package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UpdateBarcode replaces the serial number and quantity of one record.
func (s *Service) UpdateBarcode(ctx context.Context, id int64, req domain.UpdateBarcodeRequest) (*domain.ScanRecord, error) {
	vErr := &domain.ValidationError{}
	requireBoundedString(vErr, "barcode_sn", req.BarcodeSN)
	switch {
	case req.Qty == nil:
		vErr.Add("qty", "required", "qty is required")
	case *req.Qty < 0:
		vErr.Add("qty", "min", "qty must be at least 0")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	row, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("find scanned item: %w", err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	row.BarcodeSN = strings.TrimSpace(req.BarcodeSN)
	row.Qty = *req.Qty
	row.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, s.db, row); err != nil {
		return nil, fmt.Errorf("update scanned item: %w", err)
	}
	return row, nil
}

// UpdateInvoice reassigns one record to another invoice number.
func (s *Service) UpdateInvoice(ctx context.Context, id int64, req domain.UpdateInvoiceRequest) (*domain.ScanRecord, error) {
	vErr := &domain.ValidationError{}
	requireBoundedString(vErr, "invoice_number", req.InvoiceNumber)
	if vErr.HasErrors() {
		return nil, vErr
	}

	row, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("find scanned item: %w", err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	row.InvoiceNumber = strings.TrimSpace(req.InvoiceNumber)
	row.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, s.db, row); err != nil {
		return nil, fmt.Errorf("update scanned item: %w", err)
	}
	return row, nil
}

// RenameInvoice moves every record from one invoice number to another
// in a single transaction. When a locker is configured, renames of the
// same source invoice are serialized against each other.
func (s *Service) RenameInvoice(ctx context.Context, req domain.RenameInvoiceRequest) ([]domain.ScanRecord, error) {
	oldNumber := strings.TrimSpace(req.OldInvoiceNumber)
	newNumber := strings.TrimSpace(req.NewInvoiceNumber)
	if oldNumber == "" || newNumber == "" {
		return nil, domain.ErrRenameValuesRequired
	}

	if s.locker != nil {
		ttl := time.Duration(s.settings.Current().RateLimit.LockTTLSeconds) * time.Second
		key := "scan:invoice-rename:" + oldNumber
		token, ok, err := s.locker.TryLock(ctx, key, ttl)
		if err != nil {
			s.log.Warn("invoice rename lock unavailable", zap.Error(err))
		} else if !ok {
			return nil, fmt.Errorf("invoice %q: %w", oldNumber, domain.ErrRenameInProgress)
		} else {
			defer func() {
				if err := s.locker.Release(ctx, key, token); err != nil {
					s.log.Warn("release invoice rename lock", zap.Error(err))
				}
			}()
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.repo.RenameInvoice(ctx, tx, oldNumber, newNumber)
		if err != nil {
			return fmt.Errorf("rename invoice: %w", err)
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByInvoice(ctx, s.db, newNumber)
	if err != nil {
		return nil, fmt.Errorf("fetch renamed rows: %w", err)
	}
	return rows, nil
}
