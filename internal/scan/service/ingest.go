package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
	pkgdb "github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxFieldLength = 255

// Ingest validates and persists a batch of scan rows. Every row is
// validated before anything is written; one failing row aborts the
// whole batch with every failing row/field pair reported. All rows of
// a successful batch share a single timestamp and a single transaction.
func (s *Service) Ingest(ctx context.Context, req domain.IngestRequest) ([]domain.ScanRecord, error) {
	vErr := &domain.ValidationError{}
	if len(req.Items) == 0 {
		vErr.Add("items", "required", "items is required")
		return nil, vErr
	}

	itemIDs := make([]int64, 0, len(req.Items))
	userIDs := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ItemID > 0 {
			itemIDs = append(itemIDs, item.ItemID)
		}
		if item.UserID > 0 {
			userIDs = append(userIDs, item.UserID)
		}
	}

	knownItems, err := s.items.ExistingIDs(ctx, s.db, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve master items: %w", err)
	}
	knownUsers, err := s.operators.ExistingIDs(ctx, s.db, userIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve operators: %w", err)
	}

	for i, item := range req.Items {
		field := func(name string) string { return fmt.Sprintf("items.%d.%s", i, name) }

		switch {
		case item.ItemID <= 0:
			vErr.Add(field("item_id"), "required", "item_id is required")
		case !knownItems[item.ItemID]:
			vErr.Add(field("item_id"), "exists", "selected item_id is invalid")
		}

		switch {
		case item.UserID <= 0:
			vErr.Add(field("user_id"), "required", "user_id is required")
		case !knownUsers[item.UserID]:
			vErr.Add(field("user_id"), "exists", "selected user_id is invalid")
		}

		requireBoundedString(vErr, field("sku"), item.SKU)
		requireBoundedString(vErr, field("invoice_number"), item.InvoiceNumber)
		requireBoundedString(vErr, field("barcode_sn"), item.BarcodeSN)

		switch {
		case item.Qty == nil:
			vErr.Add(field("qty"), "required", "qty is required")
		case *item.Qty < 0:
			vErr.Add(field("qty"), "min", "qty must be at least 0")
		}
	}

	if vErr.HasErrors() {
		return nil, vErr
	}

	// One "now" for the whole batch, captured before the loop so every
	// row carries the identical timestamp.
	now := time.Now().UTC()
	rows := make([]domain.ScanRecord, 0, len(req.Items))
	for _, item := range req.Items {
		rows = append(rows, domain.ScanRecord{
			ID:            s.genID.Generate().Int64(),
			SKU:           strings.TrimSpace(item.SKU),
			InvoiceNumber: strings.TrimSpace(item.InvoiceNumber),
			ItemID:        item.ItemID,
			UserID:        item.UserID,
			Qty:           *item.Qty,
			BarcodeSN:     strings.TrimSpace(item.BarcodeSN),
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.InsertBatch(ctx, tx, rows)
	})
	if err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return nil, &domain.ConflictError{Values: s.conflictingSerials(ctx, rows), Cause: err}
		}
		return nil, fmt.Errorf("insert scanned items: %w", err)
	}

	s.log.Info("scanned items ingested",
		zap.Int("count", len(rows)),
		zap.Time("stamped_at", now),
	)
	return rows, nil
}

// conflictingSerials narrows a rolled-back insert down to the serials
// that already exist in the store. When the probe cannot narrow it (a
// probe error, or a collision the store no longer shows), every
// submitted serial is reported rather than none.
func (s *Service) conflictingSerials(ctx context.Context, rows []domain.ScanRecord) []string {
	conflicts := make([]string, 0, len(rows))
	for _, row := range rows {
		exists, err := s.repo.BarcodeExists(ctx, s.db, row.BarcodeSN)
		if err != nil {
			conflicts = conflicts[:0]
			break
		}
		if exists {
			conflicts = append(conflicts, row.BarcodeSN)
		}
	}
	if len(conflicts) == 0 {
		for _, row := range rows {
			conflicts = append(conflicts, row.BarcodeSN)
		}
	}
	return conflicts
}

func requireBoundedString(vErr *domain.ValidationError, field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		vErr.Add(field, "required", field+" is required")
		return
	}
	if len(trimmed) > maxFieldLength {
		vErr.Add(field, "max", fmt.Sprintf("%s may not be greater than %d characters", field, maxFieldLength))
	}
}
