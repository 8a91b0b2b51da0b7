package repository

import (
	"context"
	"time"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.Filter, offset, limit int) ([]domain.ScanRecord, int64, error) {
	stmt := db.WithContext(ctx).Model(&domain.ScanRecord{})

	if filter.DuplicateOnly {
		// Store-wide duplicate scan: serials that occur more than once.
		// This intentionally short-circuits every other filter.
		dupes := db.Model(&domain.ScanRecord{}).
			Select("barcode_sn").
			Group("barcode_sn").
			Having("COUNT(barcode_sn) > 1")
		stmt = stmt.Where("barcode_sn IN (?)", dupes)
	} else {
		stmt = applyFilter(db, stmt, filter)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.ScanRecord
	err := stmt.
		Preload("MasterItem").
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func applyFilter(db, stmt *gorm.DB, filter domain.Filter) *gorm.DB {
	if filter.Exact != "" {
		op, value := "LIKE", "%"+filter.Exact+"%"
		if filter.ExactMatch {
			op, value = "=", filter.Exact
		}

		switch filter.Scope {
		case domain.ScopeSKU:
			stmt = stmt.Where("sku "+op+" ?", value)
		case domain.ScopeInvoice:
			stmt = stmt.Where("invoice_number "+op+" ?", value)
		case domain.ScopeSerial:
			stmt = stmt.Where("barcode_sn "+op+" ?", value)
		default:
			stmt = stmt.Where(
				db.Where("sku "+op+" ?", value).
					Or("barcode_sn "+op+" ?", value).
					Or("invoice_number "+op+" ?", value),
			)
		}
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		day := *filter.StartDate
		stmt = stmt.Where("created_at >= ? AND created_at <= ?", startOfDay(day), endOfDay(day))
	} else {
		if filter.StartDate != nil {
			stmt = stmt.Where("created_at >= ?", startOfDay(*filter.StartDate))
		}
		if filter.EndDate != nil {
			stmt = stmt.Where("created_at <= ?", endOfDay(*filter.EndDate))
		}
	}

	hasInvoices := len(filter.InvoiceNumbers) > 0
	hasSerials := len(filter.SerialNumbers) > 0
	switch {
	case hasInvoices && hasSerials && filter.SetMatchAny:
		// Historical behavior: the two inclusion sets OR against each
		// other while everything else ANDs.
		stmt = stmt.Where(
			db.Where("invoice_number IN ?", filter.InvoiceNumbers).
				Or("barcode_sn IN ?", filter.SerialNumbers),
		)
	default:
		if hasInvoices {
			stmt = stmt.Where("invoice_number IN ?", filter.InvoiceNumbers)
		}
		if hasSerials {
			stmt = stmt.Where("barcode_sn IN ?", filter.SerialNumbers)
		}
	}

	return stmt
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.ScanRecord, error) {
	var row domain.ScanRecord
	err := db.WithContext(ctx).
		Preload("MasterItem").
		Preload("User").
		First(&row, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *repo) FindByInvoice(ctx context.Context, db *gorm.DB, invoiceNumber string) ([]domain.ScanRecord, error) {
	var rows []domain.ScanRecord
	err := db.WithContext(ctx).
		Preload("MasterItem").
		Preload("User").
		Where("invoice_number = ?", invoiceNumber).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) InsertBatch(ctx context.Context, db *gorm.DB, rows []domain.ScanRecord) error {
	return db.WithContext(ctx).Create(&rows).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, record *domain.ScanRecord) error {
	return db.WithContext(ctx).
		Omit("MasterItem", "User").
		Save(record).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).Delete(&domain.ScanRecord{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repo) InvoiceExists(ctx context.Context, db *gorm.DB, invoiceNumber string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.ScanRecord{}).
		Where("invoice_number = ?", invoiceNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *repo) BarcodeExists(ctx context.Context, db *gorm.DB, barcodeSN string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.ScanRecord{}).
		Where("barcode_sn = ?", barcodeSN).
		Count(&count).Error
	return count > 0, err
}

func (r *repo) RenameInvoice(ctx context.Context, db *gorm.DB, oldNumber, newNumber string) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.ScanRecord{}).
		Where("invoice_number = ?", oldNumber).
		Updates(map[string]any{
			"invoice_number": newNumber,
			"updated_at":     time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
