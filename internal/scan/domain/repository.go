package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// List applies the composed filter predicate, newest rows first,
	// returning one page plus the unpaged match count.
	List(ctx context.Context, db *gorm.DB, filter Filter, offset, limit int) ([]ScanRecord, int64, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*ScanRecord, error)
	// FindByInvoice returns every record of one invoice in insertion
	// order, unbounded by row-level pagination.
	FindByInvoice(ctx context.Context, db *gorm.DB, invoiceNumber string) ([]ScanRecord, error)
	InsertBatch(ctx context.Context, db *gorm.DB, rows []ScanRecord) error
	Save(ctx context.Context, db *gorm.DB, record *ScanRecord) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
	InvoiceExists(ctx context.Context, db *gorm.DB, invoiceNumber string) (bool, error)
	BarcodeExists(ctx context.Context, db *gorm.DB, barcodeSN string) (bool, error)
	RenameInvoice(ctx context.Context, db *gorm.DB, oldNumber, newNumber string) (int64, error)
}
