package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*MasterItem, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]MasterItem, error)
	ExistingIDs(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]bool, error)
	// FindExact matches sku or name exactly.
	FindExact(ctx context.Context, db *gorm.DB, query string) ([]MasterItem, error)
	// Search matches name, barcode_sn or sku by substring, paginated.
	Search(ctx context.Context, db *gorm.DB, query string, offset, limit int) ([]MasterItem, int64, error)
	ExistingSKUs(ctx context.Context, db *gorm.DB, skus []string) (map[string]bool, error)
	ExistingBarcodes(ctx context.Context, db *gorm.DB, barcodes []string) (map[string]bool, error)
	InsertBatch(ctx context.Context, db *gorm.DB, items []MasterItem) error
	Save(ctx context.Context, db *gorm.DB, item *MasterItem) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
