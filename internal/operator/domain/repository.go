package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]Operator, error)
	ExistingIDs(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]bool, error)
}
