package repository

import (
	"context"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/operator/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]domain.Operator, error) {
	out := make(map[int64]domain.Operator, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []domain.Operator
	err := db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}

func (r *repo) ExistingIDs(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var found []int64
	err := db.WithContext(ctx).
		Model(&domain.Operator{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	for _, id := range found {
		out[id] = true
	}
	return out, nil
}
