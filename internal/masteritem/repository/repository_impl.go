package repository

import (
	"context"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.MasterItem, error) {
	var item domain.MasterItem
	err := db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *repo) FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]domain.MasterItem, error) {
	out := make(map[int64]domain.MasterItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []domain.MasterItem
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
		Model(&domain.MasterItem{}).
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

func (r *repo) FindExact(ctx context.Context, db *gorm.DB, query string) ([]domain.MasterItem, error) {
	var items []domain.MasterItem
	err := db.WithContext(ctx).
		Where("sku = ?", query).
		Or("name = ?", query).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, query string, offset, limit int) ([]domain.MasterItem, int64, error) {
	stmt := db.WithContext(ctx).Model(&domain.MasterItem{})
	if query != "" {
		like := "%" + query + "%"
		stmt = stmt.Where(
			db.Where("name LIKE ?", like).
				Or("barcode_sn LIKE ?", like).
				Or("sku LIKE ?", like),
		)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.MasterItem
	err := stmt.Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repo) ExistingSKUs(ctx context.Context, db *gorm.DB, skus []string) (map[string]bool, error) {
	out := make(map[string]bool, len(skus))
	if len(skus) == 0 {
		return out, nil
	}

	var found []string
	err := db.WithContext(ctx).
		Model(&domain.MasterItem{}).
		Where("sku IN ?", skus).
		Pluck("sku", &found).Error
	if err != nil {
		return nil, err
	}

	for _, sku := range found {
		out[sku] = true
	}
	return out, nil
}

func (r *repo) ExistingBarcodes(ctx context.Context, db *gorm.DB, barcodes []string) (map[string]bool, error) {
	out := make(map[string]bool, len(barcodes))
	if len(barcodes) == 0 {
		return out, nil
	}

	var found []string
	err := db.WithContext(ctx).
		Model(&domain.MasterItem{}).
		Where("barcode_sn IN ?", barcodes).
		Pluck("barcode_sn", &found).Error
	if err != nil {
		return nil, err
	}

	for _, barcode := range found {
		out[barcode] = true
	}
	return out, nil
}

func (r *repo) InsertBatch(ctx context.Context, db *gorm.DB, items []domain.MasterItem) error {
	return db.WithContext(ctx).CreateInBatches(items, 1000).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, item *domain.MasterItem) error {
	return db.WithContext(ctx).Save(item).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).Delete(&domain.MasterItem{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
