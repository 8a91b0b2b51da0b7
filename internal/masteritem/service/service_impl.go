package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/domain"
	pkgdb "github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxFieldLength = 255

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("masteritem.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (pagination.Page[domain.MasterItem], error) {
	query := strings.TrimSpace(req.Query)
	page := req.Page.Normalize(5)

	if req.Exact && query != "" {
		items, err := s.repo.FindExact(ctx, s.db, query)
		if err != nil {
			return pagination.Page[domain.MasterItem]{}, fmt.Errorf("search master items: %w", err)
		}
		if len(items) == 0 {
			return pagination.Page[domain.MasterItem]{}, domain.ErrNotFound
		}
		return pagination.NewPage(items, int64(len(items)), pagination.Request{Page: 1, PerPage: len(items)}), nil
	}

	items, total, err := s.repo.Search(ctx, s.db, query, page.Offset(), page.PerPage)
	if err != nil {
		return pagination.Page[domain.MasterItem]{}, fmt.Errorf("search master items: %w", err)
	}
	return pagination.NewPage(items, total, page), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.MasterItem, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("find master item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (s *Service) Store(ctx context.Context, req domain.StoreRequest) error {
	vErr := &domain.ValidationError{}
	if len(req.Items) == 0 {
		vErr.Add("items", "required", "items is required")
		return vErr
	}

	skus := make([]string, 0, len(req.Items))
	barcodes := make([]string, 0, len(req.Items))
	for i, item := range req.Items {
		requireString(vErr, fmt.Sprintf("items.%d.name", i), item.Name)
		requireString(vErr, fmt.Sprintf("items.%d.barcode_sn", i), item.BarcodeSN)
		requireString(vErr, fmt.Sprintf("items.%d.sku", i), item.SKU)
		if sku := strings.TrimSpace(item.SKU); sku != "" {
			skus = append(skus, sku)
		}
		if barcode := strings.TrimSpace(item.BarcodeSN); barcode != "" {
			barcodes = append(barcodes, barcode)
		}
	}

	takenSKUs, err := s.repo.ExistingSKUs(ctx, s.db, skus)
	if err != nil {
		return fmt.Errorf("check existing skus: %w", err)
	}
	takenBarcodes, err := s.repo.ExistingBarcodes(ctx, s.db, barcodes)
	if err != nil {
		return fmt.Errorf("check existing barcodes: %w", err)
	}
	seenSKUs := make(map[string]bool, len(skus))
	seenBarcodes := make(map[string]bool, len(barcodes))
	for i, item := range req.Items {
		if sku := strings.TrimSpace(item.SKU); sku != "" {
			if takenSKUs[sku] || seenSKUs[sku] {
				vErr.Add(fmt.Sprintf("items.%d.sku", i), "taken", "sku has already been taken")
				vErr.ConflictingSKUs = append(vErr.ConflictingSKUs, sku)
			}
			seenSKUs[sku] = true
		}
		if barcode := strings.TrimSpace(item.BarcodeSN); barcode != "" {
			if takenBarcodes[barcode] || seenBarcodes[barcode] {
				vErr.Add(fmt.Sprintf("items.%d.barcode_sn", i), "taken", "barcode_sn has already been taken")
				vErr.ConflictingBarcodes = append(vErr.ConflictingBarcodes, barcode)
			}
			seenBarcodes[barcode] = true
		}
	}

	if vErr.HasErrors() {
		return vErr
	}

	// One timestamp for the whole batch.
	now := time.Now().UTC()
	rows := make([]domain.MasterItem, 0, len(req.Items))
	for _, item := range req.Items {
		rows = append(rows, domain.MasterItem{
			ID:        s.genID.Generate().Int64(),
			Name:      strings.TrimSpace(item.Name),
			BarcodeSN: strings.TrimSpace(item.BarcodeSN),
			SKU:       strings.TrimSpace(item.SKU),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.InsertBatch(ctx, tx, rows)
	})
	if err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			// Lost a race between the pre-check and the insert: re-probe
			// so the caller sees the values that actually collided.
			conflict := &domain.ValidationError{}
			if taken, probeErr := s.repo.ExistingSKUs(ctx, s.db, skus); probeErr == nil {
				for _, sku := range skus {
					if taken[sku] {
						conflict.ConflictingSKUs = append(conflict.ConflictingSKUs, sku)
					}
				}
			}
			if taken, probeErr := s.repo.ExistingBarcodes(ctx, s.db, barcodes); probeErr == nil {
				for _, barcode := range barcodes {
					if taken[barcode] {
						conflict.ConflictingBarcodes = append(conflict.ConflictingBarcodes, barcode)
					}
				}
			}
			if conflict.HasErrors() {
				return conflict
			}
		}
		return fmt.Errorf("insert master items: %w", err)
	}

	s.log.Info("master items stored", zap.Int("count", len(rows)))
	return nil
}

func (s *Service) UpdateName(ctx context.Context, id int64, req domain.UpdateNameRequest) (*domain.MasterItem, error) {
	vErr := &domain.ValidationError{}
	requireString(vErr, "name", req.Name)
	if vErr.HasErrors() {
		return nil, vErr
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("find master item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.Name = strings.TrimSpace(req.Name)
	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, s.db, item); err != nil {
		return nil, fmt.Errorf("update master item: %w", err)
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("delete master item: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func requireString(vErr *domain.ValidationError, field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		vErr.Add(field, "required", field+" is required")
		return
	}
	if len(trimmed) > maxFieldLength {
		vErr.Add(field, "max", fmt.Sprintf("%s may not be greater than %d characters", field, maxFieldLength))
	}
}
