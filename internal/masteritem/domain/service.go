package domain

import (
	"context"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db/pagination"
)

type Service interface {
	// List searches the catalog. With Exact set the query must match a
	// SKU or name exactly and an empty result is ErrNotFound; otherwise
	// the query matches name/barcode_sn/sku by substring, paginated.
	List(ctx context.Context, req ListRequest) (pagination.Page[MasterItem], error)
	Get(ctx context.Context, id int64) (*MasterItem, error)
	Store(ctx context.Context, req StoreRequest) error
	UpdateName(ctx context.Context, id int64, req UpdateNameRequest) (*MasterItem, error)
	Delete(ctx context.Context, id int64) error
}

type ListRequest struct {
	Query string
	Exact bool
	Page  pagination.Request
}

type StoreItem struct {
	Name      string `json:"name"`
	BarcodeSN string `json:"barcode_sn"`
	SKU       string `json:"sku"`
}

type StoreRequest struct {
	Items []StoreItem `json:"items"`
}

type UpdateNameRequest struct {
	Name string `json:"name"`
}
