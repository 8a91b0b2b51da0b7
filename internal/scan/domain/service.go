package domain

import (
	"context"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db/pagination"
)

type Service interface {
	Query(ctx context.Context, req QueryRequest) (pagination.Page[ScanRecord], error)
	Ingest(ctx context.Context, req IngestRequest) ([]ScanRecord, error)
	InvoiceView(ctx context.Context, req InvoiceViewRequest) (pagination.Page[InvoiceGroup], error)
	CheckDuplicates(ctx context.Context, req DuplicateCheckRequest) (DuplicateCheckResult, error)
	Get(ctx context.Context, id int64) (*ScanRecord, error)
	Delete(ctx context.Context, id int64) error
	UpdateBarcode(ctx context.Context, id int64, req UpdateBarcodeRequest) (*ScanRecord, error)
	UpdateInvoice(ctx context.Context, id int64, req UpdateInvoiceRequest) (*ScanRecord, error)
	RenameInvoice(ctx context.Context, req RenameInvoiceRequest) ([]ScanRecord, error)
}

type QueryRequest struct {
	Filter Filter
	Page   pagination.Request
}

type IngestItem struct {
	ItemID        int64  `json:"item_id"`
	UserID        int64  `json:"user_id"`
	SKU           string `json:"sku"`
	InvoiceNumber string `json:"invoice_number"`
	Qty           *int   `json:"qty"`
	BarcodeSN     string `json:"barcode_sn"`
}

type IngestRequest struct {
	Items []IngestItem `json:"items"`
}

type InvoiceViewRequest struct {
	InvoiceNumber string
	Page          int
}

type DuplicateCheckRequest struct {
	Invoices []string `json:"invoices"`
	Barcodes []string `json:"barcodes"`
}

type UpdateBarcodeRequest struct {
	BarcodeSN string `json:"barcode_sn"`
	Qty       *int   `json:"qty"`
}

type UpdateInvoiceRequest struct {
	InvoiceNumber string `json:"invoice_number"`
}

type RenameInvoiceRequest struct {
	OldInvoiceNumber string `json:"editInvoice"`
	NewInvoiceNumber string `json:"editTempInvoice"`
}
