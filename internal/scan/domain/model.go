package domain

import (
	"time"

	itemdomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/domain"
	operatordomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/operator/domain"
)

// ScanRecord is one persisted observation of a physical unit being
// scanned. SKU is a denormalized copy taken at scan time; the master
// item reference does not own the record.
type ScanRecord struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	SKU           string    `json:"sku" gorm:"column:sku;type:text;not null;index"`
	InvoiceNumber string    `json:"invoice_number" gorm:"type:text;not null;index"`
	ItemID        int64     `json:"item_id" gorm:"not null;index"`
	UserID        int64     `json:"user_id" gorm:"not null"`
	Qty           int       `json:"qty" gorm:"not null"`
	BarcodeSN     string    `json:"barcode_sn" gorm:"type:text;not null;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null;index"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"not null"`

	MasterItem *itemdomain.MasterItem   `json:"master_item,omitempty" gorm:"foreignKey:ItemID;references:ID"`
	User       *operatordomain.Operator `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (ScanRecord) TableName() string { return "scanned_items" }

// Placeholders used when a referenced master item or operator no longer
// resolves. Placeholder groups are real groups, not errors.
const (
	UnknownItemName  = "Unknown Item"
	UnknownUserName  = "Unknown User"
	UnknownUserEmail = "Unknown Email"
)

// SerialEntry is one scanned serial number inside a SKU group, carrying
// its own timestamps.
type SerialEntry struct {
	BarcodeSN string    `json:"barcode_sn"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SkuGroup rolls up the records of one invoice sharing both SKU and
// resolved item name. TotalQty counts serial entries, not the raw qty
// column.
type SkuGroup struct {
	SKU           string        `json:"sku"`
	ItemName      string        `json:"item_name"`
	TotalQty      int           `json:"total_qty"`
	SerialNumbers []SerialEntry `json:"serial_numbers"`
}

// InvoiceGroup rolls up all records sharing an invoice number. TotalQty
// sums the raw qty columns and may legitimately differ from the serial
// counts carried by the SKU groups; both are reported as-is.
type InvoiceGroup struct {
	InvoiceNumber string     `json:"invoice_number"`
	TotalQty      int        `json:"total_qty"`
	Items         []SkuGroup `json:"items"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// DuplicateCheckResult lists which submitted values already exist in
// the store. Empty lists mean no duplicates, which is a success result.
type DuplicateCheckResult struct {
	Invoices []string `json:"invoices"`
	Barcodes []string `json:"barcodes"`
}

func (r DuplicateCheckResult) Empty() bool {
	return len(r.Invoices) == 0 && len(r.Barcodes) == 0
}
