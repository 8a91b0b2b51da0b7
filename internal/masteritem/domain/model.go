package domain

import "time"

// MasterItem is one catalog entry. SKU and the barcode serial template
// are globally unique.
type MasterItem struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	BarcodeSN string    `json:"barcode_sn" gorm:"type:text;not null;uniqueIndex:ux_master_items_barcode_sn"`
	SKU       string    `json:"sku" gorm:"column:sku;type:text;not null;uniqueIndex:ux_master_items_sku"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (MasterItem) TableName() string { return "master_items" }
