package models

import "gorm.io/gorm"

// OrderStatus is one entry in an order's append-only status trail. Rows are
// only ever inserted; history is reconstructed by created_at order.
type OrderStatus struct {
	gorm.Model
	OrderID         uint          `json:"order_id" gorm:"index"`
	StatusCatalogID uint          `json:"status_catalog_id"`
	StatusCatalog   StatusCatalog `json:"status_catalog,omitempty" gorm:"foreignKey:StatusCatalogID"`
}
