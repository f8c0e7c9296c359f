package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderMenuItem is one cart line. ItemName and Price are copied from the menu
// item at order time so later catalog edits never change historical orders.
type OrderMenuItem struct {
	gorm.Model
	OrderID    uint            `json:"order_id" gorm:"index"`
	MenuItemID uint            `json:"menu_item_id" gorm:"index"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity"`
	ItemName   string          `json:"item_name"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Comment    string          `json:"comment"`
}
