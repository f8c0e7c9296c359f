package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name         string          `json:"name"`
	Ingredients  string          `json:"ingredients"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Active       bool            `json:"active" gorm:"default:true"`
	CategoryID   uint            `json:"category_id" gorm:"index"`
	Category     Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	RestaurantID uint            `json:"restaurant_id" gorm:"index"`
	Restaurant   Restaurant      `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
}
