package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order lifecycle statuses.
const (
	OrderPending   = "pending"
	OrderAccepted  = "accepted"
	OrderRejected  = "rejected"
	OrderDelivered = "delivered"
)

// OrderStatusNames lists every known lifecycle status.
func OrderStatusNames() []string {
	return []string{OrderPending, OrderAccepted, OrderRejected, OrderDelivered}
}

// ValidOrderStatus reports whether s is a known lifecycle status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderAccepted, OrderRejected, OrderDelivered:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	UserID            uint       `json:"user_id" gorm:"index"`
	User              User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID      uint       `json:"restaurant_id" gorm:"index"`
	Restaurant        Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	DeliveryAddressID uint       `json:"delivery_address_id"`
	DeliveryAddress   Address    `json:"delivery_address,omitempty" gorm:"foreignKey:DeliveryAddressID"`
	DriverID          *uint      `json:"driver_id,omitempty"`
	Driver            *Driver    `json:"driver,omitempty" gorm:"foreignKey:DriverID"`

	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Discount   decimal.Decimal `json:"discount" gorm:"type:decimal(10,2);default:0"`
	FinalPrice decimal.Decimal `json:"final_price" gorm:"type:decimal(10,2)"`

	Comment            string     `json:"comment"`
	Status             string     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	ActualDeliveryTime *time.Time `json:"actual_delivery_time,omitempty"`

	Items    []OrderMenuItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;"`
	Statuses []OrderStatus   `json:"statuses,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;"`
	Comments []Comment       `json:"comments,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;"`
}
