package models

import "gorm.io/gorm"

// RestaurantOwner links a verified user holding the owner role to a restaurant.
type RestaurantOwner struct {
	gorm.Model
	RestaurantID uint       `json:"restaurant_id" gorm:"index"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE;"`
	OwnerID      uint       `json:"owner_id" gorm:"index"`
	Owner        User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
