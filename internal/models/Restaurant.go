package models

import "gorm.io/gorm"

type Restaurant struct {
	gorm.Model
	Name          string `json:"name"`
	StreetAddress string `json:"street_address"`
	ZipCode       string `json:"zip_code" gorm:"size:20"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`
	CityID        uint   `json:"city_id" gorm:"index"`
	City          City   `json:"city,omitempty" gorm:"foreignKey:CityID"`

	MenuItems []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
}
