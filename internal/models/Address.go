package models

import "gorm.io/gorm"

type Address struct {
	gorm.Model
	StreetAddress1       string `json:"street_address_1"`
	StreetAddress2       string `json:"street_address_2"`
	ZipCode              string `json:"zip_code" gorm:"size:20"`
	DeliveryInstructions string `json:"delivery_instructions"`
	CityID               uint   `json:"city_id" gorm:"index"`
	City                 City   `json:"city,omitempty" gorm:"foreignKey:CityID"`
}
