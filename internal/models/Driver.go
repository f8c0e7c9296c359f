package models

import "gorm.io/gorm"

type Driver struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"uniqueIndex"`
	User         User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CarMake      string `json:"car_make"`
	CarModel     string `json:"car_model"`
	CarYear      string `json:"car_year" gorm:"size:4"`
	LicensePlate string `json:"license_plate" gorm:"size:20"`
	Active       bool   `json:"active" gorm:"default:true"`
}
