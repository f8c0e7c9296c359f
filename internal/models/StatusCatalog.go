package models

import "gorm.io/gorm"

type StatusCatalog struct {
	gorm.Model
	Name string `json:"name" gorm:"unique"`
}
