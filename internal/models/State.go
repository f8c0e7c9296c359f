package models

import "gorm.io/gorm"

type State struct {
	gorm.Model
	Name string `json:"name"`
	Code string `json:"code" gorm:"size:10"`

	Cities []City `json:"cities,omitempty" gorm:"foreignKey:StateID;constraint:OnDelete:CASCADE;"`
}
