package models

import (
	"time"

	"gorm.io/gorm"
)

// UnverifiedUser stages a registration until the email code is confirmed.
// At most one row exists per email; re-registration replaces it.
type UnverifiedUser struct {
	gorm.Model
	Name             string    `json:"name"`
	Email            string    `json:"email" gorm:"index"`
	ContactPhone     string    `json:"contact_phone"`
	Password         string    `json:"-"`
	Role             Role      `json:"role" gorm:"type:varchar(20);default:'member'"`
	VerificationCode string    `json:"-"`
	CodeExpiry       time.Time `json:"-"`
}
