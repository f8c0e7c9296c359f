package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name          string `json:"name"`
	Email         string `json:"email" gorm:"unique"`
	EmailVerified bool   `json:"email_verified" gorm:"default:false"`
	ContactPhone  string `json:"contact_phone"`
	PhoneVerified bool   `json:"phone_verified" gorm:"default:false"`
	Password      string `json:"-"`
	Role          Role   `json:"role" gorm:"type:varchar(20);default:'member'"`

	// Pending password reset, nil when none is outstanding.
	ResetToken       *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	// Weak reference: the user does not own the address row.
	AddressID *uint    `json:"address_id,omitempty"`
	Address   *Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
}
