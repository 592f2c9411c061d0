package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email            string `gorm:"uniqueIndex;not null"` // Unique index on Email
	Password         string `gorm:"not null"`
	Name             string `gorm:"not null"`
	Country          string
	Phone            string `gorm:"index"`
	BTCAddress       string
	ETHAddress       string
	USDTAddress      string
	AvatarURL        string
	ProfileCompleted bool   `gorm:"default:false"`
	Role             string `gorm:"default:'user'"`
	Status           string `gorm:"default:'active'"`
	LastLoginAt      time.Time
	LastLoginIP      string
	TokenVersion     int `gorm:"default:1"`
}

// HasCompleteProfile reports whether all KYC-like fields are filled in.
// The flag is recomputed on every profile update rather than trusted from input.
func (u *User) HasCompleteProfile() bool {
	return u.Name != "" && u.Country != "" && u.Phone != "" &&
		(u.BTCAddress != "" || u.ETHAddress != "" || u.USDTAddress != "")
}
