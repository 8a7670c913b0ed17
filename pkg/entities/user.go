package entities

import (
	"gorm.io/gorm"
)

// User is the credential record. Email is stored lowercase, Password holds
// the bcrypt hash and never leaves the store layer.
type User struct {
	gorm.Model
	Name            string       `json:"name" gorm:"type:varchar(255);not null"`
	Email           string       `json:"email" gorm:"unique;not null"`
	Password        string       `json:"-" gorm:"not null"`
	Title           string       `json:"title"`
	Gender          string       `json:"gender"`
	Country         string       `json:"country"`
	AgeGroup        string       `json:"age_group"`
	MarketingEmails bool         `json:"marketing_emails" gorm:"default:false"`
	ProductUpdates  bool         `json:"product_updates" gorm:"default:false"`
	Address         *UserAddress `json:"address,omitempty" gorm:"foreignKey:UserID"`
}

// UserAddress is owned 1:1 by a User. Created on the first profile update
// that carries address fields, overwritten in place afterwards.
type UserAddress struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}
