package database

import (
	"github.com/qastore/pkg/entities"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.UserAddress{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.PasswordResetToken{},
	)
}
