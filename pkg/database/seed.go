package database

import (
	"github.com/qastore/pkg/entities"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	seedUserEmail    = "user@example.com"
	seedUserPassword = "password123"
)

// Seed inserts the demo user with an address and two sample orders if it
// doesn't exist yet. Idempotent across restarts.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.User{}).Where("email = ?", seedUserEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(seedUserPassword), 10)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user := entities.User{
			Name:            "Usuário Teste",
			Email:           seedUserEmail,
			Password:        string(passwordHash),
			Title:           "sr",
			Gender:          "masculino",
			Country:         "brasil",
			AgeGroup:        "35-44",
			MarketingEmails: true,
			ProductUpdates:  true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		address := entities.UserAddress{
			UserID:  user.ID,
			Street:  "Rua Exemplo, 123",
			City:    "São Paulo",
			State:   "SP",
			ZipCode: "01234-567",
		}
		if err := tx.Create(&address).Error; err != nil {
			return err
		}

		orders := []entities.Order{
			{
				UserID:      user.ID,
				OrderNumber: "ORD123456",
				Status:      "Entregue",
				Total:       129.99,
				Items: []entities.OrderItem{
					{ProductID: 1, ProductName: "Wireless Headphones", Quantity: 1, Price: 129.99},
				},
			},
			{
				UserID:      user.ID,
				OrderNumber: "ORD789012",
				Status:      "Processando",
				Total:       94.98,
				Items: []entities.OrderItem{
					{ProductID: 6, ProductName: "Coffee Mug", Quantity: 2, Price: 14.99},
					{ProductID: 8, ProductName: "Desk Lamp", Quantity: 1, Price: 49.99},
				},
			},
		}
		for i := range orders {
			if err := tx.Create(&orders[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
