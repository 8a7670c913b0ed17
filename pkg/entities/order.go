package entities

import (
	"gorm.io/gorm"
)

// Order and OrderItem are read-only from this service's perspective; the
// checkout flow that writes them lives outside this codebase.
type Order struct {
	gorm.Model
	UserID      uint        `json:"user_id" gorm:"index;not null"`
	OrderNumber string      `json:"order_number" gorm:"not null"`
	Status      string      `json:"status" gorm:"not null"`
	Total       float64     `json:"total" gorm:"not null"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	gorm.Model
	OrderID     uint    `json:"order_id" gorm:"index;not null"`
	ProductID   uint    `json:"product_id" gorm:"not null"`
	ProductName string  `json:"product_name" gorm:"type:varchar(255);not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
}
