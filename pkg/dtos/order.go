package dtos

import (
	"github.com/qastore/pkg/entities"
)

type OrderResponse struct {
	ID     string              `json:"id"`
	Date   string              `json:"date"`
	Status string              `json:"status"`
	Total  float64             `json:"total"`
	Items  []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func NewOrderResponse(o *entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return OrderResponse{
		ID:     o.OrderNumber,
		Date:   o.CreatedAt.Format("2006-01-02"),
		Status: o.Status,
		Total:  o.Total,
		Items:  items,
	}
}
