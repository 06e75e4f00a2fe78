package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/storefront-api/models"
)

type OrderDto struct {
	OrderID     uint            `json:"orderId" example:"1"`
	CustomerID  uint            `json:"customerId" example:"1"`
	OrderDate   time.Time       `json:"orderDate" example:"2024-05-01T10:00:00Z"`
	TotalAmount decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"39.05"`
}

type WriteOrderDto struct {
	CustomerID  uint             `json:"customerId" binding:"required" example:"1"`
	OrderDate   time.Time        `json:"orderDate" binding:"required" example:"2024-05-01T10:00:00Z"`
	TotalAmount *decimal.Decimal `json:"totalAmount" binding:"required,gte=0" swaggertype:"string" example:"39.05"`
}

func ToOrderDto(o models.Order) OrderDto {
	return OrderDto{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
	}
}

func ToOrderDtos(orders []models.Order) []OrderDto {
	out := make([]OrderDto, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderDto(o))
	}
	return out
}

func (w WriteOrderDto) ToModel() models.Order {
	return models.Order{
		CustomerID:  w.CustomerID,
		OrderDate:   w.OrderDate,
		TotalAmount: amount(w.TotalAmount),
	}
}

func (w WriteOrderDto) ApplyTo(o *models.Order) {
	o.CustomerID = w.CustomerID
	o.OrderDate = w.OrderDate
	o.TotalAmount = amount(w.TotalAmount)
}
