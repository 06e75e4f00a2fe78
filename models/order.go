package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint            `gorm:"primaryKey"`
	CustomerID  uint            `gorm:"not null;index"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID"`
	OrderDate   time.Time       `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00"`
}
