package models

import "github.com/shopspring/decimal"

type Product struct {
	ID               uint              `gorm:"primaryKey"`
	Name             string            `gorm:"type:varchar(255);not null"`
	Price            decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	CustomerProducts []CustomerProduct `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
