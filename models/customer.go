package models

type Customer struct {
	ID               uint              `gorm:"primaryKey"`
	FirstName        string            `gorm:"type:varchar(100);not null"`
	LastName         string            `gorm:"type:varchar(100);not null"`
	Email            string            `gorm:"type:varchar(255);not null"`
	Orders           []Order           `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CustomerProducts []CustomerProduct `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
