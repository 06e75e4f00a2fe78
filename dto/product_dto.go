package dto

import (
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/storefront-api/models"
)

type ProductDto struct {
	ProductID uint            `json:"productId" example:"1"`
	Name      string          `json:"name" example:"Product 1"`
	Price     decimal.Decimal `json:"price" swaggertype:"string" example:"19.99"`
}

type WriteProductDto struct {
	Name  string           `json:"name" binding:"required,max=255" example:"Product 1"`
	Price *decimal.Decimal `json:"price" binding:"required,gte=0" swaggertype:"string" example:"19.99"`
}

func ToProductDto(p models.Product) ProductDto {
	return ProductDto{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
	}
}

func ToProductDtos(products []models.Product) []ProductDto {
	out := make([]ProductDto, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductDto(p))
	}
	return out
}

func (w WriteProductDto) ToModel() models.Product {
	return models.Product{
		Name:  w.Name,
		Price: amount(w.Price),
	}
}

func (w WriteProductDto) ApplyTo(p *models.Product) {
	p.Name = w.Name
	p.Price = amount(w.Price)
}
