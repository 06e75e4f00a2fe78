package dto

import "github.com/yeremiapane/storefront-api/models"

// CustomerDto is the read shape of a customer. It never carries orders or
// product links.
type CustomerDto struct {
	ID        uint   `json:"id" example:"1"`
	FirstName string `json:"firstName" example:"Orgest"`
	LastName  string `json:"lastName" example:"Belba"`
	Email     string `json:"email" example:"orgestbelba@gmail.com"`
}

// WriteCustomerDto is the body accepted by create and update.
type WriteCustomerDto struct {
	FirstName string `json:"firstName" binding:"required,max=100" example:"Orgest"`
	LastName  string `json:"lastName" binding:"required,max=100" example:"Belba"`
	Email     string `json:"email" binding:"required,email,max=255" example:"orgestbelba@gmail.com"`
}

func ToCustomerDto(c models.Customer) CustomerDto {
	return CustomerDto{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}

func ToCustomerDtos(customers []models.Customer) []CustomerDto {
	out := make([]CustomerDto, 0, len(customers))
	for _, c := range customers {
		out = append(out, ToCustomerDto(c))
	}
	return out
}

// ToModel builds a new customer; the id is left for the store to assign.
func (w WriteCustomerDto) ToModel() models.Customer {
	return models.Customer{
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Email:     w.Email,
	}
}

// ApplyTo copies the write fields onto a loaded customer, keeping its id
// and any loaded relations.
func (w WriteCustomerDto) ApplyTo(c *models.Customer) {
	c.FirstName = w.FirstName
	c.LastName = w.LastName
	c.Email = w.Email
}
