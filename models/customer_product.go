package models

// CustomerProduct links a customer to a product. The pair is the primary
// key, so a customer can be linked to the same product only once.
type CustomerProduct struct {
	CustomerID uint      `gorm:"primaryKey;autoIncrement:false"`
	ProductID  uint      `gorm:"primaryKey;autoIncrement:false;index"`
	Customer   *Customer `gorm:"foreignKey:CustomerID"`
	Product    *Product  `gorm:"foreignKey:ProductID"`
}

// All returns every model backed by a table, in dependency order.
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&Product{},
		&Order{},
		&CustomerProduct{},
	}
}
