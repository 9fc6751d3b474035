package model

// Product represents a sellable menu item.
type Product struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Price float64 `json:"price" db:"price"`
}

// ProductRequest represents the payload for creating or updating a product.
type ProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
