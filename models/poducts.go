package models

import "time"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailedDescription,omitempty"`
	Price               float64   `json:"price"`
	OriginalPrice       float64   `json:"originalPrice,omitempty"`
	Discount            float64   `json:"discount,omitempty"` // percentage, 0-100
	Images              []string  `json:"images"`
	Category            Category  `json:"category"`
	InStock             bool      `json:"inStock"`
	StockCount          int       `json:"stockCount"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
