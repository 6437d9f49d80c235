package models

import "time"

type CartItem struct {
	ID       string    `json:"id"`
	Product  Product   `json:"product"` // snapshot, refreshed on read/update
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

type Cart struct {
	ID         string     `json:"id"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	Subtotal   float64    `json:"subtotal"`
	Tax        float64    `json:"tax"`
	Shipping   float64    `json:"shipping"`
	Total      float64    `json:"total"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
