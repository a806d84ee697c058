package models

import "time"

type Product struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Subcategory   string     `json:"subcategory"`
	Price         float64    `json:"price"`
	OriginalPrice *float64   `json:"original_price,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Rating        float64    `json:"rating"`
	Reviews       int        `json:"reviews"`
	SKU           string     `json:"sku"`
	IsNew         bool       `json:"is_new"`
	IsOnSale      bool       `json:"is_on_sale"`
	IsBestSeller  bool       `json:"is_best_seller"`
	IsActive      bool       `json:"is_active"`
	Stock         int        `json:"stock"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
