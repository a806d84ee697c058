package models

type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	ImageURL      string   `json:"image_url,omitempty"`
	Subcategories []string `json:"subcategories"`
}
