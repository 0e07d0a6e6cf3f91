package models

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Weight      string  `json:"weight"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}
