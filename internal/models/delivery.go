package models

// DeliveryArea : zone nommée avec frais de livraison fixes.
type DeliveryArea struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}
