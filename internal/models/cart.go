package models

// CartItem est un instantané du produit au moment de l'ajout, plus la quantité.
// C'est exactement ce blob qui est sérialisé dans Redis sous cart:<userID>.
type CartItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Weight      string  `json:"weight"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
}
