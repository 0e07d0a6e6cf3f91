package models

// DonationPackage : paquet de dons à prix fixe proposé sur la page d'accueil.
type DonationPackage struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Contents []string `json:"contents"`
}
