package catalog

import (
	"strings"

	"alattar_back_end/internal/models"
)

// AllCategory : valeur de filtre qui désactive le filtre par catégorie.
const AllCategory = "الكل"

// Products retourne une copie du catalogue complet.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByID retourne le produit correspondant, ou false s'il n'existe pas.
func ByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Categories retourne "الكل" suivi des catégories distinctes, dans l'ordre du catalogue.
func Categories() []string {
	seen := make(map[string]bool)
	out := []string{AllCategory}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Filter filtre le catalogue par requête libre (nom/description) et par catégorie.
// Une requête vide ou la catégorie "الكل" ne filtrent rien.
func Filter(query, category string) []models.Product {
	query = strings.TrimSpace(query)
	out := []models.Product{}
	for _, p := range products {
		if category != "" && category != AllCategory && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(p.Name, query) &&
			!strings.Contains(p.Description, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
