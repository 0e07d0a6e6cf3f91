package delivery

import "alattar_back_end/internal/models"

// Table fixe des zones de livraison et de leurs frais forfaitaires.
// Pas de calcul de distance : un tarif plat par zone nommée, c'est tout.
var areas = []models.DeliveryArea{
	{Name: "الضفة الغربية", Cost: 15},
	{Name: "القدس", Cost: 25},
	{Name: "أماكن الـ48", Cost: 60},
}

// Areas retourne la table complète, dans l'ordre d'affichage.
func Areas() []models.DeliveryArea {
	out := make([]models.DeliveryArea, len(areas))
	copy(out, areas)
	return out
}

// Default : la première entrée de la table est la sélection par défaut.
func Default() models.DeliveryArea {
	return areas[0]
}

// Lookup retourne la zone portant ce nom, ou false si elle n'existe pas.
func Lookup(name string) (models.DeliveryArea, bool) {
	for _, a := range areas {
		if a.Name == name {
			return a, true
		}
	}
	return models.DeliveryArea{}, false
}
