package donation

import (
	"alattar_back_end/internal/models"
	"alattar_back_end/internal/whatsapp"
)

// Paquets de dons affichés sur la page d'accueil, à destination des
// familles dans le besoin. Prix fixes, contenu fixe.
var packages = []models.DonationPackage{
	{
		ID:    "basic",
		Name:  "الطرد الأساسي",
		Price: 100,
		Contents: []string{
			"كيلو مكدوس",
			"لبنة بلدية",
			"توصيل مجاني",
		},
	},
	{
		ID:    "medium",
		Name:  "الطرد المتوسط",
		Price: 250,
		Contents: []string{
			"عسل طبيعي",
			"كيلو مكدوس",
			"لبنة بلدية",
			"توصيل مجاني",
		},
	},
	{
		ID:    "premium",
		Name:  "الطرد المميز",
		Price: 500,
		Contents: []string{
			"كيلو عسل طبيعي",
			"2 كيلو مكدوس",
			"كيلو جبنة بلدية",
			"لبنة بلدية",
			"توصيل مجاني",
		},
	},
}

// CustomPackage : option "تبرع بمبلغ آخر", sans prix fixe.
var CustomPackage = models.DonationPackage{ID: "custom", Name: "تبرع مخصص"}

func Packages() []models.DonationPackage {
	out := make([]models.DonationPackage, len(packages))
	copy(out, packages)
	return out
}

// ByID retourne le paquet demandé ("custom" inclus), ou false.
func ByID(id string) (models.DonationPackage, bool) {
	if id == CustomPackage.ID {
		return CustomPackage, true
	}
	for _, p := range packages {
		if p.ID == id {
			return p, true
		}
	}
	return models.DonationPackage{}, false
}

// ComposeMessage : message WhatsApp de don pour le paquet choisi.
func ComposeMessage(pkg models.DonationPackage) string {
	return "🤲 *التبرع* 🤲\n\n" +
		"أرغب بالتبرع بـ " + pkg.Name + " لصالح العائلات المحتاجة. الرجاء تزويدي بالتفاصيل."
}

// Compose : message + lien wa.me vers le numéro du magasin.
func Compose(pkg models.DonationPackage) (message, link string) {
	message = ComposeMessage(pkg)
	link = whatsapp.DeepLink(whatsapp.DestinationNumber, message)
	return message, link
}
