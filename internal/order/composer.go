package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"alattar_back_end/internal/cart"
	"alattar_back_end/internal/models"
	"alattar_back_end/internal/whatsapp"
)

var (
	// ErrEmptyCart : rien à commander, aucun lien n'est produit.
	ErrEmptyCart = errors.New("السلة فارغة")
	// ErrNotAuthenticated : pas de session ; l'appelant doit rediriger
	// l'utilisateur vers la page d'inscription.
	ErrNotAuthenticated = errors.New("non authentifié")
)

// Checkout : tout ce qu'il faut pour composer le message de commande.
type Checkout struct {
	Session      models.Session
	Items        []models.CartItem
	Area         models.DeliveryArea
	Notes        string
	DeliveryDate string
}

// Result : message composé, lien wa.me et QR du lien.
type Result struct {
	Message string `json:"message"`
	Link    string `json:"link"`
	QR      string `json:"qr,omitempty"`
}

// ComposeMessage assemble le récapitulatif de commande en arabe :
// identité de l'acheteur, contact, zone + frais de livraison, notes et date
// éventuelles, lignes numérotées, sous-total, frais, total.
func ComposeMessage(co Checkout) (string, error) {
	if len(co.Items) == 0 {
		return "", ErrEmptyCart
	}
	if !co.Session.IsAuthenticated || co.Session.User == nil {
		return "", ErrNotAuthenticated
	}

	u := co.Session.User
	subtotal := cart.Subtotal(co.Items)
	total := cart.Total(co.Items, co.Area.Cost)

	var b strings.Builder
	b.WriteString("🛒 *طلب جديد من العطار العربي* 🛒\n\n")

	b.WriteString("*الاسم:* " + u.FullName + "\n")
	b.WriteString("*الهاتف:* " + u.Phone + "\n")
	if u.Phone2 != "" {
		b.WriteString("*هاتف إضافي:* " + u.Phone2 + "\n")
	}
	b.WriteString("*المنطقة:* " + u.Region + "\n")
	b.WriteString("*العنوان:* " + u.Address + "\n")
	if u.PreferredContact != "" {
		b.WriteString("*وسيلة التواصل المفضلة:* " + u.PreferredContact + "\n")
	}
	if co.Notes != "" {
		b.WriteString("*ملاحظات:* " + co.Notes + "\n")
	}
	if co.DeliveryDate != "" {
		b.WriteString("*تاريخ التوصيل:* " + co.DeliveryDate + "\n")
	}

	b.WriteString("\n*المنتجات:*\n")
	for i, it := range co.Items {
		line := it.Price * float64(it.Quantity)
		b.WriteString(fmt.Sprintf("%d. %s - %d × ₪%s = ₪%s\n",
			i+1, it.Name, it.Quantity, formatPrice(it.Price), formatPrice(line)))
	}

	b.WriteString("\n*المجموع الفرعي:* ₪" + formatPrice(subtotal))
	b.WriteString(fmt.Sprintf("\n*رسوم التوصيل (%s):* ₪%s", co.Area.Name, formatPrice(co.Area.Cost)))
	b.WriteString("\n*المجموع الكلي:* ₪" + formatPrice(total))

	return b.String(), nil
}

// Compose produit le message, le lien de remise WhatsApp et son QR.
func Compose(co Checkout) (Result, error) {
	msg, err := ComposeMessage(co)
	if err != nil {
		return Result{}, err
	}

	link := whatsapp.DeepLink(whatsapp.DestinationNumber, msg)
	qr, err := whatsapp.QRDataURL(link)
	if err != nil {
		// le lien suffit, le QR est un bonus
		qr = ""
	}
	return Result{Message: msg, Link: link, QR: qr}, nil
}

// ComposeProduct : commande directe d'un seul produit ("اطلب الآن").
func ComposeProduct(p models.Product) Result {
	msg := "🛒 *طلب منتج من العطار العربي* 🛒\n\n" +
		"*المنتج:* " + p.Name + "\n" +
		"*السعر:* ₪" + formatPrice(p.Price) + "\n" +
		"*الوزن:* " + p.Weight + "\n\n" +
		"أرغب بطلب هذا المنتج. الرجاء تزويدي بالتفاصيل."

	return Result{
		Message: msg,
		Link:    whatsapp.DeepLink(whatsapp.DestinationNumber, msg),
	}
}

// formatPrice affiche les prix entiers sans décimales (₪25, pas ₪25.00).
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
