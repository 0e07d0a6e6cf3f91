package whatsapp

import (
	"encoding/base64"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// DestinationNumber : numéro WhatsApp du magasin (format international sans +).
const DestinationNumber = "970597167176"

// DeepLink construit l'URL wa.me qui ouvre WhatsApp avec le message prérempli.
// L'ouverture du lien est à la charge de l'hôte ; aucune réponse n'est lue.
func DeepLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

// QRDataURL encode le lien en QR PNG base64, prêt pour un <img src="...">.
func QRDataURL(link string) (string, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
