package order_test

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"alattar_back_end/internal/delivery"
	"alattar_back_end/internal/models"
	"alattar_back_end/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *models.UserProfile {
	return &models.UserProfile{
		ID:               "4b6f1d2e-0000-0000-0000-000000000001",
		FullName:         "محمد أحمد",
		Phone:            "0599123456",
		Address:          "شارع رفيديا",
		Region:           "نابلس",
		SocialMediaType:  "whatsapp",
		SocialMedia:      "0599123456",
		PreferredContact: "واتساب",
		DeliveryLocation: "الضفة الغربية",
	}
}

func sampleCheckout() order.Checkout {
	return order.Checkout{
		Session: models.Session{User: sampleProfile(), IsAuthenticated: true},
		Items: []models.CartItem{
			{ID: 1, Name: "واحد كيلو جبنة نعاج", Price: 25, Quantity: 2},
			{ID: 8, Name: "كيلو عسل سدر أصلي", Price: 100, Quantity: 1},
		},
		Area: delivery.Default(),
	}
}

func TestComposeMessage_EmptyCart(t *testing.T) {
	t.Parallel()

	co := sampleCheckout()
	co.Items = nil

	_, err := order.ComposeMessage(co)
	assert.ErrorIs(t, err, order.ErrEmptyCart)

	_, err = order.Compose(co)
	assert.ErrorIs(t, err, order.ErrEmptyCart)
}

func TestComposeMessage_NotAuthenticated(t *testing.T) {
	t.Parallel()

	co := sampleCheckout()
	co.Session = models.Session{}
	_, err := order.ComposeMessage(co)
	assert.ErrorIs(t, err, order.ErrNotAuthenticated)

	// session sans profil : même refus
	co.Session = models.Session{IsAuthenticated: true}
	_, err = order.ComposeMessage(co)
	assert.ErrorIs(t, err, order.ErrNotAuthenticated)
}

func TestComposeMessage_ContainsEveryLineAndConsistentTotals(t *testing.T) {
	t.Parallel()

	co := sampleCheckout()
	msg, err := order.ComposeMessage(co)
	require.NoError(t, err)

	// identité et contact de l'acheteur
	assert.Contains(t, msg, "*الاسم:* محمد أحمد")
	assert.Contains(t, msg, "*الهاتف:* 0599123456")
	assert.Contains(t, msg, "*المنطقة:* نابلس")
	assert.Contains(t, msg, "*العنوان:* شارع رفيديا")

	// chaque ligne : nom, quantité, total de ligne
	assert.Contains(t, msg, "1. واحد كيلو جبنة نعاج - 2 × ₪25 = ₪50")
	assert.Contains(t, msg, "2. كيلو عسل سدر أصلي - 1 × ₪100 = ₪100")

	// totaux cohérents : 50 + 100 = 150, livraison 15, total 165
	assert.Contains(t, msg, "*المجموع الفرعي:* ₪150")
	assert.Contains(t, msg, fmt.Sprintf("*رسوم التوصيل (%s):* ₪15", co.Area.Name))
	assert.Contains(t, msg, "*المجموع الكلي:* ₪165")
}

func TestComposeMessage_OptionalFields(t *testing.T) {
	t.Parallel()

	co := sampleCheckout()
	msg, err := order.ComposeMessage(co)
	require.NoError(t, err)
	assert.NotContains(t, msg, "*ملاحظات:*")
	assert.NotContains(t, msg, "*تاريخ التوصيل:*")
	assert.NotContains(t, msg, "*هاتف إضافي:*")

	co.Notes = "بدون بصل"
	co.DeliveryDate = "2025-06-01"
	co.Session.User.Phone2 = "0569000000"
	msg, err = order.ComposeMessage(co)
	require.NoError(t, err)
	assert.Contains(t, msg, "*ملاحظات:* بدون بصل")
	assert.Contains(t, msg, "*تاريخ التوصيل:* 2025-06-01")
	assert.Contains(t, msg, "*هاتف إضافي:* 0569000000")
}

func TestCompose_DeepLink(t *testing.T) {
	t.Parallel()

	result, err := order.Compose(sampleCheckout())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(result.Link, "https://wa.me/970597167176?text="))

	// le message encodé se décode vers le message composé
	u, err := url.Parse(result.Link)
	require.NoError(t, err)
	assert.Equal(t, result.Message, u.Query().Get("text"))

	// le QR est un PNG en data-URL
	assert.True(t, strings.HasPrefix(result.QR, "data:image/png;base64,"))
}

func TestComposeProduct(t *testing.T) {
	t.Parallel()

	p := models.Product{ID: 8, Name: "كيلو عسل سدر أصلي", Price: 100, Weight: "1 كجم"}
	result := order.ComposeProduct(p)

	assert.Contains(t, result.Message, "*المنتج:* كيلو عسل سدر أصلي")
	assert.Contains(t, result.Message, "*السعر:* ₪100")
	assert.Contains(t, result.Message, "*الوزن:* 1 كجم")
	assert.True(t, strings.HasPrefix(result.Link, "https://wa.me/970597167176?text="))
}
