package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"alattar_back_end/internal/whatsapp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepLink_EncodesMessage(t *testing.T) {
	t.Parallel()

	msg := "🛒 *طلب جديد*\nسطر ثاني & رموز ?=+"
	link := whatsapp.DeepLink(whatsapp.DestinationNumber, msg)

	require.True(t, strings.HasPrefix(link, "https://wa.me/970597167176?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, msg, u.Query().Get("text"))
}

func TestQRDataURL(t *testing.T) {
	t.Parallel()

	data, err := whatsapp.QRDataURL("https://wa.me/970597167176?text=abc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(data, "data:image/png;base64,"))
	assert.Greater(t, len(data), len("data:image/png;base64,"))
}
