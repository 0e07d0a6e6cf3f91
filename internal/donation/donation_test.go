package donation_test

import (
	"strings"
	"testing"

	"alattar_back_end/internal/donation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackages_FixedOffer(t *testing.T) {
	t.Parallel()

	pkgs := donation.Packages()
	require.Len(t, pkgs, 3)

	assert.Equal(t, "basic", pkgs[0].ID)
	assert.Equal(t, 100.0, pkgs[0].Price)
	assert.Equal(t, "medium", pkgs[1].ID)
	assert.Equal(t, 250.0, pkgs[1].Price)
	assert.Equal(t, "premium", pkgs[2].ID)
	assert.Equal(t, 500.0, pkgs[2].Price)

	for _, p := range pkgs {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Contents)
	}
}

func TestByID(t *testing.T) {
	t.Parallel()

	p, ok := donation.ByID("medium")
	require.True(t, ok)
	assert.Equal(t, 250.0, p.Price)

	// l'option de montant libre est adressable aussi
	p, ok = donation.ByID("custom")
	require.True(t, ok)
	assert.Equal(t, donation.CustomPackage, p)

	_, ok = donation.ByID("gold")
	assert.False(t, ok)
}

func TestCompose(t *testing.T) {
	t.Parallel()

	pkg, _ := donation.ByID("basic")
	message, link := donation.Compose(pkg)

	assert.Contains(t, message, "🤲 *التبرع* 🤲")
	assert.Contains(t, message, pkg.Name)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/970597167176?text="))
}
