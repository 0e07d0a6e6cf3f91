package catalog_test

import (
	"testing"

	"alattar_back_end/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_CatalogShape(t *testing.T) {
	t.Parallel()

	products := catalog.Products()
	require.Len(t, products, 18)

	seen := make(map[int]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "id dupliqué %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.Greater(t, p.Price, 0.0)
	}
}

func TestProducts_ReturnsACopy(t *testing.T) {
	t.Parallel()

	first := catalog.Products()
	first[0].Name = "modifié"
	assert.NotEqual(t, "modifié", catalog.Products()[0].Name)
}

func TestByID(t *testing.T) {
	t.Parallel()

	p, ok := catalog.ByID(8)
	require.True(t, ok)
	assert.Equal(t, "كيلو عسل سدر أصلي", p.Name)
	assert.Equal(t, 100.0, p.Price)

	_, ok = catalog.ByID(999)
	assert.False(t, ok)
}

func TestCategories_StartsWithAll(t *testing.T) {
	t.Parallel()

	cats := catalog.Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, catalog.AllCategory, cats[0])

	// distinctes, dans l'ordre du catalogue
	assert.Equal(t, []string{
		catalog.AllCategory,
		"الأجبان و الألبان",
		"المكدوس",
		"العسل",
		"بهارات ومكسرات",
		"المخللات",
		"الشطة",
	}, cats)
}

func TestFilter_ByCategory(t *testing.T) {
	t.Parallel()

	got := catalog.Filter("", "العسل")
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].ID)

	// "الكل" et la catégorie vide ne filtrent rien
	assert.Len(t, catalog.Filter("", catalog.AllCategory), 18)
	assert.Len(t, catalog.Filter("", ""), 18)
}

func TestFilter_ByQuery(t *testing.T) {
	t.Parallel()

	// le nom et la description sont tous deux cherchés
	got := catalog.Filter("عسل", "")
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].ID)

	got = catalog.Filter("مخلل", "")
	require.Len(t, got, 2)

	assert.Empty(t, catalog.Filter("بيتزا", ""))
}

func TestFilter_QueryAndCategoryCombine(t *testing.T) {
	t.Parallel()

	got := catalog.Filter("سمن", "الأجبان و الألبان")
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Equal(t, "الأجبان و الألبان", p.Category)
	}

	// même requête, mauvaise catégorie : rien
	assert.Empty(t, catalog.Filter("سمن", "العسل"))
}
