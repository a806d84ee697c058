package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukani_back_end/internal/models"
)

func TestApplyAllConstraintsAnded(t *testing.T) {
	f := FilterConfig{
		Categories: []string{"Home Appliances"},
		PriceMin:   100000,
		PriceMax:   2000000,
		OnSale:     true,
	}

	result := f.Apply(StaticProducts)
	require.NotEmpty(t, result)

	for _, p := range result {
		assert.Equal(t, "Home Appliances", p.Category)
		assert.GreaterOrEqual(t, p.Price, 100000.0)
		assert.LessOrEqual(t, p.Price, 2000000.0)
		assert.True(t, p.IsOnSale)
	}

	// complétude : tout produit satisfaisant les critères doit être présent
	ids := map[string]bool{}
	for _, p := range result {
		ids[p.ID] = true
	}
	for _, p := range StaticProducts {
		if f.Matches(p) {
			assert.True(t, ids[p.ID], "produit %s manquant dans le résultat", p.ID)
		}
	}
}

func TestApplyRatingThresholdsOred(t *testing.T) {
	f := FilterConfig{Ratings: []float64{4.7, 3.0}}

	result := f.Apply(StaticProducts)
	require.NotEmpty(t, result)
	for _, p := range result {
		assert.True(t, p.Rating >= 4.7 || p.Rating >= 3.0)
	}

	// un seuil unique plus strict réduit le résultat
	strict := FilterConfig{Ratings: []float64{4.7}}
	assert.LessOrEqual(t, len(strict.Apply(StaticProducts)), len(result))
}

func TestApplyEmptyResultIsValid(t *testing.T) {
	f := FilterConfig{PriceMin: 99000000}
	assert.True(t, f.Applied())
	assert.Empty(t, f.Apply(StaticProducts))

	none := FilterConfig{}
	assert.False(t, none.Applied())
	assert.Len(t, none.Apply(StaticProducts), len(StaticProducts))
}

func TestSortPriceReversal(t *testing.T) {
	// sans égalité de prix, tri croissant puis décroissant = ordre inversé
	products := []models.Product{
		{ID: "a", Price: 300},
		{ID: "b", Price: 100},
		{ID: "c", Price: 200},
	}

	asc := Sort(products, SortPriceLow)
	desc := Sort(products, SortPriceHigh)

	require.Len(t, asc, 3)
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortStableOnTies(t *testing.T) {
	products := []models.Product{
		{ID: "a", Price: 100, Rating: 4.0},
		{ID: "b", Price: 100, Rating: 4.0},
		{ID: "c", Price: 100, Rating: 4.0},
	}

	for _, by := range []SortOption{SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest} {
		sorted := Sort(products, by)
		require.Len(t, sorted, 3)
		assert.Equal(t, "a", sorted[0].ID, "tri %s non stable", by)
		assert.Equal(t, "b", sorted[1].ID, "tri %s non stable", by)
		assert.Equal(t, "c", sorted[2].ID, "tri %s non stable", by)
	}
}

func TestSortFeaturedBestSellersFirst(t *testing.T) {
	sorted := Sort(StaticProducts, SortFeatured)
	seenRegular := false
	for _, p := range sorted {
		if !p.IsBestSeller {
			seenRegular = true
		} else {
			assert.False(t, seenRegular, "best-seller après un produit ordinaire")
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	orig := 2100000.0
	p := models.Product{Price: 1850000, OriginalPrice: &orig}
	assert.Equal(t, 12, DiscountPercent(p))

	assert.Equal(t, 0, DiscountPercent(models.Product{Price: 1850000}))

	same := 1850000.0
	assert.Equal(t, 0, DiscountPercent(models.Product{Price: 1850000, OriginalPrice: &same}))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "UShs 1,850,000", FormatPrice(1850000))
	assert.Equal(t, "UShs 8,500", FormatPrice(8500))
	assert.Equal(t, "UShs 950", FormatPrice(950))
}
