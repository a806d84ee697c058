package catalog

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"dukani_back_end/internal/models"
)

type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortRating    SortOption = "rating"
	SortNewest    SortOption = "newest"
)

// FilterConfig combine les filtres de la boutique :
// ET entre les familles de critères, OU entre les seuils de note
type FilterConfig struct {
	Categories    []string
	Subcategories []string
	PriceMin      float64
	PriceMax      float64 // 0 = pas de plafond
	Ratings       []float64
	OnSale        bool
	New           bool
	BestSeller    bool
}

// Applied distingue "aucun filtre actif" d'un résultat vide
func (f FilterConfig) Applied() bool {
	return len(f.Categories) > 0 || len(f.Subcategories) > 0 ||
		f.PriceMin > 0 || f.PriceMax > 0 || len(f.Ratings) > 0 ||
		f.OnSale || f.New || f.BestSeller
}

// Matches vérifie qu'un produit satisfait tous les critères actifs
func (f FilterConfig) Matches(p models.Product) bool {
	if len(f.Categories) > 0 && !contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Subcategories) > 0 && !contains(f.Subcategories, p.Subcategory) {
		return false
	}
	if p.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && p.Price > f.PriceMax {
		return false
	}
	if len(f.Ratings) > 0 {
		ok := false
		for _, r := range f.Ratings {
			if p.Rating >= r {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.OnSale && !p.IsOnSale {
		return false
	}
	if f.New && !p.IsNew {
		return false
	}
	if f.BestSeller && !p.IsBestSeller {
		return false
	}
	return true
}

// Apply renvoie le sous-ensemble filtré, dans l'ordre d'entrée
func (f FilterConfig) Apply(products []models.Product) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}

// Sort trie une copie de la liste ; stable sur l'ordre d'entrée pour toutes les clés
func Sort(products []models.Product, by SortOption) []models.Product {
	result := make([]models.Product, len(products))
	copy(result, products)

	switch by {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool { return result[i].IsNew && !result[j].IsNew })
	default: // featured
		sort.SliceStable(result, func(i, j int) bool { return result[i].IsBestSeller && !result[j].IsBestSeller })
	}

	return result
}

// DiscountPercent calcule la remise affichée. Dérivée, jamais stockée.
func DiscountPercent(p models.Product) int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 || p.Price >= *p.OriginalPrice {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}

// FormatPrice affiche un prix en shillings : "UShs 1,850,000"
func FormatPrice(price float64) string {
	n := int64(math.Round(price))
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return fmt.Sprintf("UShs %s", out)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
