package product

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dukani_back_end/internal/cache"
	"dukani_back_end/internal/catalog"
	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
	"dukani_back_end/internal/services"
)

// loadProducts récupère le catalogue : cache Redis, puis ScyllaDB,
// puis catalogue statique si la table est vide ou injoignable
func loadProducts(ctx context.Context) []models.Product {
	if products, ok := cache.GetProducts(ctx); ok {
		return products
	}

	products, err := scanProducts()
	if err != nil || len(products) == 0 {
		if err != nil {
			log.Printf("⚠️ Lecture products impossible, bascule sur le catalogue statique: %v", err)
		}
		return catalog.StaticProducts
	}

	cache.SetProducts(ctx, products)
	return products
}

// scanProducts lit tous les produits actifs depuis ScyllaDB
func scanProducts() ([]models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, name, category, subcategory, price, original_price,
		image_url, rating, reviews, sku, is_new, is_on_sale, is_best_seller, is_active, stock,
		created_at, updated_at FROM products`).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Category, &p.Subcategory, &p.Price, &p.OriginalPrice,
		&p.ImageURL, &p.Rating, &p.Reviews, &p.SKU, &p.IsNew, &p.IsOnSale, &p.IsBestSeller,
		&p.IsActive, &p.Stock, &p.CreatedAt, &p.UpdatedAt) {
		if p.IsActive {
			products = append(products, p)
		}
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

// parseFilter construit le filtre à partir des query params
func parseFilter(c *gin.Context) catalog.FilterConfig {
	f := catalog.FilterConfig{}

	if v := c.Query("categories"); v != "" {
		f.Categories = strings.Split(v, ",")
	}
	if v := c.Query("subcategories"); v != "" {
		f.Subcategories = strings.Split(v, ",")
	}
	if v := c.Query("price_min"); v != "" {
		f.PriceMin, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("price_max"); v != "" {
		f.PriceMax, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("ratings"); v != "" {
		for _, s := range strings.Split(v, ",") {
			if r, err := strconv.ParseFloat(s, 64); err == nil {
				f.Ratings = append(f.Ratings, r)
			}
		}
	}
	f.OnSale = c.Query("on_sale") == "true"
	f.New = c.Query("new") == "true"
	f.BestSeller = c.Query("best_seller") == "true"

	return f
}

// GET /api/products
func ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	products := loadProducts(ctx)

	filter := parseFilter(c)
	filtered := filter.Apply(products)
	sorted := catalog.Sort(filtered, catalog.SortOption(c.DefaultQuery("sort", "featured")))

	c.JSON(http.StatusOK, gin.H{
		"products":       sorted,
		"total":          len(sorted),
		"filter_applied": filter.Applied(),
	})
}

// GET /api/products/:id
func GetProduct(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("id")

	if p, ok := cache.GetProduct(ctx, productID); ok {
		c.JSON(http.StatusOK, gin.H{"product": p, "discount_percent": catalog.DiscountPercent(*p)})
		return
	}

	for _, p := range loadProducts(ctx) {
		if p.ID == productID {
			cache.SetProduct(ctx, p)
			c.JSON(http.StatusOK, gin.H{"product": p, "discount_percent": catalog.DiscountPercent(p)})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
}

// GET /api/products/search?q=...
// Elasticsearch d'abord, filtrage en mémoire si l'index est indisponible
func SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	results, err := services.SearchProducts(query)
	if err != nil {
		log.Printf("⚠️ Recherche Elastic indisponible, repli sur le catalogue: %v", err)
		results = searchFallback(c.Request.Context(), query)
	}

	c.JSON(http.StatusOK, gin.H{"products": results, "total": len(results)})
}

// searchFallback fait une recherche insensible à la casse sur nom/catégorie/SKU
func searchFallback(ctx context.Context, query string) []models.Product {
	q := strings.ToLower(query)
	results := []models.Product{}
	for _, p := range loadProducts(ctx) {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Subcategory), q) ||
			strings.Contains(strings.ToLower(p.SKU), q) {
			results = append(results, p)
		}
	}
	return results
}
