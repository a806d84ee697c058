package product

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dukani_back_end/internal/cache"
	"dukani_back_end/internal/catalog"
	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
)

// GET /api/categories
// Même stratégie de repli que les produits : cache, Scylla, statique
func ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	if categories, ok := cache.GetCategories(ctx); ok {
		c.JSON(http.StatusOK, gin.H{"categories": categories})
		return
	}

	categories, err := scanCategories()
	if err != nil || len(categories) == 0 {
		if err != nil {
			log.Printf("⚠️ Lecture categories impossible, bascule sur le catalogue statique: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{"categories": catalog.StaticCategories})
		return
	}

	cache.SetCategories(ctx, categories)
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func scanCategories() ([]models.Category, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query("SELECT category_id, name, slug, image_url, subcategories FROM categories").Iter()

	var categories []models.Category
	var cat models.Category
	for iter.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.ImageURL, &cat.Subcategories) {
		categories = append(categories, cat)
		cat = models.Category{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return categories, nil
}
