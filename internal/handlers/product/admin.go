package product

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dukani_back_end/internal/cache"
	"dukani_back_end/internal/catalog"
	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
	"dukani_back_end/internal/services"
	"dukani_back_end/internal/utils"
)

type productInput struct {
	Name          string   `json:"name" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Subcategory   string   `json:"subcategory"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price"`
	ImageURL      string   `json:"image_url"`
	SKU           string   `json:"sku"`
	IsNew         bool     `json:"is_new"`
	IsOnSale      bool     `json:"is_on_sale"`
	IsBestSeller  bool     `json:"is_best_seller"`
	Stock         int      `json:"stock"`
}

// POST /api/admin/products
func CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.OriginalPrice != nil && *input.OriginalPrice <= input.Price {
		c.JSON(http.StatusBadRequest, gin.H{"error": "original_price must be greater than price"})
		return
	}
	if !isKnownCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
		return
	}

	now := time.Now()
	p := models.Product{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Category:      input.Category,
		Subcategory:   input.Subcategory,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		ImageURL:      input.ImageURL,
		SKU:           input.SKU,
		IsNew:         input.IsNew,
		IsOnSale:      input.IsOnSale,
		IsBestSeller:  input.IsBestSeller,
		IsActive:      true,
		Stock:         input.Stock,
		CreatedAt:     &now,
		UpdatedAt:     &now,
	}

	err = session.Query(`INSERT INTO products (product_id, name, category, subcategory, price, original_price,
		image_url, rating, reviews, sku, is_new, is_on_sale, is_best_seller, is_active, stock, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Category, p.Subcategory, p.Price, p.OriginalPrice,
		p.ImageURL, p.Rating, p.Reviews, p.SKU, p.IsNew, p.IsOnSale, p.IsBestSeller,
		p.IsActive, p.Stock, now, now).Exec()
	if err != nil {
		utils.LogFailedAction(c, utils.ACTION_PRODUCT_CREATE, utils.RESOURCE_PRODUCT, p.ID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	cache.InvalidateProducts(c.Request.Context(), p.ID)
	services.IndexProduct(p)
	utils.LogAction(c, utils.ACTION_PRODUCT_CREATE, utils.RESOURCE_PRODUCT, p.ID, nil, p)

	c.JSON(http.StatusCreated, gin.H{"product": p})
}

// PUT /api/admin/products/:id
func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.OriginalPrice != nil && *input.OriginalPrice <= input.Price {
		c.JSON(http.StatusBadRequest, gin.H{"error": "original_price must be greater than price"})
		return
	}
	if !isKnownCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
		return
	}

	// L'ancien état sert au log d'audit
	old, err := scanProduct(productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	now := time.Now()
	updated := *old
	updated.Name = input.Name
	updated.Category = input.Category
	updated.Subcategory = input.Subcategory
	updated.Price = input.Price
	updated.OriginalPrice = input.OriginalPrice
	if input.ImageURL != "" {
		updated.ImageURL = input.ImageURL
	}
	updated.SKU = input.SKU
	updated.IsNew = input.IsNew
	updated.IsOnSale = input.IsOnSale
	updated.IsBestSeller = input.IsBestSeller
	updated.Stock = input.Stock
	updated.UpdatedAt = &now

	err = session.Query(`UPDATE products SET name = ?, category = ?, subcategory = ?, price = ?,
		original_price = ?, image_url = ?, sku = ?, is_new = ?, is_on_sale = ?, is_best_seller = ?,
		stock = ?, updated_at = ? WHERE product_id = ?`,
		updated.Name, updated.Category, updated.Subcategory, updated.Price,
		updated.OriginalPrice, updated.ImageURL, updated.SKU, updated.IsNew, updated.IsOnSale,
		updated.IsBestSeller, updated.Stock, now, productID).Exec()
	if err != nil {
		utils.LogFailedAction(c, utils.ACTION_PRODUCT_UPDATE, utils.RESOURCE_PRODUCT, productID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	cache.InvalidateProducts(c.Request.Context(), productID)
	services.IndexProduct(updated)
	utils.LogAction(c, utils.ACTION_PRODUCT_UPDATE, utils.RESOURCE_PRODUCT, productID, old, updated)

	c.JSON(http.StatusOK, gin.H{"product": updated})
}

// DELETE /api/admin/products/:id
// Suppression logique : le produit disparaît du catalogue mais les
// commandes passées gardent leurs lignes
func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
		return
	}

	old, err := scanProduct(productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	err = session.Query("UPDATE products SET is_active = false, updated_at = ? WHERE product_id = ?",
		time.Now(), productID).Exec()
	if err != nil {
		utils.LogFailedAction(c, utils.ACTION_PRODUCT_DELETE, utils.RESOURCE_PRODUCT, productID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	cache.InvalidateProducts(c.Request.Context(), productID)
	services.DeleteProductIndex(productID)
	utils.LogAction(c, utils.ACTION_PRODUCT_DELETE, utils.RESOURCE_PRODUCT, productID, old, nil)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// isKnownCategory accepte les catégories de la table ou du catalogue statique
func isKnownCategory(name string) bool {
	if categories, err := scanCategories(); err == nil {
		for _, cat := range categories {
			if cat.Name == name {
				return true
			}
		}
	}
	for _, cat := range catalog.StaticCategories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

// scanProduct lit un produit par ID depuis ScyllaDB
func scanProduct(productID string) (*models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	var p models.Product
	err = session.Query(`SELECT product_id, name, category, subcategory, price, original_price,
		image_url, rating, reviews, sku, is_new, is_on_sale, is_best_seller, is_active, stock,
		created_at, updated_at FROM products WHERE product_id = ?`, productID).Scan(
		&p.ID, &p.Name, &p.Category, &p.Subcategory, &p.Price, &p.OriginalPrice,
		&p.ImageURL, &p.Rating, &p.Reviews, &p.SKU, &p.IsNew, &p.IsOnSale, &p.IsBestSeller,
		&p.IsActive, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
