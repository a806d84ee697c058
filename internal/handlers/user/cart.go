package user

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dukani_back_end/internal/cache"
	"dukani_back_end/internal/cart"
	"dukani_back_end/internal/catalog"
	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
)

const cartTTL = 30 * 24 * time.Hour // le panier survit 30 jours

func cartKey(userID string) string { return "cart:" + userID }

// loadCart lit le panier Redis d'un utilisateur (vide si absent)
func loadCart(ctx context.Context, userID string) []models.CartItem {
	data, err := database.Redis.Get(ctx, cartKey(userID)).Result()
	if err != nil || data == "" {
		return []models.CartItem{}
	}
	var items []models.CartItem
	if json.Unmarshal([]byte(data), &items) != nil {
		return []models.CartItem{}
	}
	return items
}

// saveCart écrit le panier et notifie les clients websocket
func saveCart(ctx context.Context, userID string, items []models.CartItem) {
	jsonData, _ := json.Marshal(items)
	database.Redis.Set(ctx, cartKey(userID), jsonData, cartTTL)
	database.Redis.Publish(ctx, "cart:sync:"+userID, "updated")
}

func cartResponse(items []models.CartItem) gin.H {
	return gin.H{
		"items":       items,
		"total_items": cart.TotalItems(items),
		"total_price": cart.TotalPrice(items),
	}
}

// GET /api/cart
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	items := loadCart(c.Request.Context(), userID)
	c.JSON(http.StatusOK, cartResponse(items))
}

// POST /api/cart/add
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	product, ok := findProduct(ctx, input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
	}

	items := cart.Add(loadCart(ctx, userID), item, input.Quantity)
	saveCart(ctx, userID, items)

	c.JSON(http.StatusOK, cartResponse(items))
}

// PUT /api/cart/:productId
func UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()
	productID := c.Param("productId")

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	items := cart.UpdateQuantity(loadCart(ctx, userID), productID, input.Quantity)
	saveCart(ctx, userID, items)

	c.JSON(http.StatusOK, cartResponse(items))
}

// DELETE /api/cart/:productId
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	items := cart.Remove(loadCart(ctx, userID), c.Param("productId"))
	saveCart(ctx, userID, items)

	c.JSON(http.StatusOK, cartResponse(items))
}

// DELETE /api/cart
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	if err := database.Redis.Del(ctx, cartKey(userID)).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	database.Redis.Publish(ctx, "cart:sync:"+userID, "cleared")

	c.JSON(http.StatusOK, cartResponse([]models.CartItem{}))
}

// findProduct cherche le produit dans le cache puis le catalogue complet
func findProduct(ctx context.Context, productID string) (*models.Product, bool) {
	if p, ok := cache.GetProduct(ctx, productID); ok {
		return p, true
	}
	// Le handler produit maintient le cache de liste ; on le relit ici
	if products, ok := cache.GetProducts(ctx); ok {
		for _, p := range products {
			if p.ID == productID {
				return &p, true
			}
		}
	}

	session, err := database.GetProductsSession()
	if err == nil {
		var p models.Product
		err = session.Query(`SELECT product_id, name, category, subcategory, price, original_price,
			image_url, rating, reviews, sku, is_new, is_on_sale, is_best_seller, is_active, stock,
			created_at, updated_at FROM products WHERE product_id = ?`, productID).Scan(
			&p.ID, &p.Name, &p.Category, &p.Subcategory, &p.Price, &p.OriginalPrice,
			&p.ImageURL, &p.Rating, &p.Reviews, &p.SKU, &p.IsNew, &p.IsOnSale, &p.IsBestSeller,
			&p.IsActive, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
		if err == nil && p.IsActive {
			cache.SetProduct(ctx, p)
			return &p, true
		}
	}

	// Catalogue statique en dernier recours
	for _, p := range catalog.StaticProducts {
		if p.ID == productID {
			return &p, true
		}
	}
	return nil, false
}
