package cache

import (
	"context"
	"encoding/json"
	"time"

	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
)

const (
	ProductCacheTTL  = 10 * time.Minute
	CategoryCacheTTL = 30 * time.Minute
	RoleCacheTTL     = 5 * time.Minute

	productsKey   = "catalog:products"
	categoriesKey = "catalog:categories"
)

// GetProducts récupère la liste des produits depuis Redis, ok=false si absent
func GetProducts(ctx context.Context) ([]models.Product, bool) {
	data, err := database.Redis.Get(ctx, productsKey).Result()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if json.Unmarshal([]byte(data), &products) != nil {
		return nil, false
	}
	return products, true
}

// SetProducts met la liste des produits en cache
func SetProducts(ctx context.Context, products []models.Product) {
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, productsKey, data, ProductCacheTTL)
	}
}

// GetProduct récupère un produit seul
func GetProduct(ctx context.Context, productID string) (*models.Product, bool) {
	data, err := database.Redis.Get(ctx, "product:"+productID).Result()
	if err != nil {
		return nil, false
	}
	var p models.Product
	if json.Unmarshal([]byte(data), &p) != nil {
		return nil, false
	}
	return &p, true
}

// SetProduct met un produit seul en cache
func SetProduct(ctx context.Context, p models.Product) {
	if data, err := json.Marshal(p); err == nil {
		database.Redis.Set(ctx, "product:"+p.ID, data, ProductCacheTTL)
	}
}

// InvalidateProducts purge la liste et un produit précis après une écriture admin
func InvalidateProducts(ctx context.Context, productID string) {
	database.Redis.Del(ctx, productsKey, "product:"+productID)
}

// GetCategories récupère les catégories en cache
func GetCategories(ctx context.Context) ([]models.Category, bool) {
	data, err := database.Redis.Get(ctx, categoriesKey).Result()
	if err != nil {
		return nil, false
	}
	var categories []models.Category
	if json.Unmarshal([]byte(data), &categories) != nil {
		return nil, false
	}
	return categories, true
}

// SetCategories met les catégories en cache
func SetCategories(ctx context.Context, categories []models.Category) {
	if data, err := json.Marshal(categories); err == nil {
		database.Redis.Set(ctx, categoriesKey, data, CategoryCacheTTL)
	}
}

// GetCachedRole lit le rôle en cache d'un utilisateur ("" si absent)
func GetCachedRole(ctx context.Context, userID string) (string, bool) {
	role, err := database.Redis.Get(ctx, "role:"+userID).Result()
	if err != nil {
		return "", false
	}
	return role, true
}

// SetCachedRole met le rôle d'un utilisateur en cache.
// "none" est stocké tel quel pour mémoriser l'absence de rôle.
func SetCachedRole(ctx context.Context, userID, role string) {
	database.Redis.Set(ctx, "role:"+userID, role, RoleCacheTTL)
}

// InvalidateRole purge le rôle après une modification admin
func InvalidateRole(ctx context.Context, userID string) {
	database.Redis.Del(ctx, "role:"+userID)
}
