package product

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"dukani_back_end/internal/cache"
	"dukani_back_end/internal/database"
	"dukani_back_end/internal/services"
	"dukani_back_end/internal/utils"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

const maxImageSize = 5 << 20 // 5 MB

// POST /api/admin/products/:id/image
func UploadImage(c *gin.Context) {
	productID := c.Param("id")

	old, err := scanProduct(productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image format"})
		return
	}
	if file.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image too large (max 5 MB)"})
		return
	}

	url, err := services.UploadProductImage(c.Request.Context(), productID, file)
	if err != nil {
		utils.LogFailedAction(c, utils.ACTION_PRODUCT_IMAGE, utils.RESOURCE_PRODUCT, productID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
		return
	}
	err = session.Query("UPDATE products SET image_url = ?, updated_at = ? WHERE product_id = ?",
		url, time.Now(), productID).Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image URL"})
		return
	}

	cache.InvalidateProducts(c.Request.Context(), productID)
	utils.LogAction(c, utils.ACTION_PRODUCT_IMAGE, utils.RESOURCE_PRODUCT, productID,
		gin.H{"image_url": old.ImageURL}, gin.H{"image_url": url})

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

// GET /api/admin/products/:id/image/signed-url
// URL signée à durée limitée, utile quand le bucket n'est pas public
func SignedImageURL(c *gin.Context) {
	productID := c.Param("id")

	p, err := scanProduct(productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if p.ImageURL == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product has no image"})
		return
	}

	signed, err := services.GenerateSignedURL(c.Request.Context(), p.ImageURL, 1*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"signed_url": signed})
}
