package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"dukani_back_end/internal/cache"
	"dukani_back_end/internal/database"
)

// RequireAdmin vérifie que l'utilisateur porte le rôle "admin" dans la table
// user_roles. Le rôle vit en base et non dans le token : révoquer un admin
// prend effet dès l'expiration du cache, pas du JWT.
func RequireAdmin(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		c.Abort()
		return
	}

	ctx := context.Background()
	if role, ok := cache.GetCachedRole(ctx, userID); ok {
		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
		c.Abort()
		return
	}

	var role string
	err = session.Query("SELECT role FROM user_roles WHERE user_id = ? AND role = 'admin'", userID).Scan(&role)
	if err != nil {
		// Pas de ligne = pas admin ; on mémorise aussi l'absence
		cache.SetCachedRole(ctx, userID, "none")
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}

	cache.SetCachedRole(ctx, userID, role)
	c.Next()
}
