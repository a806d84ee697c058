package user

import (
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"

	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
	"dukani_back_end/internal/utils"
)

// GET /api/auth/oauth/:provider
func BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider != "google" && provider != "facebook" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()
	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// GET /api/auth/oauth/:provider/callback
func CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		log.Printf("❌ Callback OAuth %s: %v", provider, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
		return
	}

	user, err := findOrCreateOAuthUser(provider, gothUser.UserID, gothUser.Email, gothUser.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	c.Redirect(http.StatusTemporaryRedirect,
		frontendURL+"/auth/callback?token="+url.QueryEscape(token))
}

// findOrCreateOAuthUser rattache le compte social à un compte existant
// (même email) ou en crée un nouveau
func findOrCreateOAuthUser(provider, providerID, email, name string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	var userID string
	if err := database.GetPreparedGetUserByEmail().Bind(email).Scan(&userID); err == nil {
		user, err := loadUser(userID)
		if err != nil {
			return nil, err
		}

		if user.Provider != provider || user.ProviderID != providerID {
			// Compte existant, on rattache le provider
			if err := session.Query("UPDATE users SET provider = ?, provider_id = ? WHERE user_id = ?",
				provider, providerID, userID).Exec(); err != nil {
				return nil, err
			}
			user.Provider = provider
			user.ProviderID = providerID
			log.Printf("🔄 Compte existant rattaché au provider %s: %s", provider, email)
		} else {
			log.Printf("✅ Utilisateur OAuth existant: %s", email)
		}
		return user, nil
	}

	now := time.Now()
	user := models.User{
		ID:         uuid.New().String(),
		Email:      email,
		FullName:   name,
		Provider:   provider,
		ProviderID: providerID,
		CreatedAt:  now,
	}

	if err := database.GetPreparedInsertUser().Bind(
		user.ID, user.Email, "", user.FullName, "",
		user.Provider, user.ProviderID, now).Exec(); err != nil {
		return nil, err
	}
	if err := database.GetPreparedInsertUserByEmail().Bind(user.Email, user.ID).Exec(); err != nil {
		if delErr := session.Query("DELETE FROM users WHERE user_id = ?", user.ID).Exec(); delErr != nil {
			log.Printf("⚠️ Compensation OAuth échouée pour %s: %v", user.ID, delErr)
		}
		return nil, err
	}

	log.Printf("🆕 Utilisateur OAuth créé (%s): %s", provider, email)
	return &user, nil
}
