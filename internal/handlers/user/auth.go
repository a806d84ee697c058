package user

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
	"dukani_back_end/internal/utils"
)

// POST /api/auth/register
func Register(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
		return
	}

	// Email déjà pris ?
	var existingID string
	if err := database.GetPreparedGetUserByEmail().Bind(email).Scan(&existingID); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	now := time.Now()
	user := models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  hashed,
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     strings.TrimSpace(input.Phone),
		Provider:  "email",
		CreatedAt: now,
	}

	if err := database.GetPreparedInsertUser().Bind(
		user.ID, user.Email, user.Password, user.FullName, user.Phone,
		user.Provider, user.ProviderID, now).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	// Index par email ; si l'insertion échoue on retire le compte
	// pour ne pas laisser un utilisateur introuvable au login
	if err := database.GetPreparedInsertUserByEmail().Bind(user.Email, user.ID).Exec(); err != nil {
		if delErr := session.Query("DELETE FROM users WHERE user_id = ?", user.ID).Exec(); delErr != nil {
			log.Printf("⚠️ Compensation inscription échouée pour %s: %v", user.ID, delErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	utils.LogAction(c, utils.ACTION_REGISTER, utils.RESOURCE_AUTH, user.ID, nil, gin.H{"email": email})
	log.Printf("🆕 Utilisateur inscrit: %s", email)

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"userId":   user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
	})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var userID string
	if err := database.GetPreparedGetUserByEmail().Bind(email).Scan(&userID); err != nil {
		utils.LogFailedAction(c, utils.ACTION_LOGIN_FAILED, utils.RESOURCE_AUTH, email, "unknown email")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	user, err := loadUser(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if user.Provider != "email" || user.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This account uses social login"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, user.Password)
	if err != nil || !ok {
		utils.LogFailedAction(c, utils.ACTION_LOGIN_FAILED, utils.RESOURCE_AUTH, userID, "bad password")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	now := time.Now()
	if err := database.GetPreparedUpdateLastSignIn().Bind(now, userID).Exec(); err != nil {
		log.Printf("⚠️ Mise à jour last_sign_in échouée pour %s: %v", userID, err)
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	utils.LogAction(c, utils.ACTION_LOGIN_SUCCESS, utils.RESOURCE_AUTH, userID, nil, nil)

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"userId":   user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := loadUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":     user.ID,
		"email":      user.Email,
		"fullName":   user.FullName,
		"phone":      user.Phone,
		"provider":   user.Provider,
		"createdAt":  user.CreatedAt,
		"lastSignIn": user.LastSignIn,
	})
}

// PUT /api/auth/profile
func UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.GetPreparedUpdateProfile().Bind(
		strings.TrimSpace(input.FullName), strings.TrimSpace(input.Phone), userID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PUT /api/auth/password
func ChangePassword(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := loadUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ok, err := utils.VerifyPassword(input.CurrentPassword, user.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
		return
	}
	if err := session.Query("UPDATE users SET password = ? WHERE user_id = ?", hashed, userID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// loadUser lit un utilisateur complet par ID
func loadUser(userID string) (*models.User, error) {
	user := models.User{ID: userID}
	var lastSignIn *time.Time

	err := database.GetPreparedGetUserByID().Bind(userID).Scan(
		&user.Email, &user.Password, &user.FullName, &user.Phone,
		&user.Provider, &user.ProviderID, &user.CreatedAt, &lastSignIn)
	if err != nil {
		return nil, err
	}
	user.LastSignIn = lastSignIn
	return &user, nil
}
