// Package admin regroupe les endpoints du back-office.
package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dukani_back_end/internal/adminops"
	"dukani_back_end/internal/cache"
	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
	"dukani_back_end/internal/utils"
)

// scyllaAdminStore branche adminops sur le keyspace users
type scyllaAdminStore struct{}

func (scyllaAdminStore) ListRoleAssignments(_ context.Context, role string) ([]models.UserRole, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query("SELECT user_id, role, created_at FROM user_roles WHERE role = ? ALLOW FILTERING", role).Iter()

	var assignments []models.UserRole
	var a models.UserRole
	for iter.Scan(&a.UserID, &a.Role, &a.CreatedAt) {
		assignments = append(assignments, a)
		a = models.UserRole{}
	}
	return assignments, iter.Close()
}

func (scyllaAdminStore) ListAccounts(_ context.Context) ([]models.User, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query("SELECT user_id, email, full_name, created_at, last_sign_in FROM users").Iter()

	var users []models.User
	var u models.User
	for iter.Scan(&u.ID, &u.Email, &u.FullName, &u.CreatedAt, &u.LastSignIn) {
		users = append(users, u)
		u = models.User{}
	}
	return users, iter.Close()
}

func (scyllaAdminStore) CreateAccount(_ context.Context, user models.User) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	// INSERT CQL est un upsert : sans ce contrôle, un email déjà pris
	// écraserait l'index users_by_email du compte existant
	var existingID string
	if err := session.Query("SELECT user_id FROM users_by_email WHERE email = ?",
		user.Email).Scan(&existingID); err == nil {
		return adminops.ErrEmailTaken
	}

	if err := session.Query(`INSERT INTO users (user_id, email, password, full_name, phone, provider, provider_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Password, user.FullName, user.Phone,
		user.Provider, user.ProviderID, user.CreatedAt).Exec(); err != nil {
		return err
	}
	if err := session.Query("INSERT INTO users_by_email (email, user_id) VALUES (?, ?)",
		user.Email, user.ID).Exec(); err != nil {
		if delErr := session.Query("DELETE FROM users WHERE user_id = ?", user.ID).Exec(); delErr != nil {
			log.Printf("⚠️ Compensation création admin échouée pour %s: %v", user.ID, delErr)
		}
		return err
	}
	return nil
}

func (scyllaAdminStore) UpdateAccount(_ context.Context, userID string, email, password, fullName string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	// UPDATE CQL est aussi un upsert : sur un id inconnu il matérialiserait
	// une ligne fantôme sans email ni index
	var oldEmail string
	if err := session.Query("SELECT email FROM users WHERE user_id = ?", userID).Scan(&oldEmail); err != nil {
		return adminops.ErrUserNotFound
	}

	if fullName != "" {
		if err := session.Query("UPDATE users SET full_name = ? WHERE user_id = ?", fullName, userID).Exec(); err != nil {
			return err
		}
	}
	if password != "" {
		if err := session.Query("UPDATE users SET password = ? WHERE user_id = ?", password, userID).Exec(); err != nil {
			return err
		}
	}
	if email != "" && email != oldEmail {
		if err := session.Query("UPDATE users SET email = ? WHERE user_id = ?", email, userID).Exec(); err != nil {
			return err
		}
		if err := session.Query("INSERT INTO users_by_email (email, user_id) VALUES (?, ?)", email, userID).Exec(); err != nil {
			return err
		}
		if err := session.Query("DELETE FROM users_by_email WHERE email = ?", oldEmail).Exec(); err != nil {
			log.Printf("⚠️ Ancien index email %s non purgé pour %s: %v", oldEmail, userID, err)
		}
	}
	return nil
}

func (scyllaAdminStore) DeleteAccount(_ context.Context, userID string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	var email string
	if err := session.Query("SELECT email FROM users WHERE user_id = ?", userID).Scan(&email); err == nil && email != "" {
		session.Query("DELETE FROM users_by_email WHERE email = ?", email).Exec()
	}
	return session.Query("DELETE FROM users WHERE user_id = ?", userID).Exec()
}

func (scyllaAdminStore) UpsertRole(_ context.Context, userID, role string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}
	return session.Query("INSERT INTO user_roles (user_id, role, created_at) VALUES (?, ?, ?)",
		userID, role, time.Now()).Exec()
}

func (scyllaAdminStore) DeleteRole(_ context.Context, userID, role string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}
	return session.Query("DELETE FROM user_roles WHERE user_id = ? AND role = ?", userID, role).Exec()
}

// POST /api/admin/manage
// Une seule route pour lister, créer, modifier et supprimer des admins,
// le champ "action" du body sélectionne l'opération
func ManageAdmins(c *gin.Context) {
	callerID := c.GetString("user_id")

	var req adminops.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	result, aerr := adminops.Manage(c.Request.Context(), scyllaAdminStore{}, utils.HashPassword, callerID, req)
	if aerr != nil {
		auditFailedAction(c, req, aerr.Message)
		c.JSON(aerr.Status, gin.H{"error": aerr.Message})
		return
	}

	auditAction(c, req)
	invalidateRoleCache(c, req)

	status := http.StatusOK
	if req.Action == "create" {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func auditAction(c *gin.Context, req adminops.Request) {
	switch req.Action {
	case "create":
		utils.LogAction(c, utils.ACTION_ADMIN_CREATE, utils.RESOURCE_USER, req.Email, nil, gin.H{"email": req.Email})
	case "update":
		utils.LogAction(c, utils.ACTION_ADMIN_UPDATE, utils.RESOURCE_USER, req.UserID, nil, nil)
	case "delete":
		utils.LogAction(c, utils.ACTION_ADMIN_DELETE, utils.RESOURCE_USER, req.UserID, nil, nil)
	}
}

func auditFailedAction(c *gin.Context, req adminops.Request, msg string) {
	switch req.Action {
	case "create":
		utils.LogFailedAction(c, utils.ACTION_ADMIN_CREATE, utils.RESOURCE_USER, req.Email, msg)
	case "update":
		utils.LogFailedAction(c, utils.ACTION_ADMIN_UPDATE, utils.RESOURCE_USER, req.UserID, msg)
	case "delete":
		utils.LogFailedAction(c, utils.ACTION_ADMIN_DELETE, utils.RESOURCE_USER, req.UserID, msg)
	}
}

func invalidateRoleCache(c *gin.Context, req adminops.Request) {
	if req.UserID != "" && (req.Action == "update" || req.Action == "delete") {
		cache.InvalidateRole(c.Request.Context(), req.UserID)
	}
}
