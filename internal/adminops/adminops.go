// Package adminops regroupe la gestion des comptes administrateurs.
// La logique vit derrière une petite interface Store pour rester testable ;
// l'implémentation ScyllaDB est branchée dans les handlers.
package adminops

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"dukani_back_end/internal/models"
)

// Erreurs que les implémentations de Store doivent renvoyer pour que
// la couche HTTP réponde avec le bon statut
var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// Store : accès aux comptes et aux rôles nécessaires à la gestion admin
type Store interface {
	ListRoleAssignments(ctx context.Context, role string) ([]models.UserRole, error)
	ListAccounts(ctx context.Context) ([]models.User, error)
	CreateAccount(ctx context.Context, user models.User) error
	UpdateAccount(ctx context.Context, userID string, email, password, fullName string) error
	DeleteAccount(ctx context.Context, userID string) error
	UpsertRole(ctx context.Context, userID, role string) error
	DeleteRole(ctx context.Context, userID, role string) error
}

// HashFunc : hachage du mot de passe, injecté pour rester pur en test
type HashFunc func(password string) (string, error)

// Request : une opération de gestion des admins
type Request struct {
	Action   string `json:"action" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	UserID   string `json:"userId"`
}

// Error porte le statut HTTP à renvoyer avec le message
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func badRequest(msg string) *Error { return &Error{Status: http.StatusBadRequest, Message: msg} }

func internal(msg string, err error) *Error {
	log.Printf("❌ adminops: %s: %v", msg, err)
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}

// List renvoie les comptes porteurs du rôle admin, enrichis depuis la table users
func List(ctx context.Context, store Store) ([]models.AdminUser, *Error) {
	assignments, err := store.ListRoleAssignments(ctx, "admin")
	if err != nil {
		return nil, internal("Failed to list admin roles", err)
	}

	accounts, err := store.ListAccounts(ctx)
	if err != nil {
		return nil, internal("Failed to list accounts", err)
	}
	byID := make(map[string]models.User, len(accounts))
	for _, u := range accounts {
		byID[u.ID] = u
	}

	admins := make([]models.AdminUser, 0, len(assignments))
	for _, a := range assignments {
		u, ok := byID[a.UserID]
		if !ok {
			continue // rôle orphelin, le compte a disparu
		}
		admins = append(admins, models.AdminUser{
			ID:         u.ID,
			Email:      u.Email,
			FullName:   u.FullName,
			Role:       a.Role,
			CreatedAt:  u.CreatedAt,
			LastSignIn: u.LastSignIn,
		})
	}
	return admins, nil
}

// Create crée un compte puis lui attribue le rôle admin. Si l'attribution du
// rôle échoue, le compte est supprimé pour ne pas laisser un utilisateur
// orphelin sans rôle.
func Create(ctx context.Context, store Store, hash HashFunc, req Request) (*models.AdminUser, *Error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, badRequest("Email and password are required")
	}
	if len(req.Password) < 8 {
		return nil, badRequest("Password must be at least 8 characters")
	}

	hashed, err := hash(req.Password)
	if err != nil {
		return nil, internal("Failed to hash password", err)
	}

	now := time.Now()
	user := models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  hashed,
		FullName:  strings.TrimSpace(req.FullName),
		Provider:  "email",
		CreatedAt: now,
	}

	if err := store.CreateAccount(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, &Error{Status: http.StatusConflict, Message: "An account with this email already exists"}
		}
		return nil, internal("Failed to create account", err)
	}

	if err := store.UpsertRole(ctx, user.ID, "admin"); err != nil {
		// compensation : on retire le compte qui vient d'être créé
		if delErr := store.DeleteAccount(ctx, user.ID); delErr != nil {
			log.Printf("⚠️ adminops: compensation échouée, compte %s sans rôle: %v", user.ID, delErr)
		}
		return nil, internal("Failed to assign admin role", err)
	}

	log.Printf("✅ Admin créé: %s", email)
	return &models.AdminUser{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      "admin",
		CreatedAt: now,
	}, nil
}

// Update modifie email, mot de passe et/ou nom d'un admin existant
func Update(ctx context.Context, store Store, hash HashFunc, req Request) *Error {
	if req.UserID == "" {
		return badRequest("userId is required")
	}
	if req.Email == "" && req.Password == "" && req.FullName == "" {
		return badRequest("Nothing to update")
	}
	if req.Password != "" && len(req.Password) < 8 {
		return badRequest("Password must be at least 8 characters")
	}

	hashed := ""
	if req.Password != "" {
		var err error
		hashed, err = hash(req.Password)
		if err != nil {
			return internal("Failed to hash password", err)
		}
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err := store.UpdateAccount(ctx, req.UserID, email, hashed, strings.TrimSpace(req.FullName)); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return &Error{Status: http.StatusNotFound, Message: "User not found"}
		}
		return internal("Failed to update account", err)
	}
	return nil
}

// Delete supprime un admin. Un admin ne peut pas se supprimer lui-même ;
// le refus ne produit aucun effet de bord. Le rôle est retiré avant le
// compte, et restauré si la suppression du compte échoue.
func Delete(ctx context.Context, store Store, callerID string, req Request) *Error {
	if req.UserID == "" {
		return badRequest("userId is required")
	}
	if req.UserID == callerID {
		return badRequest("Cannot delete your own account")
	}

	if err := store.DeleteRole(ctx, req.UserID, "admin"); err != nil {
		return internal("Failed to remove admin role", err)
	}

	if err := store.DeleteAccount(ctx, req.UserID); err != nil {
		// compensation : on remet le rôle pour ne pas laisser l'état à moitié fait
		if roleErr := store.UpsertRole(ctx, req.UserID, "admin"); roleErr != nil {
			log.Printf("⚠️ adminops: restauration du rôle échouée pour %s: %v", req.UserID, roleErr)
		}
		return internal("Failed to delete account", err)
	}

	log.Printf("🚫 Admin supprimé: %s", req.UserID)
	return nil
}

// Manage route une requête vers l'opération demandée
func Manage(ctx context.Context, store Store, hash HashFunc, callerID string, req Request) (any, *Error) {
	switch req.Action {
	case "list":
		admins, aerr := List(ctx, store)
		if aerr != nil {
			return nil, aerr
		}
		return map[string]any{"users": admins}, nil
	case "create":
		admin, aerr := Create(ctx, store, hash, req)
		if aerr != nil {
			return nil, aerr
		}
		return map[string]any{"success": true, "userId": admin.ID}, nil
	case "update":
		if aerr := Update(ctx, store, hash, req); aerr != nil {
			return nil, aerr
		}
		return map[string]any{"success": true}, nil
	case "delete":
		if aerr := Delete(ctx, store, callerID, req); aerr != nil {
			return nil, aerr
		}
		return map[string]any{"success": true}, nil
	default:
		return nil, badRequest(fmt.Sprintf("Unknown action: %s", req.Action))
	}
}
