package adminops

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukani_back_end/internal/models"
)

type fakeStore struct {
	accounts map[string]models.User
	roles    map[string]string // userID -> role

	failCreateAccount bool
	failUpsertRole    bool
	failDeleteAccount bool
	failDeleteRole    bool

	calls []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{accounts: map[string]models.User{}, roles: map[string]string{}}
}

func (f *fakeStore) ListRoleAssignments(_ context.Context, role string) ([]models.UserRole, error) {
	f.calls = append(f.calls, "ListRoleAssignments")
	var out []models.UserRole
	for id, r := range f.roles {
		if r == role {
			out = append(out, models.UserRole{UserID: id, Role: r})
		}
	}
	return out, nil
}

func (f *fakeStore) ListAccounts(_ context.Context) ([]models.User, error) {
	f.calls = append(f.calls, "ListAccounts")
	var out []models.User
	for _, u := range f.accounts {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeStore) CreateAccount(_ context.Context, user models.User) error {
	f.calls = append(f.calls, "CreateAccount")
	if f.failCreateAccount {
		return errors.New("scylla down")
	}
	for _, u := range f.accounts {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	f.accounts[user.ID] = user
	return nil
}

func (f *fakeStore) UpdateAccount(_ context.Context, userID, email, password, fullName string) error {
	f.calls = append(f.calls, "UpdateAccount")
	u, ok := f.accounts[userID]
	if !ok {
		return ErrUserNotFound
	}
	if email != "" {
		u.Email = email
	}
	if password != "" {
		u.Password = password
	}
	if fullName != "" {
		u.FullName = fullName
	}
	f.accounts[userID] = u
	return nil
}

func (f *fakeStore) DeleteAccount(_ context.Context, userID string) error {
	f.calls = append(f.calls, "DeleteAccount")
	if f.failDeleteAccount {
		return errors.New("scylla down")
	}
	delete(f.accounts, userID)
	return nil
}

func (f *fakeStore) UpsertRole(_ context.Context, userID, role string) error {
	f.calls = append(f.calls, "UpsertRole")
	if f.failUpsertRole {
		return errors.New("scylla down")
	}
	f.roles[userID] = role
	return nil
}

func (f *fakeStore) DeleteRole(_ context.Context, userID, _ string) error {
	f.calls = append(f.calls, "DeleteRole")
	if f.failDeleteRole {
		return errors.New("scylla down")
	}
	delete(f.roles, userID)
	return nil
}

func plainHash(p string) (string, error) { return "hashed:" + p, nil }

func TestCreateAssignsRole(t *testing.T) {
	store := newFakeStore()
	admin, aerr := Create(context.Background(), store, plainHash, Request{
		Action: "create", Email: "Admin@Example.COM", Password: "supersecret", FullName: "New Admin",
	})

	require.Nil(t, aerr)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.Equal(t, "admin", store.roles[admin.ID])
	assert.Equal(t, "hashed:supersecret", store.accounts[admin.ID].Password)
}

func TestCreateRejectsShortPassword(t *testing.T) {
	store := newFakeStore()
	_, aerr := Create(context.Background(), store, plainHash, Request{Email: "a@b.com", Password: "short"})
	require.NotNil(t, aerr)
	assert.Equal(t, http.StatusBadRequest, aerr.Status)
	assert.Empty(t, store.accounts)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	store.accounts["u1"] = models.User{ID: "u1", Email: "taken@b.com"}

	_, aerr := Create(context.Background(), store, plainHash, Request{
		Email: "Taken@B.com", Password: "supersecret",
	})

	require.NotNil(t, aerr)
	assert.Equal(t, http.StatusConflict, aerr.Status)
	assert.Len(t, store.accounts, 1, "le compte existant doit rester seul détenteur de l'email")
	assert.Empty(t, store.roles, "aucun rôle ne doit être attribué après le refus")
}

func TestCreateCompensatesWhenRoleFails(t *testing.T) {
	store := newFakeStore()
	store.failUpsertRole = true

	_, aerr := Create(context.Background(), store, plainHash, Request{Email: "a@b.com", Password: "supersecret"})

	require.NotNil(t, aerr)
	assert.Equal(t, http.StatusInternalServerError, aerr.Status)
	assert.Empty(t, store.accounts, "le compte doit être supprimé quand le rôle échoue")
	assert.Empty(t, store.roles)
}

func TestDeleteSelfGuardHasNoSideEffects(t *testing.T) {
	store := newFakeStore()
	store.accounts["me"] = models.User{ID: "me", Email: "me@b.com"}
	store.roles["me"] = "admin"

	aerr := Delete(context.Background(), store, "me", Request{UserID: "me"})

	require.NotNil(t, aerr)
	assert.Equal(t, http.StatusBadRequest, aerr.Status)
	assert.Contains(t, store.accounts, "me")
	assert.Equal(t, "admin", store.roles["me"])
	assert.Empty(t, store.calls, "le refus ne doit toucher ni la table users ni user_roles")
}

func TestDeleteRemovesRoleThenAccount(t *testing.T) {
	store := newFakeStore()
	store.accounts["other"] = models.User{ID: "other"}
	store.roles["other"] = "admin"

	aerr := Delete(context.Background(), store, "me", Request{UserID: "other"})

	require.Nil(t, aerr)
	assert.NotContains(t, store.accounts, "other")
	assert.NotContains(t, store.roles, "other")
	assert.Equal(t, []string{"DeleteRole", "DeleteAccount"}, store.calls)
}

func TestDeleteRestoresRoleWhenAccountFails(t *testing.T) {
	store := newFakeStore()
	store.accounts["other"] = models.User{ID: "other"}
	store.roles["other"] = "admin"
	store.failDeleteAccount = true

	aerr := Delete(context.Background(), store, "me", Request{UserID: "other"})

	require.NotNil(t, aerr)
	assert.Equal(t, "admin", store.roles["other"], "le rôle doit être restauré après l'échec")
	assert.Contains(t, store.accounts, "other")
}

func TestUpdateRequiresSomething(t *testing.T) {
	store := newFakeStore()
	aerr := Update(context.Background(), store, plainHash, Request{UserID: "u1"})
	require.NotNil(t, aerr)
	assert.Equal(t, http.StatusBadRequest, aerr.Status)
}

func TestUpdateUnknownUserIsNotFound(t *testing.T) {
	store := newFakeStore()

	aerr := Update(context.Background(), store, plainHash, Request{UserID: "ghost", FullName: "X"})

	require.NotNil(t, aerr)
	assert.Equal(t, http.StatusNotFound, aerr.Status)
	assert.Empty(t, store.accounts, "un id inconnu ne doit pas matérialiser de compte")
}

func TestUpdateChangesFields(t *testing.T) {
	store := newFakeStore()
	store.accounts["u1"] = models.User{ID: "u1", Email: "old@b.com", Password: "old"}

	aerr := Update(context.Background(), store, plainHash, Request{UserID: "u1", Email: "NEW@b.com", Password: "newpassword"})

	require.Nil(t, aerr)
	assert.Equal(t, "new@b.com", store.accounts["u1"].Email)
	assert.Equal(t, "hashed:newpassword", store.accounts["u1"].Password)
}

func TestListJoinsRolesAndAccounts(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	store.accounts["u1"] = models.User{ID: "u1", Email: "a@b.com", FullName: "A", CreatedAt: now}
	store.roles["u1"] = "admin"
	store.roles["ghost"] = "admin" // rôle orphelin, pas de compte

	admins, aerr := List(context.Background(), store)
	require.Nil(t, aerr)
	require.Len(t, admins, 1)
	assert.Equal(t, "a@b.com", admins[0].Email)
	assert.Equal(t, "admin", admins[0].Role)
}

func TestManageUnknownAction(t *testing.T) {
	store := newFakeStore()
	_, aerr := Manage(context.Background(), store, plainHash, "me", Request{Action: "explode"})
	require.NotNil(t, aerr)
	assert.Equal(t, http.StatusBadRequest, aerr.Status)
}
