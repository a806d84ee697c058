package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEntrySnapshotsRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/admin/products", nil)
	c.Request.Header.Set("User-Agent", "test-agent")
	c.Set("user_id", "u1")
	c.Set("email", "admin@b.com")

	entry := buildEntry(c, ACTION_PRODUCT_CREATE, RESOURCE_PRODUCT, "p1",
		gin.H{"old": 1}, gin.H{"new": 2}, true, "")

	assert.Equal(t, "u1", entry.UserID)
	assert.Equal(t, "admin@b.com", entry.UserEmail)
	assert.Equal(t, "test-agent", entry.UserAgent)
	assert.JSONEq(t, `{"old":1}`, entry.OldValue)
	assert.JSONEq(t, `{"new":2}`, entry.NewValue)
	assert.True(t, entry.Success)
	require.NotZero(t, entry.ID)

	// l'écriture asynchrone ne relit plus le contexte : le recyclage du
	// contexte après la copie ne doit rien changer à l'entrée
	c.Set("user_id", "someone-else")
	assert.Equal(t, "u1", entry.UserID)
}

func TestBuildEntryFailedAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/auth/login", nil)

	entry := buildEntry(c, ACTION_LOGIN_FAILED, RESOURCE_AUTH, "ghost@b.com",
		nil, nil, false, "bad password")

	assert.False(t, entry.Success)
	assert.Equal(t, "bad password", entry.ErrorMsg)
	assert.Empty(t, entry.OldValue)
	assert.Empty(t, entry.UserID, "pas d'utilisateur dans le contexte avant login")
}
