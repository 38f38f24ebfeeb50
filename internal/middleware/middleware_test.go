package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAPIKey(), RequireUserID(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func TestRequireAPIKeyMissingHeader(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	router := setupProtectedRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Missing header is a validation error, not an auth failure.
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRequireAPIKeyMismatch(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	router := setupProtectedRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUserIDMissingHeader(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	router := setupProtectedRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-API-Key", "test-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRequireUserIDEmptyHeader(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	router := setupProtectedRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-API-Key", "test-key")
	req.Header.Set("X-User-ID", "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Present but empty is a client error, distinct from missing.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRouteAuthorized(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	router := setupProtectedRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-API-Key", "test-key")
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}
