package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"user-rest-service/internal/adapter/gin/handler"
	"user-rest-service/internal/adapter/gin/middleware"
	"user-rest-service/internal/adapter/repository/memory"
	"user-rest-service/internal/usecase/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testAPIKey = "your-secret-api-key-12345"

// setupServer wires the real store, usecase, and handler behind the router,
// with the rate limiter disabled.
func setupServer(t *testing.T) *gin.Engine {
	log := zaptest.NewLogger(t)
	repo := memory.NewUserRepository(log)
	uc := user.New(repo, log)
	h := handler.NewUserHandler(uc, log)
	rl := middleware.NewRateLimiter(nil, middleware.RateLimiterConfig{}, log)
	return SetupRouter(h, rl, testAPIKey, log)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func createUser(t *testing.T, r *gin.Engine, name string, age int, email string) handler.UserResponse {
	t.Helper()

	w := doJSON(t, r, "POST", "/users", gin.H{"name": name, "age": age, "email": email})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var u handler.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	return u
}

func TestUserLifecycle(t *testing.T) {
	r := setupServer(t)

	created := createUser(t, r, "John Doe", 30, "John.Doe@Example.com")
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "john.doe@example.com", created.Email)

	w := doJSON(t, r, "GET", "/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "PUT", "/users/1", gin.H{"name": "John Renamed", "age": 31, "email": "john.doe@example.com"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated handler.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "John Renamed", updated.Name)

	w = doJSON(t, r, "DELETE", "/users/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, "GET", "/users/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDuplicateEmailRejectedAcrossCase(t *testing.T) {
	r := setupServer(t)
	createUser(t, r, "John Doe", 30, "john.doe@example.com")

	w := doJSON(t, r, "POST", "/users", gin.H{"name": "Jane Doe", "age": 25, "email": "JOHN.DOE@EXAMPLE.COM"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "email already exists")
}

func TestPaginationOverSeededUsers(t *testing.T) {
	r := setupServer(t)
	for i := 1; i <= 3; i++ {
		createUser(t, r, fmt.Sprintf("User %d", i), 20+i, fmt.Sprintf("user%d@example.com", i))
	}

	w := doJSON(t, r, "GET", "/users?page=2&pageSize=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.ListUsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 1)
	assert.Equal(t, int64(3), resp.Users[0].ID)
	assert.Equal(t, int64(3), resp.Pagination.TotalUsers)
	assert.Equal(t, int64(2), resp.Pagination.TotalPages)

	w = doJSON(t, r, "GET", "/users?page=99&pageSize=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Users)
	assert.Equal(t, int64(3), resp.Pagination.TotalUsers)

	// A page beyond any representable window is still just out of range
	w = doJSON(t, r, "GET", fmt.Sprintf("/users?page=%d&pageSize=12", int64(1)<<61+1), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Users)
}

func TestProtectedRoute(t *testing.T) {
	r := setupServer(t)

	t.Run("With Valid Key", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/protected", nil)
		req.Header.Set(middleware.APIKeyHeader, testAPIKey)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "timestamp")
	})

	t.Run("Without Key", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/users/protected", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("With Wrong Key", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/protected", nil)
		req.Header.Set(middleware.APIKeyHeader, "nope")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHealthRoute(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestDiagnosticRoutes(t *testing.T) {
	r := setupServer(t)

	// A panicking handler must surface as a generic 500 with no detail
	w := doJSON(t, r, "GET", "/test/exception", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An internal error occurred")
	assert.NotContains(t, w.Body.String(), "deliberate")

	w = doJSON(t, r, "GET", "/test/notfound", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "GET", "/test/badrequest", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
