package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront-be/internal/auth"
	"storefront-be/internal/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, input user.RegisterInput) (user.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (user.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (user.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.User), args.Error(1)
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRequestID(t *testing.T) {
	r := newRouter()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("Reuses the client's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-Id", "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))
	})
}

func TestIdentity(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", "storefront_jwt", 1)

	t.Run("Valid cookie resolves the principal", func(t *testing.T) {
		users := new(MockUserService)
		users.On("GetByUsername", mock.Anything, "alice").Return(user.User{
			ID: 1, Username: "alice", Email: "alice@example.com",
			Roles: []user.Role{user.RoleUser},
		}, nil)

		var seen *auth.Principal
		r := newRouter()
		r.Use(Identity(tokens, users))
		r.GET("/whoami", func(c *gin.Context) {
			seen = auth.PrincipalFrom(c.Request.Context())
			c.Status(http.StatusOK)
		})

		token, err := tokens.Generate("alice")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "storefront_jwt", Value: token})
		r.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, seen)
		assert.Equal(t, "alice", seen.Username)
		assert.Equal(t, []string{"USER"}, seen.Roles)
	})

	t.Run("Garbage token degrades to anonymous", func(t *testing.T) {
		users := new(MockUserService)

		var seen *auth.Principal
		r := newRouter()
		r.Use(Identity(tokens, users))
		r.GET("/whoami", func(c *gin.Context) {
			seen = auth.PrincipalFrom(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "storefront_jwt", Value: "not-a-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, seen)
		users.AssertNotCalled(t, "GetByUsername")
	})
}

func withPrincipal(p *auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

func TestRequireAuth(t *testing.T) {
	t.Run("Anonymous gets 401", func(t *testing.T) {
		r := newRouter()
		r.Use(RequireAuth())
		r.GET("/secure", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"status":false`)
	})

	t.Run("Authenticated passes", func(t *testing.T) {
		r := newRouter()
		r.Use(withPrincipal(&auth.Principal{UserID: 1, Username: "alice"}), RequireAuth())
		r.GET("/secure", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("Missing role gets 403", func(t *testing.T) {
		r := newRouter()
		r.Use(withPrincipal(&auth.Principal{UserID: 1, Roles: []string{"USER"}}), RequireRole("ADMIN"))
		r.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin passes", func(t *testing.T) {
		r := newRouter()
		r.Use(withPrincipal(&auth.Principal{UserID: 1, Roles: []string{"ADMIN"}}), RequireRole("ADMIN"))
		r.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimit_StrictTierThrottles(t *testing.T) {
	r := newRouter()
	r.Use(RateLimit())
	r.POST("/api/auth/signin", func(c *gin.Context) { c.Status(http.StatusOK) })

	var limited bool
	for i := 0; i < burstStrict+1; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", nil)
		req.RemoteAddr = "192.0.2.7:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited = true
		}
	}
	assert.True(t, limited)
}
