package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/pkg/credentials"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(creds *credentials.Service) *fiber.App {
	app := fiber.New()
	app.Get("/protected", JwtMiddleware(creds), func(ctx *fiber.Ctx) error {
		identity := IdentityFromCtx(ctx)
		return ctx.JSON(SuccessResponse("ok", identity.Email))
	})
	app.Post("/admin", JwtMiddleware(creds), RequireRoles(entity.UserRoleAdmin), func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse[any]("ok", nil))
	})
	return app
}

func issueFor(t *testing.T, creds *credentials.Service, role string) string {
	t.Helper()
	token, err := creds.IssueToken(credentials.Identity{
		UserId:     uuid.New(),
		Email:      "user@acme.test",
		Role:       role,
		TenantId:   uuid.New(),
		TenantSlug: "acme",
	})
	require.NoError(t, err)
	return token
}

func TestJwtMiddleware(t *testing.T) {
	creds := credentials.NewService("test-secret", 4, time.Hour)
	app := newProtectedApp(creds)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bare token without prefix", issueFor(t, creds, "MEMBER"), http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + issueFor(t, creds, "MEMBER"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			res, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
		})
	}

	t.Run("token signed by another secret", func(t *testing.T) {
		other := credentials.NewService("other-secret", 4, time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueFor(t, other, "MEMBER"))
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})
}

func TestRequireRoles(t *testing.T) {
	creds := credentials.NewService("test-secret", 4, time.Hour)
	app := newProtectedApp(creds)

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueFor(t, creds, "ADMIN"))
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("member is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueFor(t, creds, "MEMBER"))
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("unauthenticated stays 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})
}
