package middleware

import (
	"net/http/httptest"
	"testing"

	"rabbitry/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(7, "alice", domain.RoleManager, "farm-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, domain.RoleManager, claims.Role)
	assert.Equal(t, "farm-1", claims.FarmID)
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	_, err := VerifyJWT("not-a-token")
	require.Error(t, err)
}

func TestVerifyJWTRejectsTampered(t *testing.T) {
	token, err := GenerateJWT(7, "alice", domain.RoleManager, "farm-1")
	require.NoError(t, err)

	_, err = VerifyJWT(token + "x")
	require.Error(t, err)
}

func protectedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"role":    c.Locals("role"),
			"farm_id": c.Locals("farm_id"),
		})
	})
	app.Get("/protected", chain...)
	return app
}

func TestAuthRequired(t *testing.T) {
	app := protectedApp(AuthRequired())

	// No token.
	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Bad token.
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Valid token.
	token, err := GenerateJWT(1, "alice", domain.RoleOwner, "farm-1")
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleRequired(t *testing.T) {
	app := protectedApp(AuthRequired(), RoleRequired(domain.RoleOwner, domain.RoleManager))

	workerToken, err := GenerateJWT(2, "bob", domain.RoleWorker, "farm-1")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+workerToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	managerToken, err := GenerateJWT(3, "carol", domain.RoleManager, "farm-1")
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+managerToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
