package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/dulceria-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/dulceria-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/dulceria-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "dulceria-api-test"
	testExpMin    = 60
)

// stubResolver resuelve identidades desde un mapa en memoria.
type stubResolver struct {
	identities map[string]entity.Identity
}

func (r *stubResolver) Resolve(_ context.Context, userID string) (*entity.Identity, error) {
	if ident, ok := r.identities[userID]; ok {
		return &ident, nil
	}
	return nil, nil
}

func newStubResolver() *stubResolver {
	return &stubResolver{identities: map[string]entity.Identity{
		"user-1":  {ID: "user-1", IsActive: true, IsAdmin: false},
		"admin-1": {ID: "admin-1", IsActive: true, IsAdmin: true},
	}}
}

// buildGuardedApp construye una app Fiber mínima con AuthMiddleware +
// RequireAdmin y un handler dummy que devuelve 200 si pasa los middlewares.
func buildGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin-only",
		apphttp.AuthMiddleware(testJWTSecret, newStubResolver()),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

// tokenFor genera un JWT Bearer para el usuario indicado.
func tokenFor(t *testing.T, userID, username string, isAdmin bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, username, isAdmin, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doGuarded lanza una petición GET /admin-only y devuelve la respuesta.
func doGuarded(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildGuardedApp()
	resp := doGuarded(t, app, tokenFor(t, "admin-1", "admin", true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")
}

func TestRequireAdmin_NoAdminBloqueado(t *testing.T) {
	app := buildGuardedApp()
	resp := doGuarded(t, app, tokenFor(t, "user-1", "user", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un usuario sin rol admin no debe pasar")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

func TestRequireAdmin_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildGuardedApp()
	resp := doGuarded(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin_TokenInvalido_Retorna401(t *testing.T) {
	app := buildGuardedApp()
	resp := doGuarded(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El flag is_admin del token no manda: la identidad se resuelve en fresco
// contra el store, así que un token inflado no escala privilegios.
func TestRequireAdmin_FlagDelTokenNoEscala(t *testing.T) {
	app := buildGuardedApp()
	resp := doGuarded(t, app, tokenFor(t, "user-1", "user", true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"la autorización sale de la identidad resuelta, no de los claims")
}

func TestAuthMiddleware_UsuarioDesconocido_Retorna401(t *testing.T) {
	app := buildGuardedApp()
	resp := doGuarded(t, app, tokenFor(t, "ghost-1", "ghost", true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNKNOWN_USER")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de identidad
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ResuelveIdentidad(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, newStubResolver()), func(c *fiber.Ctx) error {
		ident := apphttp.GetIdentity(c)
		return c.JSON(fiber.Map{
			"user_id":   ident.ID,
			"is_admin":  ident.IsAdmin,
			"is_active": ident.IsActive,
			"username":  apphttp.GetUsername(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "admin-1", "admin", true))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin-1", body["user_id"])
	assert.Equal(t, true, body["is_admin"])
	assert.Equal(t, true, body["is_active"])
	assert.Equal(t, "admin", body["username"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-1", "testuser", false, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, isAdmin, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "testuser", username)
	assert.False(t, isAdmin)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, "user-1", "testuser", false, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-1", "testuser", false, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
