package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dulceria-api/internal/application/dto"
	"github.com/tu-usuario/dulceria-api/internal/domain/entity"
	"github.com/tu-usuario/dulceria-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalIdentity = "identity"
	LocalUsername = "username"
)

// identityResolver es el contrato mínimo que necesita el middleware para
// resolver el caller en fresco. Lo implementa *auth.AuthUseCase; usar una
// interfaz local evita el import circular (mismo patrón que los guards del
// resto de middlewares).
type identityResolver interface {
	Resolve(ctx context.Context, userID string) (*entity.Identity, error)
}

// AuthMiddleware valida el Bearer Token JWT, resuelve la identidad contra el
// store y la deja en c.Locals. No rechaza identidades inactivas: esa decisión
// es del motor de inventario, que la recibe como argumento explícito.
func AuthMiddleware(jwtSecret string, resolver identityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, username, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		ident, err := resolver.Resolve(c.Context(), userID)
		if err != nil || ident == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNKNOWN_USER", Message: "usuario no reconocido"})
		}
		c.Locals(LocalIdentity, *ident)
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// RequireAdmin corta rutas administrativas antes de llegar al caso de uso.
// Debe usarse DESPUÉS de AuthMiddleware. El motor re-verifica de todos modos.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, ok := c.Locals(LocalIdentity).(entity.Identity)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "identidad no resuelta"})
		}
		if !ident.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere rol admin"})
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) entity.Identity {
	ident, _ := c.Locals(LocalIdentity).(entity.Identity)
	return ident
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}
