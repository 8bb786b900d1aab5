package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dulceria-api/internal/application/auth"
	"github.com/tu-usuario/dulceria-api/internal/application/catalog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	SweetUC   *catalog.SweetUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	sweets := api.Group("/sweets")
	sweetHandler := NewSweetHandler(deps.SweetUC)
	authRequired := AuthMiddleware(deps.JWTSecret, deps.AuthUC)

	// Lectura pública: listado, búsqueda y detalle. "search" va antes de ":id"
	// para que Fiber no lo capture como parámetro.
	sweets.Get("/", sweetHandler.List)
	sweets.Get("/search", sweetHandler.Search)
	sweets.Get("/:id", sweetHandler.GetByID)

	// Mutaciones: requieren Bearer Token. Los gates de inactivo/admin los
	// aplica el motor de inventario; RequireAdmin solo corta antes las rutas
	// exclusivas de admin.
	sweets.Post("/", authRequired, sweetHandler.Create)
	sweets.Put("/:id", authRequired, sweetHandler.Update)
	sweets.Delete("/:id", authRequired, RequireAdmin(), sweetHandler.Delete)
	sweets.Post("/:id/purchase", authRequired, sweetHandler.Purchase)
	sweets.Post("/:id/restock", authRequired, RequireAdmin(), sweetHandler.Restock)
}
