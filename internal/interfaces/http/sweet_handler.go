package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/dulceria-api/internal/application/catalog"
	"github.com/tu-usuario/dulceria-api/internal/application/dto"
	"github.com/tu-usuario/dulceria-api/internal/domain"
	"github.com/tu-usuario/dulceria-api/internal/domain/inventory"
)

// SweetHandler maneja las peticiones HTTP del catálogo de dulces.
type SweetHandler struct {
	uc *catalog.SweetUseCase
}

// NewSweetHandler construye el handler.
func NewSweetHandler(uc *catalog.SweetUseCase) *SweetHandler {
	return &SweetHandler{uc: uc}
}

// sweetError traduce la taxonomía de errores del dominio a un status HTTP
// estable por tipo de fallo.
func sweetError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dulce no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Create godoc
// @Summary      Crear dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSweetRequest  true  "Datos del dulce"
// @Success      201   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetIdentity(c), in)
	if err != nil {
		return sweetError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar dulces (público)
// @Tags         sweets
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.SweetListResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return sweetError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar dulces por nombre, categoría o rango de precio (público)
// @Tags         sweets
// @Produce      json
// @Param        name       query  string  false  "Substring del nombre"
// @Param        category   query  string  false  "Substring de la categoría"
// @Param        min_price  query  number  false  "Precio mínimo (inclusivo)"
// @Param        max_price  query  number  false  "Precio máximo (inclusivo)"
// @Success      200  {array}   dto.SweetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c *fiber.Ctx) error {
	filters := inventory.Filters{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}
	if raw := c.Query("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min_price inválido"})
		}
		filters.MinPrice = &min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max_price inválido"})
		}
		filters.MaxPrice = &max
	}
	out, err := h.uc.Search(c.Context(), filters)
	if err != nil {
		return sweetError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener dulce por ID (público)
// @Tags         sweets
// @Produce      json
// @Param        id   path  string  true  "ID del dulce"
// @Success      200  {object}  dto.SweetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [get]
func (h *SweetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return sweetError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar dulce (parcial)
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        body  body  dto.UpdateSweetRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return sweetError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dulce (solo admin)
// @Tags         sweets
// @Security     Bearer
// @Param        id  path  string  true  "ID del dulce"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetIdentity(c), c.Params("id")); err != nil {
		return sweetError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Purchase godoc
// @Summary      Comprar un dulce (decrementa stock)
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        body  body  dto.PurchaseRequest  true  "Cantidad a comprar"
// @Success      200   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c *fiber.Ctx) error {
	// Sin cuerpo se compra una unidad.
	var in dto.PurchaseRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	out, err := h.uc.Purchase(c.Context(), GetIdentity(c), c.Params("id"), in.Quantity)
	if err != nil {
		return sweetError(c, err)
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Reponer stock de un dulce (solo admin)
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        body  body  dto.RestockRequest  true  "Cantidad a reponer"
// @Success      200   {object}  dto.RestockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Restock(c.Context(), GetIdentity(c), c.Params("id"), in.Quantity)
	if err != nil {
		return sweetError(c, err)
	}
	return c.JSON(out)
}
