package repository

import (
	"context"

	"github.com/tu-usuario/dulceria-api/internal/domain/entity"
)

// SweetRepository define el puerto de persistencia para Sweet (DIP).
// Los métodos de lectura devuelven (nil, nil) si el registro no existe;
// decidir si eso es ErrNotFound es del caso de uso.
type SweetRepository interface {
	Create(ctx context.Context, sweet *entity.Sweet) error
	GetByID(ctx context.Context, id string) (*entity.Sweet, error)
	// GetForUpdate lee el registro bloqueando la fila (SELECT FOR UPDATE)
	// cuando el repositorio está atado a una transacción. Es la base del
	// ciclo read-decide-write serializado por id.
	GetForUpdate(ctx context.Context, id string) (*entity.Sweet, error)
	Update(ctx context.Context, sweet *entity.Sweet) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	List(ctx context.Context, limit, offset int) ([]*entity.Sweet, error)
	ListAll(ctx context.Context) ([]*entity.Sweet, error)
	Delete(ctx context.Context, id string) error
}
