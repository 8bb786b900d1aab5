package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/dulceria-api/internal/domain/entity"
	"github.com/tu-usuario/dulceria-api/internal/domain/repository"
)

var _ repository.SweetRepository = (*SweetRepo)(nil)

// SweetRepo implementación del puerto SweetRepository sobre PostgreSQL
// (usable con pool o tx).
type SweetRepo struct {
	q Querier
}

// NewSweetRepository construye el adaptador de persistencia para dulces.
// Pasar pool o tx (Querier).
func NewSweetRepository(q Querier) *SweetRepo {
	return &SweetRepo{q: q}
}

const sweetColumns = `id, name, category, price, quantity, description, created_at, updated_at`

func scanSweet(row pgx.Row) (*entity.Sweet, error) {
	var s entity.Sweet
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo dulce.
func (r *SweetRepo) Create(ctx context.Context, sweet *entity.Sweet) error {
	query := `
		INSERT INTO sweets (id, name, category, price, quantity, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity,
		sweet.Description, sweet.CreatedAt, sweet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sweet: %w", err)
	}
	return nil
}

// GetByID obtiene un dulce por ID. Devuelve (nil, nil) si no existe.
func (r *SweetRepo) GetByID(ctx context.Context, id string) (*entity.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets WHERE id = $1`
	s, err := scanSweet(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get sweet: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene el dulce bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene efecto de bloqueo dentro de una transacción.
func (r *SweetRepo) GetForUpdate(ctx context.Context, id string) (*entity.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets WHERE id = $1 FOR UPDATE`
	s, err := scanSweet(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get sweet for update: %w", err)
	}
	return s, nil
}

// Update persiste todos los campos mutables del dulce.
func (r *SweetRepo) Update(ctx context.Context, sweet *entity.Sweet) error {
	query := `
		UPDATE sweets SET name = $2, category = $3, price = $4, quantity = $5, description = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity,
		sweet.Description, sweet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sweet: %w", err)
	}
	return nil
}

// UpdateQuantity escribe solo la cantidad ya decidida por el motor de inventario.
func (r *SweetRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE sweets SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update sweet quantity: %w", err)
	}
	return nil
}

// List lista dulces con paginación.
func (r *SweetRepo) List(ctx context.Context, limit, offset int) ([]*entity.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sweets: %w", err)
	}
	defer rows.Close()
	return collectSweets(rows)
}

// ListAll devuelve el catálogo completo (para la búsqueda con filtros del motor).
func (r *SweetRepo) ListAll(ctx context.Context) ([]*entity.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all sweets: %w", err)
	}
	defer rows.Close()
	return collectSweets(rows)
}

// Delete elimina un dulce por ID.
func (r *SweetRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sweet: %w", err)
	}
	return nil
}

func collectSweets(rows pgx.Rows) ([]*entity.Sweet, error) {
	var list []*entity.Sweet
	for rows.Next() {
		var s entity.Sweet
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sweet: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
