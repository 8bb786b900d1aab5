package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/dulceria-api/internal/application/catalog"
	"github.com/tu-usuario/dulceria-api/internal/domain/repository"
)

var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Dentro de
// la tx, SweetRepo.GetForUpdate bloquea la fila del dulce (SELECT FOR UPDATE),
// con lo que los ciclos read-decide-write concurrentes sobre el mismo id se
// serializan; filas distintas no se bloquean entre sí.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un repo atado a la tx y hace
// Commit o Rollback. Un error de fn (o un timeout del ctx) revierte todo:
// la cantidad almacenada queda tal como estaba.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.SweetRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSweetRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
