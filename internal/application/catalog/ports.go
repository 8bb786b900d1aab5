package catalog

import (
	"context"

	"github.com/tu-usuario/dulceria-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD, pasando un repositorio
// atado a esa tx. Junto con SweetRepository.GetForUpdate garantiza que dos
// ciclos read-decide-write concurrentes sobre el mismo Sweet id se linearizan
// (uno termina, incluida su verificación de invariantes, antes de que el otro
// evalúe la suya); ids distintos no se bloquean entre sí. Si fn devuelve
// error, la transacción se revierte y la cantidad almacenada queda intacta.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.SweetRepository) error) error
}
