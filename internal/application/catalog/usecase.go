package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/dulceria-api/internal/application/dto"
	"github.com/tu-usuario/dulceria-api/internal/domain"
	"github.com/tu-usuario/dulceria-api/internal/domain/entity"
	"github.com/tu-usuario/dulceria-api/internal/domain/inventory"
	"github.com/tu-usuario/dulceria-api/internal/domain/repository"
)

// SweetUseCase expone el catálogo componiendo el motor de inventario con el
// record store. Toda decisión de cantidad y autorización se delega al motor;
// aquí solo se hace la lectura del snapshot y la escritura del resultado.
type SweetUseCase struct {
	repo     repository.SweetRepository
	txRunner TxRunner
}

// NewSweetUseCase construye el caso de uso del catálogo.
func NewSweetUseCase(repo repository.SweetRepository, txRunner TxRunner) *SweetUseCase {
	return &SweetUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un dulce. El id y los timestamps se asignan aquí (lado store).
func (uc *SweetUseCase) Create(ctx context.Context, ident entity.Identity, in dto.CreateSweetRequest) (*dto.SweetResponse, error) {
	sweet, err := inventory.Create(inventory.CreateSpec{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
	}, ident)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sweet.ID = uuid.New().String()
	sweet.CreatedAt = now
	sweet.UpdatedAt = now
	if err := uc.repo.Create(ctx, sweet); err != nil {
		return nil, err
	}
	return toSweetResponse(sweet), nil
}

// GetByID obtiene un dulce por ID.
func (uc *SweetUseCase) GetByID(ctx context.Context, id string) (*dto.SweetResponse, error) {
	sweet, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, domain.ErrNotFound
	}
	return toSweetResponse(sweet), nil
}

// List lista el catálogo con paginación (público).
func (uc *SweetUseCase) List(ctx context.Context, limit, offset int) (*dto.SweetListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SweetResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSweetResponse(s))
	}
	return &dto.SweetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search filtra el catálogo con los predicados puros del motor (público).
func (uc *SweetUseCase) Search(ctx context.Context, f inventory.Filters) ([]dto.SweetResponse, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	matched, err := inventory.Filter(all, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SweetResponse, 0, len(matched))
	for _, s := range matched {
		items = append(items, *toSweetResponse(s))
	}
	return items, nil
}

// Update aplica una actualización parcial dentro de una transacción con la
// fila bloqueada.
func (uc *SweetUseCase) Update(ctx context.Context, ident entity.Identity, id string, in dto.UpdateSweetRequest) (*dto.SweetResponse, error) {
	var out *dto.SweetResponse
	err := uc.txRunner.Run(ctx, func(repo repository.SweetRepository) error {
		current, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		next, err := inventory.Apply(current, inventory.Patch{
			Name:        in.Name,
			Category:    in.Category,
			Price:       in.Price,
			Quantity:    in.Quantity,
			Description: in.Description,
		}, ident)
		if err != nil {
			return err
		}
		next.UpdatedAt = time.Now()
		if err := repo.Update(ctx, next); err != nil {
			return err
		}
		out = toSweetResponse(next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Purchase decrementa stock dentro de una transacción con la fila bloqueada:
// dos compras concurrentes sobre el mismo dulce nunca deciden contra una
// cantidad obsoleta.
func (uc *SweetUseCase) Purchase(ctx context.Context, ident entity.Identity, id string, quantity int) (*dto.PurchaseResponse, error) {
	var out *dto.PurchaseResponse
	err := uc.txRunner.Run(ctx, func(repo repository.SweetRepository) error {
		current, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		next, res, err := inventory.Purchase(current, quantity, ident)
		if err != nil {
			return err
		}
		if err := repo.UpdateQuantity(ctx, id, next.Quantity); err != nil {
			return err
		}
		out = &dto.PurchaseResponse{
			Message:           "compra realizada",
			SweetID:           current.ID,
			SweetName:         current.Name,
			QuantityPurchased: res.Quantity,
			RemainingStock:    res.NewQuantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Restock incrementa stock (solo admin), misma disciplina transaccional que Purchase.
func (uc *SweetUseCase) Restock(ctx context.Context, ident entity.Identity, id string, quantity int) (*dto.RestockResponse, error) {
	var out *dto.RestockResponse
	err := uc.txRunner.Run(ctx, func(repo repository.SweetRepository) error {
		current, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		next, res, err := inventory.Restock(current, quantity, ident)
		if err != nil {
			return err
		}
		if err := repo.UpdateQuantity(ctx, id, next.Quantity); err != nil {
			return err
		}
		out = &dto.RestockResponse{
			Message:       "reposición realizada",
			SweetID:       current.ID,
			SweetName:     current.Name,
			QuantityAdded: res.Quantity,
			NewStock:      res.NewQuantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un dulce (solo admin).
func (uc *SweetUseCase) Delete(ctx context.Context, ident entity.Identity, id string) error {
	return uc.txRunner.Run(ctx, func(repo repository.SweetRepository) error {
		current, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := inventory.Delete(current, ident); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

func toSweetResponse(s *entity.Sweet) *dto.SweetResponse {
	if s == nil {
		return nil
	}
	return &dto.SweetResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		StockState:  s.StockState(),
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
