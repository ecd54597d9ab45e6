package interfaces

import (
	"context"

	"casar_em_carneiros/internal/domain/entities"
)

// IOrcamentoRepository abstracts DynamoDB persistence for Orcamento.
//
// The wizard needs:
//   - create on first submit
//   - full overwrite on edit submit (no partial patch semantics)
//   - read-all for the list view, read-by-id for edit/PDF
//   - delete by id for the list view

type IOrcamentoRepository interface {
	Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	Update(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	GetByID(ctx context.Context, id string) (entities.Orcamento, error)
	List(ctx context.Context) ([]entities.Orcamento, error)
	Delete(ctx context.Context, id string) error
}
