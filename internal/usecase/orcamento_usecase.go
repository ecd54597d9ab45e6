package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrcamentoNotFound  = errors.New("orcamento not found")
	ErrInvalidOrcamentoID = errors.New("invalid orcamento id")
)

// IOrcamentoUseCase exposes budget (orçamento) operations.
//
// Salvar implements the wizard submit: it is a create-or-full-overwrite that
// re-derives every computed field, so a stored record can never drift from
// the invariant total == sum of service values.

type IOrcamentoUseCase interface {
	Salvar(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	GetByID(ctx context.Context, id string) (entities.Orcamento, error)
	List(ctx context.Context) ([]entities.Orcamento, error)
	Delete(ctx context.Context, id string) error
}

type OrcamentoUseCase struct {
	repo interfaces.IOrcamentoRepository
}

var _ IOrcamentoUseCase = (*OrcamentoUseCase)(nil)

func NewOrcamentoUseCase(repo interfaces.IOrcamentoRepository) *OrcamentoUseCase {
	return &OrcamentoUseCase{repo: repo}
}

// Salvar persists the budget. An empty ID creates a new record; a non-empty
// ID overwrites the stored one in full. In both cases the service map is
// completed to the fixed catalog, every line is tagged ativo, the confirmed
// total is recomputed from the lines and mirrored into the projected value,
// and updatedAt is stamped. createdAt is stamped only on create.
func (u *OrcamentoUseCase) Salvar(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	now := time.Now().UTC()

	servicos := make(map[entities.ServicoKey]entities.ServicoItem, len(entities.ServicoCatalog))
	for _, entry := range entities.ServicoCatalog {
		item := o.Servicos[entry.Key]
		item.Status = entities.OrcamentoStatusAtivo
		servicos[entry.Key] = item
	}
	o.Servicos = servicos

	total := o.SomaServicos()
	o.ValorTotalConfirmado = total
	o.ValorMedioPrevisto = total
	o.Status = entities.OrcamentoStatusAtivo
	o.UpdatedAt = now

	if strings.TrimSpace(o.ID) == "" {
		o.ID = uuid.NewString()
		o.CreatedAt = now
		return u.repo.Create(ctx, o)
	}

	existing, err := u.repo.GetByID(ctx, o.ID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if existing.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	o.CreatedAt = existing.CreatedAt

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if updated.ID == "" {
		// Deleted between the existence check and the write.
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	return updated, nil
}

func (u *OrcamentoUseCase) GetByID(ctx context.Context, id string) (entities.Orcamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Orcamento{}, ErrInvalidOrcamentoID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	return o, nil
}

func (u *OrcamentoUseCase) List(ctx context.Context) ([]entities.Orcamento, error) {
	return u.repo.List(ctx)
}

func (u *OrcamentoUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrcamentoID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrOrcamentoNotFound
	}
	return u.repo.Delete(ctx, id)
}
