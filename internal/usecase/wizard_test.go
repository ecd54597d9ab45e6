package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"casar_em_carneiros/internal/domain/entities"
	mock_interfaces "casar_em_carneiros/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func wizardClientes() []entities.User {
	return []entities.User{
		{ID: "u-1", FullName: "Maria Souza", Email: "maria@example.com", PhoneNumber: "87999991234"},
		{ID: "u-2", FullName: "João Silva", Email: "joao@example.com", PhoneNumber: "87999995678"},
	}
}

func TestWizard_StepNavigation(t *testing.T) {
	w := NewWizard(nil)

	if w.Step() != 1 {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
	if err := w.Prev(); !errors.Is(err, ErrWizardFirstStep) {
		t.Fatalf("expected ErrWizardFirstStep, got %v", err)
	}

	if err := w.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Step() != 3 {
		t.Fatalf("expected step 3, got %d", w.Step())
	}
	if err := w.Next(); !errors.Is(err, ErrWizardLastStep) {
		t.Fatalf("expected ErrWizardLastStep, got %v", err)
	}

	if err := w.Prev(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Step() != 2 {
		t.Fatalf("expected step 2, got %d", w.Step())
	}
}

func TestWizard_SelectClient(t *testing.T) {
	t.Run("copies name to groom field by default", func(t *testing.T) {
		w := NewWizard(wizardClientes())
		w.SelectClient("u-2")

		form := w.Form()
		if form.ClienteSelecionado != "u-2" || form.NomeNoivo != "João Silva" || form.NomeNoiva != "" {
			t.Fatalf("unexpected form: %+v", form)
		}
	})

	t.Run("copies name to bride field when papel is noiva", func(t *testing.T) {
		w := NewWizard(wizardClientes())
		w.SetPapelCliente(entities.PapelNoiva)
		w.SelectClient("u-1")

		form := w.Form()
		if form.NomeNoiva != "Maria Souza" || form.NomeNoivo != "" {
			t.Fatalf("unexpected form: %+v", form)
		}
	})

	t.Run("switching papel re-applies the copy", func(t *testing.T) {
		w := NewWizard(wizardClientes())
		w.SelectClient("u-1")
		w.SetPapelCliente(entities.PapelNoiva)

		form := w.Form()
		if form.NomeNoiva != "Maria Souza" {
			t.Fatalf("expected bride name after papel switch, got %+v", form)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		w := NewWizard(wizardClientes())
		w.SelectClient("u-1")
		first := w.Form()
		w.SelectClient("u-1")
		second := w.Form()

		if first.ClienteSelecionado != second.ClienteSelecionado || first.NomeNoivo != second.NomeNoivo {
			t.Fatalf("expected identical state, got %+v then %+v", first, second)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		w := NewWizard(wizardClientes())
		w.SelectClient("missing")

		form := w.Form()
		if form.ClienteSelecionado != "" || form.NomeNoivo != "" {
			t.Fatalf("expected untouched form, got %+v", form)
		}
	})
}

func TestWizard_SetServico(t *testing.T) {
	w := NewWizard(nil)

	if err := w.SetServico("jardinagem", "valor", 10.0); !errors.Is(err, ErrUnknownServico) {
		t.Fatalf("expected ErrUnknownServico, got %v", err)
	}
	if err := w.SetServico(entities.ServicoBuffet, "valor", "10"); !errors.Is(err, ErrInvalidServicoField) {
		t.Fatalf("expected ErrInvalidServicoField for wrong type, got %v", err)
	}
	if err := w.SetServico(entities.ServicoBuffet, "parcelas", 3.0); !errors.Is(err, ErrInvalidServicoField) {
		t.Fatalf("expected ErrInvalidServicoField for unknown field, got %v", err)
	}

	if err := w.SetServico(entities.ServicoBuffet, "descricao", "Buffet Sabor & Arte"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.SetServico(entities.ServicoBuffet, "valor", 8000.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := w.Form().Servicos[entities.ServicoBuffet]
	if item.Descricao != "Buffet Sabor & Arte" || item.Valor != 8000 {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestWizard_ComputeTotal(t *testing.T) {
	w := NewWizard(nil)

	if got := w.ComputeTotal(); got != 0 {
		t.Fatalf("expected zero total for blank wizard, got %v", got)
	}

	_ = w.SetServico(entities.ServicoIgreja, "valor", 2000.0)
	_ = w.SetServico(entities.ServicoBuffet, "valor", 8000.0)
	_ = w.SetServico(entities.ServicoDecoracao, "valor", 5000.0)

	if got := w.ComputeTotal(); got != 15000 {
		t.Fatalf("expected 15000, got %v", got)
	}

	// A NaN line counts as zero rather than poisoning the sum.
	_ = w.SetServico(entities.ServicoOutros, "valor", math.NaN())
	if got := w.ComputeTotal(); got != 15000 {
		t.Fatalf("expected 15000 with NaN line, got %v", got)
	}
}

func TestWizard_Cancel(t *testing.T) {
	w := NewWizard(wizardClientes())
	_ = w.Next()
	w.SelectClient("u-1")
	_ = w.SetServico(entities.ServicoIgreja, "valor", 2000.0)

	w.Cancel()

	if w.Step() != 1 || w.EditMode() {
		t.Fatalf("expected blank wizard, got step=%d edit=%t", w.Step(), w.EditMode())
	}
	form := w.Form()
	if form.ClienteSelecionado != "" || form.NomeNoivo != "" || form.Servicos[entities.ServicoIgreja].Valor != 0 {
		t.Fatalf("expected reset form, got %+v", form)
	}
}

func TestWizard_Submit(t *testing.T) {
	t.Run("rejected before final step", func(t *testing.T) {
		w := NewWizard(nil)
		_, err := w.Submit(context.Background(), nil)
		if !errors.Is(err, ErrWizardNotFinalStep) {
			t.Fatalf("expected ErrWizardNotFinalStep, got %v", err)
		}
	})

	t.Run("create success resets the wizard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		w := NewWizard(wizardClientes())
		w.SelectClient("u-1")
		w.SetDataCasamento(time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC))
		w.SetNumeroConvidados(120)
		_ = w.Next()
		_ = w.SetServico(entities.ServicoIgreja, "valor", 2000.0)
		_ = w.SetServico(entities.ServicoBuffet, "valor", 8000.0)
		_ = w.Next()
		_ = w.SetServico(entities.ServicoOutros, "valor", 5000.0)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Orcamento{})).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) {
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				if o.Cliente.ID != "u-1" || o.Cliente.Nome != "Maria Souza" || o.Cliente.Email != "maria@example.com" {
					t.Fatalf("unexpected client snapshot: %+v", o.Cliente)
				}
				if o.ValorTotalConfirmado != 15000 || o.ValorMedioPrevisto != 15000 {
					t.Fatalf("unexpected totals: %+v", o)
				}
				if len(o.Servicos) != len(entities.ServicoCatalog) {
					t.Fatalf("expected full catalog, got %d lines", len(o.Servicos))
				}
				return o, nil
			},
		)

		saved, err := w.Submit(context.Background(), uc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID == "" {
			t.Fatalf("expected saved id")
		}
		if w.Step() != 1 || w.Form().ClienteSelecionado != "" {
			t.Fatalf("expected reset wizard after submit")
		}
	})

	t.Run("failure preserves the form for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		w := NewWizard(wizardClientes())
		w.SelectClient("u-1")
		_ = w.Next()
		_ = w.SetServico(entities.ServicoIgreja, "valor", 2000.0)
		_ = w.Next()

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Orcamento{}, errors.New("db down"))

		if _, err := w.Submit(context.Background(), uc); err == nil {
			t.Fatalf("expected error")
		}
		form := w.Form()
		if w.Step() != 3 || form.ClienteSelecionado != "u-1" || form.Servicos[entities.ServicoIgreja].Valor != 2000 {
			t.Fatalf("expected preserved state, got step=%d form=%+v", w.Step(), form)
		}
	})
}

func TestNewWizardFromOrcamento(t *testing.T) {
	o := entities.Orcamento{
		ID:               "orc-1",
		Cliente:          entities.ClienteRef{ID: "u-1", Papel: entities.PapelNoiva},
		NomeNoivo:        "João",
		NomeNoiva:        "Maria",
		DataCasamento:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		NumeroConvidados: 120,
		Servicos: map[entities.ServicoKey]entities.ServicoItem{
			entities.ServicoBuffet: {Descricao: "Buffet Sabor & Arte", Valor: 8000, Status: entities.OrcamentoStatusAtivo},
		},
	}

	w := NewWizardFromOrcamento(wizardClientes(), o)

	if !w.EditMode() || w.Step() != 1 {
		t.Fatalf("expected edit mode at step 1, got edit=%t step=%d", w.EditMode(), w.Step())
	}
	form := w.Form()
	if form.ClienteSelecionado != "u-1" || form.PapelCliente != entities.PapelNoiva {
		t.Fatalf("unexpected form: %+v", form)
	}
	if form.NomeNoivo != "João" || form.NomeNoiva != "Maria" || form.NumeroConvidados != 120 {
		t.Fatalf("unexpected form: %+v", form)
	}

	// The working copy strips persistence-only status from service lines.
	item := form.Servicos[entities.ServicoBuffet]
	if item.Descricao != "Buffet Sabor & Arte" || item.Valor != 8000 || item.Status != "" {
		t.Fatalf("unexpected service line: %+v", item)
	}
}
