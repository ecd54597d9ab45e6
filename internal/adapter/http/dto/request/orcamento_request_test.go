package request

import (
	"errors"
	"testing"
	"time"
)

func TestOrcamentoRequest_ToOrcamento(t *testing.T) {
	base := OrcamentoRequest{
		Cliente:          ClienteRequest{ID: "u-1", Nome: "Maria Souza", Papel: "noiva"},
		NomeNoivo:        "João Silva",
		NomeNoiva:        "Maria Souza",
		NumeroConvidados: 120,
		Servicos: map[string]ServicoRequest{
			"buffet": {Descricao: "Buffet Sabor & Arte", Valor: 8000},
		},
	}

	want := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	t.Run("iso date string", func(t *testing.T) {
		r := base
		r.DataCasamento = "2026-09-12"

		o, err := r.ToOrcamento("orc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "orc-1" || !o.DataCasamento.Equal(want) {
			t.Fatalf("unexpected orcamento: %+v", o)
		}
		if o.Cliente.Papel != "noiva" || o.Servicos["buffet"].Valor != 8000 {
			t.Fatalf("unexpected orcamento: %+v", o)
		}
	})

	t.Run("unix seconds number", func(t *testing.T) {
		r := base
		// JSON numbers arrive as float64.
		r.DataCasamento = float64(want.Unix())

		o, err := r.ToOrcamento("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.DataCasamento.Equal(want) {
			t.Fatalf("expected %v, got %v", want, o.DataCasamento)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		r := base
		r.DataCasamento = "em breve"

		_, err := r.ToOrcamento("")
		if !errors.Is(err, ErrInvalidDataCasamento) {
			t.Fatalf("expected ErrInvalidDataCasamento, got %v", err)
		}
	})
}
