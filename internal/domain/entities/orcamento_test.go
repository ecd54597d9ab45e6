package entities

import (
	"math"
	"testing"
)

func TestServicoItem_Vazio(t *testing.T) {
	cases := []struct {
		name string
		item ServicoItem
		want bool
	}{
		{name: "blank line", item: ServicoItem{}, want: true},
		{name: "nan value only", item: ServicoItem{Valor: math.NaN()}, want: true},
		{name: "description without value", item: ServicoItem{Descricao: "Igreja Matriz"}, want: false},
		{name: "value without description", item: ServicoItem{Valor: 2000}, want: false},
		{name: "both", item: ServicoItem{Descricao: "Igreja Matriz", Valor: 2000}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.Vazio(); got != tc.want {
				t.Fatalf("Vazio() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestOrcamento_SomaServicos(t *testing.T) {
	t.Run("nil map", func(t *testing.T) {
		if got := (Orcamento{}).SomaServicos(); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("sums all catalog lines", func(t *testing.T) {
		o := Orcamento{Servicos: map[ServicoKey]ServicoItem{
			ServicoIgreja:    {Valor: 2000},
			ServicoBuffet:    {Valor: 8000},
			ServicoDecoracao: {Valor: 5000},
		}}
		if got := o.SomaServicos(); got != 15000 {
			t.Fatalf("expected 15000, got %v", got)
		}
	})

	t.Run("nan counts as zero", func(t *testing.T) {
		o := Orcamento{Servicos: map[ServicoKey]ServicoItem{
			ServicoIgreja: {Valor: 2000},
			ServicoOutros: {Valor: math.NaN()},
		}}
		if got := o.SomaServicos(); got != 2000 {
			t.Fatalf("expected 2000, got %v", got)
		}
	})

	t.Run("non-catalog keys are ignored", func(t *testing.T) {
		o := Orcamento{Servicos: map[ServicoKey]ServicoItem{
			ServicoIgreja: {Valor: 2000},
			"jardinagem":  {Valor: 99999},
		}}
		if got := o.SomaServicos(); got != 2000 {
			t.Fatalf("expected 2000, got %v", got)
		}
	})
}
