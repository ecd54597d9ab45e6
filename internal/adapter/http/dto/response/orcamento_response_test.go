package response

import (
	"testing"
	"time"

	"casar_em_carneiros/internal/domain/entities"
)

func TestFromOrcamento(t *testing.T) {
	o := entities.Orcamento{
		ID: "orc-1",
		Cliente: entities.ClienteRef{
			ID: "u-1", Nome: "Maria Souza", Telefone: "87999991234", Papel: entities.PapelNoiva,
		},
		NomeNoivo:            "João Silva",
		NomeNoiva:            "Maria Souza",
		DataCasamento:        time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		ValorTotalConfirmado: 15000,
		Status:               entities.OrcamentoStatusAtivo,
		Servicos: map[entities.ServicoKey]entities.ServicoItem{
			entities.ServicoBuffet: {Descricao: "Buffet", Valor: 8000, Status: entities.OrcamentoStatusAtivo},
		},
	}

	res := FromOrcamento(o)

	if res.ID != "orc-1" || res.DataCasamento != "2026-09-12" || res.Status != "ativo" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Cliente.Telefone != "(87) 99999-1234" {
		t.Fatalf("expected masked phone, got %q", res.Cliente.Telefone)
	}
	if res.Servicos["buffet"].Valor != 8000 || res.Servicos["buffet"].Status != "ativo" {
		t.Fatalf("unexpected service line: %+v", res.Servicos["buffet"])
	}
}

func TestFromOrcamento_ZeroDate(t *testing.T) {
	res := FromOrcamento(entities.Orcamento{ID: "orc-1"})
	if res.DataCasamento != "" {
		t.Fatalf("expected empty date, got %q", res.DataCasamento)
	}
}

func TestFromOrcamentos(t *testing.T) {
	res := FromOrcamentos(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}

	res = FromOrcamentos([]entities.Orcamento{{ID: "a"}, {ID: "b"}})
	if len(res) != 2 || res[0].ID != "a" || res[1].ID != "b" {
		t.Fatalf("unexpected responses: %+v", res)
	}
}
