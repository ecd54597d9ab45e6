package response

import (
	"time"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/pkg"
)

type ClienteResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Papel    string `json:"papel"`
}

type ServicoResponse struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Status    string  `json:"status"`
}

type OrcamentoResponse struct {
	ID                   string                     `json:"id"`
	Cliente              ClienteResponse            `json:"cliente"`
	NomeNoivo            string                     `json:"nomeNoivo"`
	NomeNoiva            string                     `json:"nomeNoiva"`
	DataCasamento        string                     `json:"dataCasamento"`
	NumeroConvidados     int                        `json:"numeroConvidados"`
	ValorTotalConfirmado float64                    `json:"valorTotalConfirmado"`
	ValorMedioPrevisto   float64                    `json:"valorMedioPrevisto"`
	Status               string                     `json:"status"`
	Servicos             map[string]ServicoResponse `json:"servicos"`
	CreatedAt            time.Time                  `json:"createdAt"`
	UpdatedAt            time.Time                  `json:"updatedAt"`
}

func FromOrcamento(o entities.Orcamento) OrcamentoResponse {
	servicos := make(map[string]ServicoResponse, len(o.Servicos))
	for key, item := range o.Servicos {
		servicos[string(key)] = ServicoResponse{
			Descricao: item.Descricao,
			Valor:     item.Valor,
			Status:    string(item.Status),
		}
	}

	dataCasamento := ""
	if !o.DataCasamento.IsZero() {
		dataCasamento = o.DataCasamento.Format("2006-01-02")
	}

	return OrcamentoResponse{
		ID: o.ID,
		Cliente: ClienteResponse{
			ID:       o.Cliente.ID,
			Nome:     o.Cliente.Nome,
			Email:    o.Cliente.Email,
			Telefone: pkg.FormatPhoneBR(o.Cliente.Telefone),
			Papel:    string(o.Cliente.Papel),
		},
		NomeNoivo:            o.NomeNoivo,
		NomeNoiva:            o.NomeNoiva,
		DataCasamento:        dataCasamento,
		NumeroConvidados:     o.NumeroConvidados,
		ValorTotalConfirmado: o.ValorTotalConfirmado,
		ValorMedioPrevisto:   o.ValorMedioPrevisto,
		Status:               string(o.Status),
		Servicos:             servicos,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func FromOrcamentos(orcamentos []entities.Orcamento) []OrcamentoResponse {
	out := make([]OrcamentoResponse, 0, len(orcamentos))
	for _, o := range orcamentos {
		out = append(out, FromOrcamento(o))
	}
	return out
}
