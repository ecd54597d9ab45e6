package request

import (
	"errors"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/pkg"
)

var ErrInvalidDataCasamento = errors.New("invalid wedding date")

type ClienteRequest struct {
	ID       string `json:"id" binding:"required"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Papel    string `json:"papel" binding:"required,oneof=noivo noiva"`
}

type ServicoRequest struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

// OrcamentoRequest is the direct create/overwrite payload. DataCasamento
// accepts the legacy representations (unix-seconds number, ISO string,
// yyyy-mm-dd string); ToOrcamento normalizes them.
type OrcamentoRequest struct {
	Cliente          ClienteRequest            `json:"cliente" binding:"required"`
	NomeNoivo        string                    `json:"nomeNoivo" binding:"required"`
	NomeNoiva        string                    `json:"nomeNoiva" binding:"required"`
	DataCasamento    any                       `json:"dataCasamento" binding:"required"`
	NumeroConvidados int                       `json:"numeroConvidados" binding:"gte=0"`
	Servicos         map[string]ServicoRequest `json:"servicos"`
}

func (r OrcamentoRequest) ToOrcamento(id string) (entities.Orcamento, error) {
	dataCasamento, ok := pkg.NormalizeCalendarDate(r.DataCasamento)
	if !ok {
		return entities.Orcamento{}, ErrInvalidDataCasamento
	}

	servicos := make(map[entities.ServicoKey]entities.ServicoItem, len(r.Servicos))
	for key, s := range r.Servicos {
		servicos[entities.ServicoKey(key)] = entities.ServicoItem{
			Descricao: s.Descricao,
			Valor:     s.Valor,
		}
	}

	return entities.Orcamento{
		ID: id,
		Cliente: entities.ClienteRef{
			ID:       r.Cliente.ID,
			Nome:     r.Cliente.Nome,
			Email:    r.Cliente.Email,
			Telefone: r.Cliente.Telefone,
			Papel:    entities.PapelCliente(r.Cliente.Papel),
		},
		NomeNoivo:        r.NomeNoivo,
		NomeNoiva:        r.NomeNoiva,
		DataCasamento:    dataCasamento,
		NumeroConvidados: r.NumeroConvidados,
		Servicos:         servicos,
	}, nil
}
