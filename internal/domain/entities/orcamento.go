package entities

import (
	"math"
	"time"
)

// OrcamentoStatus represents the lifecycle of a wedding budget (orçamento).
//
// Domain notes:
//   - The back office is the source of truth for budget state.
//   - A budget is never hard-deleted by the wizard; list views drive deletion.

type OrcamentoStatus string

const (
	OrcamentoStatusAtivo     OrcamentoStatus = "ativo"
	OrcamentoStatusCancelado OrcamentoStatus = "cancelado"
	OrcamentoStatusPausado   OrcamentoStatus = "pausado"
)

// ServicoKey identifies one of the eight fixed service categories of a budget.
type ServicoKey string

const (
	ServicoAssessoriaCerimonial ServicoKey = "assessoriaCerimonial"
	ServicoIgreja               ServicoKey = "igreja"
	ServicoLocalRecepcao        ServicoKey = "localRecepcao"
	ServicoBuffet               ServicoKey = "buffet"
	ServicoDecoracao            ServicoKey = "decoracao"
	ServicoMusica               ServicoKey = "musica"
	ServicoConvites             ServicoKey = "convites"
	ServicoOutros               ServicoKey = "outros"
)

// ServicoCatalogEntry pairs a service key with its display label, in the
// order the wizard and the PDF table present them.
type ServicoCatalogEntry struct {
	Key  ServicoKey
	Nome string
}

// ServicoCatalog is the fixed eight-category catalog. Categories are never
// added or removed per budget; unused ones stay zeroed.
var ServicoCatalog = []ServicoCatalogEntry{
	{ServicoAssessoriaCerimonial, "Assessoria/Cerimonial"},
	{ServicoIgreja, "Igreja"},
	{ServicoLocalRecepcao, "Local Recepção"},
	{ServicoBuffet, "Buffet"},
	{ServicoDecoracao, "Decoração"},
	{ServicoMusica, "Música"},
	{ServicoConvites, "Convites"},
	{ServicoOutros, "Outros"},
}

// ServicoItem is one service line inside a budget.
type ServicoItem struct {
	Descricao string          `json:"descricao"`
	Valor     float64         `json:"valor"`
	Status    OrcamentoStatus `json:"status,omitempty"`
}

// Vazio reports whether the line carries no user input. Empty lines are
// skipped by the PDF table.
func (s ServicoItem) Vazio() bool {
	return s.Descricao == "" && (s.Valor == 0 || math.IsNaN(s.Valor))
}

// ClienteRef is the denormalized client snapshot captured at save time.
// It does not track later changes to the underlying user record.
type ClienteRef struct {
	ID       string       `json:"id"`
	Nome     string       `json:"nome"`
	Email    string       `json:"email"`
	Telefone string       `json:"telefone"`
	Papel    PapelCliente `json:"papel"`
}

// Orcamento is the wedding budget aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - Table: orcamentos
//   - PK: id
//
// Invariant: ValorTotalConfirmado equals the sum of all service values at the
// time of save; it is recomputed on every submit, never edited directly.
// ValorMedioPrevisto currently mirrors the confirmed total but is kept as an
// independent field (quoted vs. contracted amounts may diverge later).
type Orcamento struct {
	ID                   string                     `json:"id"`
	Cliente              ClienteRef                 `json:"cliente"`
	NomeNoivo            string                     `json:"nomeNoivo"`
	NomeNoiva            string                     `json:"nomeNoiva"`
	DataCasamento        time.Time                  `json:"dataCasamento"`
	NumeroConvidados     int                        `json:"numeroConvidados"`
	ValorTotalConfirmado float64                    `json:"valorTotalConfirmado"`
	ValorMedioPrevisto   float64                    `json:"valorMedioPrevisto"`
	Status               OrcamentoStatus            `json:"status"`
	Servicos             map[ServicoKey]ServicoItem `json:"servicos"`
	CreatedAt            time.Time                  `json:"createdAt"`
	UpdatedAt            time.Time                  `json:"updatedAt"`
}

// SomaServicos sums the value of every catalog category. Absent entries and
// NaN values count as zero, so the total is always defined.
func (o Orcamento) SomaServicos() float64 {
	total := 0.0
	for _, entry := range ServicoCatalog {
		item := o.Servicos[entry.Key]
		if math.IsNaN(item.Valor) {
			continue
		}
		total += item.Valor
	}
	return total
}
