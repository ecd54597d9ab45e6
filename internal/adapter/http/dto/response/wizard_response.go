package response

import (
	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase"
	"casar_em_carneiros/pkg"
)

type WizardServicoState struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

// WizardStateResponse mirrors the wizard session after every action: current
// step, form contents and the running total (raw and pt-BR formatted).
type WizardStateResponse struct {
	WizardID           string                        `json:"wizardId"`
	Step               int                           `json:"step"`
	EditMode           bool                          `json:"editMode"`
	ClienteSelecionado string                        `json:"clienteSelecionado"`
	PapelCliente       string                        `json:"papelCliente"`
	NomeNoivo          string                        `json:"nomeNoivo"`
	NomeNoiva          string                        `json:"nomeNoiva"`
	DataCasamento      string                        `json:"dataCasamento"`
	NumeroConvidados   int                           `json:"numeroConvidados"`
	Servicos           map[string]WizardServicoState `json:"servicos"`
	ValorTotal         float64                       `json:"valorTotal"`
	ValorTotalFmt      string                        `json:"valorTotalFormatado"`
}

func FromWizard(id string, w *usecase.Wizard) WizardStateResponse {
	form := w.Form()

	servicos := make(map[string]WizardServicoState, len(entities.ServicoCatalog))
	for _, entry := range entities.ServicoCatalog {
		item := form.Servicos[entry.Key]
		servicos[string(entry.Key)] = WizardServicoState{Descricao: item.Descricao, Valor: item.Valor}
	}

	dataCasamento := ""
	if !form.DataCasamento.IsZero() {
		dataCasamento = form.DataCasamento.Format("2006-01-02")
	}

	total := w.ComputeTotal()
	return WizardStateResponse{
		WizardID:           id,
		Step:               w.Step(),
		EditMode:           w.EditMode(),
		ClienteSelecionado: form.ClienteSelecionado,
		PapelCliente:       string(form.PapelCliente),
		NomeNoivo:          form.NomeNoivo,
		NomeNoiva:          form.NomeNoiva,
		DataCasamento:      dataCasamento,
		NumeroConvidados:   form.NumeroConvidados,
		Servicos:           servicos,
		ValorTotal:         total,
		ValorTotalFmt:      pkg.FormatCurrencyBR(total),
	}
}
