package request

// OpenWizardRequest opens a wizard session: blank when OrcamentoID is empty,
// pre-populated (edit mode) otherwise.
type OpenWizardRequest struct {
	OrcamentoID string `json:"orcamentoId"`
}

// WizardDadosRequest carries step-1 fields. Every field is optional so the
// frontend can push edits as they happen; absent fields stay untouched.
type WizardDadosRequest struct {
	ClienteSelecionado *string `json:"clienteSelecionado"`
	PapelCliente       *string `json:"papelCliente" binding:"omitempty,oneof=noivo noiva"`
	NomeNoivo          *string `json:"nomeNoivo"`
	NomeNoiva          *string `json:"nomeNoiva"`
	DataCasamento      *string `json:"dataCasamento"`
	NumeroConvidados   *int    `json:"numeroConvidados" binding:"omitempty,gte=0"`
}

// WizardServicoRequest updates one service line of steps 2-3. Either field
// may be omitted to leave it unchanged.
type WizardServicoRequest struct {
	Descricao *string  `json:"descricao"`
	Valor     *float64 `json:"valor"`
}
