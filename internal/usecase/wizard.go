package usecase

import (
	"context"
	"errors"
	"time"

	"casar_em_carneiros/internal/domain/entities"
)

var (
	ErrWizardFirstStep     = errors.New("wizard already at first step")
	ErrWizardLastStep      = errors.New("wizard already at last step")
	ErrWizardNotFinalStep  = errors.New("submit only allowed at final step")
	ErrUnknownServico      = errors.New("unknown service key")
	ErrInvalidServicoField = errors.New("invalid service field")
)

const (
	wizardFirstStep = 1
	wizardLastStep  = 3
)

// WizardForm is the working copy edited across the three wizard steps. It is
// discarded on cancel and only committed on submit.
type WizardForm struct {
	ClienteSelecionado string
	PapelCliente       entities.PapelCliente
	NomeNoivo          string
	NomeNoiva          string
	DataCasamento      time.Time
	NumeroConvidados   int
	Servicos           map[entities.ServicoKey]entities.ServicoItem
}

// Wizard drives the three-step budget form: couple data, primary services,
// complementary services plus running total. Steps are strictly linear; there
// are no jump transitions.
//
// The client snapshot is fetched once when the wizard opens. Selecting a
// client copies its display name into the groom or bride field depending on
// the chosen wedding role; the snapshot is never re-read afterwards.
type Wizard struct {
	step     int
	editID   string
	clientes []entities.User
	form     WizardForm
}

// NewWizard opens a blank wizard (create mode) over the given client snapshot.
func NewWizard(clientes []entities.User) *Wizard {
	w := &Wizard{clientes: clientes}
	w.reset()
	return w
}

// NewWizardFromOrcamento opens the wizard pre-populated from an existing
// record (edit mode). Submitting overwrites that record in full.
func NewWizardFromOrcamento(clientes []entities.User, o entities.Orcamento) *Wizard {
	w := NewWizard(clientes)
	w.editID = o.ID
	w.form.ClienteSelecionado = o.Cliente.ID
	if o.Cliente.Papel != "" {
		w.form.PapelCliente = o.Cliente.Papel
	}
	w.form.NomeNoivo = o.NomeNoivo
	w.form.NomeNoiva = o.NomeNoiva
	w.form.DataCasamento = o.DataCasamento
	w.form.NumeroConvidados = o.NumeroConvidados
	for _, entry := range entities.ServicoCatalog {
		if item, ok := o.Servicos[entry.Key]; ok {
			w.form.Servicos[entry.Key] = entities.ServicoItem{Descricao: item.Descricao, Valor: item.Valor}
		}
	}
	return w
}

func (w *Wizard) reset() {
	w.step = wizardFirstStep
	servicos := make(map[entities.ServicoKey]entities.ServicoItem, len(entities.ServicoCatalog))
	for _, entry := range entities.ServicoCatalog {
		servicos[entry.Key] = entities.ServicoItem{}
	}
	w.form = WizardForm{
		PapelCliente: entities.PapelNoivo,
		Servicos:     servicos,
	}
}

func (w *Wizard) Step() int { return w.step }

// EditMode reports whether submit will overwrite an existing record.
func (w *Wizard) EditMode() bool { return w.editID != "" }

func (w *Wizard) Form() WizardForm { return w.form }

func (w *Wizard) Next() error {
	if w.step >= wizardLastStep {
		return ErrWizardLastStep
	}
	w.step++
	return nil
}

func (w *Wizard) Prev() error {
	if w.step <= wizardFirstStep {
		return ErrWizardFirstStep
	}
	w.step--
	return nil
}

// Cancel discards all in-progress edits and leaves the wizard at step 1.
func (w *Wizard) Cancel() {
	w.editID = ""
	w.reset()
}

// SelectClient picks a client from the snapshot and copies its display name
// into the groom or bride field according to the selected wedding role.
// Unknown ids are a no-op. Calling it twice with the same arguments yields
// the same state as calling it once.
func (w *Wizard) SelectClient(clientID string) {
	cliente, ok := w.findCliente(clientID)
	if !ok {
		return
	}
	w.form.ClienteSelecionado = clientID
	if w.form.PapelCliente == entities.PapelNoivo {
		w.form.NomeNoivo = cliente.FullName
	} else {
		w.form.NomeNoiva = cliente.FullName
	}
}

// SetPapelCliente switches the wedding role of the selected client and, when
// a client is already selected, re-applies the name copy to the new field.
func (w *Wizard) SetPapelCliente(papel entities.PapelCliente) {
	w.form.PapelCliente = papel
	if w.form.ClienteSelecionado != "" {
		w.SelectClient(w.form.ClienteSelecionado)
	}
}

func (w *Wizard) SetNomeNoivo(nome string)     { w.form.NomeNoivo = nome }
func (w *Wizard) SetNomeNoiva(nome string)     { w.form.NomeNoiva = nome }
func (w *Wizard) SetDataCasamento(d time.Time) { w.form.DataCasamento = d }
func (w *Wizard) SetNumeroConvidados(n int)    { w.form.NumeroConvidados = n }

// SetServico updates one field of one service line. The field is "descricao"
// (string) or "valor" (float64); numeric coercion is the caller's concern.
func (w *Wizard) SetServico(key entities.ServicoKey, field string, value any) error {
	item, ok := w.form.Servicos[key]
	if !ok {
		return ErrUnknownServico
	}

	switch field {
	case "descricao":
		s, ok := value.(string)
		if !ok {
			return ErrInvalidServicoField
		}
		item.Descricao = s
	case "valor":
		v, ok := value.(float64)
		if !ok {
			return ErrInvalidServicoField
		}
		item.Valor = v
	default:
		return ErrInvalidServicoField
	}

	w.form.Servicos[key] = item
	return nil
}

// ComputeTotal sums the value of the eight service lines. NaN values count
// as zero; the computation never fails.
func (w *Wizard) ComputeTotal() float64 {
	o := entities.Orcamento{Servicos: w.form.Servicos}
	return o.SomaServicos()
}

// Submit builds the persistence-ready record and saves it through the
// usecase. On success the wizard resets for the next open; on failure the
// in-progress form is preserved so the user can retry.
func (w *Wizard) Submit(ctx context.Context, uc IOrcamentoUseCase) (entities.Orcamento, error) {
	if w.step != wizardLastStep {
		return entities.Orcamento{}, ErrWizardNotFinalStep
	}

	saved, err := uc.Salvar(ctx, w.buildOrcamento())
	if err != nil {
		return entities.Orcamento{}, err
	}

	w.Cancel()
	return saved, nil
}

func (w *Wizard) buildOrcamento() entities.Orcamento {
	cliente, _ := w.findCliente(w.form.ClienteSelecionado)

	servicos := make(map[entities.ServicoKey]entities.ServicoItem, len(entities.ServicoCatalog))
	for _, entry := range entities.ServicoCatalog {
		servicos[entry.Key] = w.form.Servicos[entry.Key]
	}

	return entities.Orcamento{
		ID: w.editID,
		Cliente: entities.ClienteRef{
			ID:       w.form.ClienteSelecionado,
			Nome:     cliente.FullName,
			Email:    cliente.Email,
			Telefone: cliente.PhoneNumber,
			Papel:    w.form.PapelCliente,
		},
		NomeNoivo:        w.form.NomeNoivo,
		NomeNoiva:        w.form.NomeNoiva,
		DataCasamento:    w.form.DataCasamento,
		NumeroConvidados: w.form.NumeroConvidados,
		Servicos:         servicos,
	}
}

func (w *Wizard) findCliente(id string) (entities.User, bool) {
	if id == "" {
		return entities.User{}, false
	}
	for _, c := range w.clientes {
		if c.ID == id {
			return c, true
		}
	}
	return entities.User{}, false
}
