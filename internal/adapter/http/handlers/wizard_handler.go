package handlers

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	request "casar_em_carneiros/internal/adapter/http/dto/request"
	response "casar_em_carneiros/internal/adapter/http/dto/response"
	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase"
	"casar_em_carneiros/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
	errWizardNotFound       = pkg.NewDomainErrorSimple("WIZARD_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
)

// WizardHandler hosts the three-step budget wizard sessions.
//
// Sessions live in memory, keyed by uuid; closing (cancel) or a successful
// submit discards the session. A failed submit keeps the session alive so
// the user's input survives for retry.

// wizardSession serializes access to one wizard: the Wizard itself is not
// safe for concurrent mutation, so every handler runs under the session
// mutex.
type wizardSession struct {
	mu sync.Mutex
	w  *usecase.Wizard
}

type WizardHandler struct {
	orcamentos usecase.IOrcamentoUseCase
	users      usecase.IUserUseCase

	mu       sync.Mutex
	sessions map[string]*wizardSession
}

func NewWizardHandler(orcamentos usecase.IOrcamentoUseCase, users usecase.IUserUseCase) *WizardHandler {
	return &WizardHandler{
		orcamentos: orcamentos,
		users:      users,
		sessions:   make(map[string]*wizardSession),
	}
}

// Open starts a wizard session. The client snapshot is fetched once, here;
// a snapshot failure leaves the selector empty but does not block the
// wizard. With an orcamentoId the session opens in edit mode.
func (h *WizardHandler) Open(c *gin.Context) {
	var payload request.OpenWizardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	clientes, err := h.users.List(c.Request.Context())
	if err != nil {
		log.Printf("[wizard] client snapshot fetch failed err=%v", err)
		clientes = nil
	}

	var w *usecase.Wizard
	if payload.OrcamentoID != "" {
		o, err := h.orcamentos.GetByID(c.Request.Context(), payload.OrcamentoID)
		if err != nil {
			appErr := mapOrcamentoError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		w = usecase.NewWizardFromOrcamento(clientes, o)
	} else {
		w = usecase.NewWizard(clientes)
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.sessions[id] = &wizardSession{w: w}
	h.mu.Unlock()

	c.JSON(http.StatusCreated, response.FromWizard(id, w))
}

func (h *WizardHandler) Get(c *gin.Context) {
	h.withSession(c, func(id string, w *usecase.Wizard) {
		c.JSON(http.StatusOK, response.FromWizard(id, w))
	})
}

func (h *WizardHandler) Next(c *gin.Context) {
	h.step(c, (*usecase.Wizard).Next)
}

func (h *WizardHandler) Prev(c *gin.Context) {
	h.step(c, (*usecase.Wizard).Prev)
}

func (h *WizardHandler) step(c *gin.Context, advance func(*usecase.Wizard) error) {
	h.withSession(c, func(id string, w *usecase.Wizard) {
		if err := advance(w); err != nil {
			appErr := pkg.NewDomainErrorSimple("WIZARD_STEP_OUT_OF_RANGE", err.Error(), http.StatusConflict)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromWizard(id, w))
	})
}

// SetDados applies step-1 edits. Selecting a client copies its name into the
// groom or bride field; an unknown client id is silently ignored.
func (h *WizardHandler) SetDados(c *gin.Context) {
	var payload request.WizardDadosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	h.withSession(c, func(id string, w *usecase.Wizard) {
		if payload.PapelCliente != nil {
			w.SetPapelCliente(entities.PapelCliente(*payload.PapelCliente))
		}
		if payload.ClienteSelecionado != nil {
			w.SelectClient(*payload.ClienteSelecionado)
		}
		if payload.NomeNoivo != nil {
			w.SetNomeNoivo(*payload.NomeNoivo)
		}
		if payload.NomeNoiva != nil {
			w.SetNomeNoiva(*payload.NomeNoiva)
		}
		if payload.DataCasamento != nil {
			d, err := time.Parse("2006-01-02", *payload.DataCasamento)
			if err != nil {
				c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
				return
			}
			w.SetDataCasamento(d)
		}
		if payload.NumeroConvidados != nil {
			w.SetNumeroConvidados(*payload.NumeroConvidados)
		}
		c.JSON(http.StatusOK, response.FromWizard(id, w))
	})
}

// SetServico updates one service line of steps 2-3.
func (h *WizardHandler) SetServico(c *gin.Context) {
	var payload request.WizardServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	key := entities.ServicoKey(c.Param("servico"))

	h.withSession(c, func(id string, w *usecase.Wizard) {
		if payload.Descricao != nil {
			if err := w.SetServico(key, "descricao", *payload.Descricao); err != nil {
				appErr := mapWizardError(err)
				c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
		}
		if payload.Valor != nil {
			if err := w.SetServico(key, "valor", *payload.Valor); err != nil {
				appErr := mapWizardError(err)
				c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
		}
		c.JSON(http.StatusOK, response.FromWizard(id, w))
	})
}

// Submit persists the budget. On success the session is discarded; on
// failure it is kept so the user's input survives for retry, and the error
// message distinguishes create from update.
func (h *WizardHandler) Submit(c *gin.Context) {
	h.withSession(c, func(id string, w *usecase.Wizard) {
		editMode := w.EditMode()

		saved, err := w.Submit(c.Request.Context(), h.orcamentos)
		if err != nil {
			if errors.Is(err, usecase.ErrWizardNotFinalStep) {
				appErr := pkg.NewDomainErrorSimple("WIZARD_NOT_FINAL_STEP", err.Error(), http.StatusConflict)
				c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}

			log.Printf("[wizard] submit failed session=%s edit=%t err=%v", id, editMode, err)
			code, msg := "ORCAMENTO_CREATE_FAILED", "Erro ao criar orçamento. Tente novamente."
			if editMode {
				code, msg = "ORCAMENTO_UPDATE_FAILED", "Erro ao atualizar orçamento. Tente novamente."
			}
			appErr := pkg.NewDomainError(code, msg, err, http.StatusBadGateway)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		h.mu.Lock()
		delete(h.sessions, id)
		h.mu.Unlock()

		status := http.StatusOK
		if !editMode {
			status = http.StatusCreated
		}
		c.JSON(status, response.FromOrcamento(saved))
	})
}

// Cancel discards the session and every uncommitted edit.
func (h *WizardHandler) Cancel(c *gin.Context) {
	h.withSession(c, func(id string, w *usecase.Wizard) {
		w.Cancel()
		h.mu.Lock()
		delete(h.sessions, id)
		h.mu.Unlock()
		c.Status(http.StatusNoContent)
	})
}

func (h *WizardHandler) withSession(c *gin.Context, fn func(id string, w *usecase.Wizard)) {
	id := c.Param("id")

	h.mu.Lock()
	s, ok := h.sessions[id]
	h.mu.Unlock()
	if !ok {
		c.JSON(errWizardNotFound.HTTPStatus, errWizardNotFound.ToHTTPError())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	fn(id, s.w)
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownServico):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICO", "Unknown service category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServicoField):
		return pkg.NewDomainErrorSimple("INVALID_SERVICO_FIELD", "Invalid service field", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
