package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	request "casar_em_carneiros/internal/adapter/http/dto/request"
	response "casar_em_carneiros/internal/adapter/http/dto/response"
	"casar_em_carneiros/internal/usecase"
	"casar_em_carneiros/internal/usecase/interfaces"
	"casar_em_carneiros/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrcamentoPayload = pkg.NewDomainErrorSimple("INVALID_ORCAMENTO_INPUT", "Invalid orcamento payload", http.StatusBadRequest)

// OrcamentoHandler handles HTTP requests for wedding budgets, including the
// PDF export download.

type OrcamentoHandler struct {
	usecase  usecase.IOrcamentoUseCase
	renderer interfaces.IOrcamentoRenderer
}

func NewOrcamentoHandler(uc usecase.IOrcamentoUseCase, renderer interfaces.IOrcamentoRenderer) *OrcamentoHandler {
	return &OrcamentoHandler{usecase: uc, renderer: renderer}
}

func (h *OrcamentoHandler) Create(c *gin.Context) {
	h.save(c, "")
}

func (h *OrcamentoHandler) Update(c *gin.Context) {
	h.save(c, c.Param("id"))
}

func (h *OrcamentoHandler) save(c *gin.Context, id string) {
	var payload request.OrcamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	o, err := payload.ToOrcamento(id)
	if err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Salvar(c.Request.Context(), o)
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromOrcamento(saved))
}

func (h *OrcamentoHandler) List(c *gin.Context) {
	orcamentos, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrcamentos(orcamentos))
}

func (h *OrcamentoHandler) GetByID(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrcamento(o))
}

func (h *OrcamentoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadPDF streams the rendered budget document. The renderer already
// falls back to the condensed page internally, so an error here is terminal
// and surfaced as a non-retryable failure.
func (h *OrcamentoHandler) DownloadPDF(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	content, filename, err := h.renderer.Render(o)
	if err != nil {
		log.Printf("[orcamento][pdf] render failed id=%s err=%v", o.ID, err)
		appErr := pkg.NewDomainError("PDF_GENERATION_FAILED", "Erro ao gerar PDF. Tente novamente.", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK, "application/pdf", content)
}

func mapOrcamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrcamentoID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrcamentoNotFound):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orcamento not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
