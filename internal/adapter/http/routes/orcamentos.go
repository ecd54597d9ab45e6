package routes

import (
	"casar_em_carneiros/internal/adapter/http/handlers"
	"casar_em_carneiros/internal/adapter/http/middleware"
	"casar_em_carneiros/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathOrcamentos = "/orcamentos"
	PathWizard     = "/wizard"
)

// Budgets and the wizard are back-office surfaces: staff and admin only.
func addOrcamentoRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc, orcamentoHandler *handlers.OrcamentoHandler, wizardHandler *handlers.WizardHandler) {
	staff := middleware.RequireRole(entities.RoleStaff, entities.RoleAdmin)

	orcamentos := rg.Group(PathOrcamentos, authn, staff)
	{
		orcamentos.POST("", orcamentoHandler.Create)
		orcamentos.GET("", orcamentoHandler.List)
		orcamentos.GET("/:id", orcamentoHandler.GetByID)
		orcamentos.PUT("/:id", orcamentoHandler.Update)
		orcamentos.DELETE("/:id", orcamentoHandler.Delete)
		orcamentos.GET("/:id/pdf", orcamentoHandler.DownloadPDF)
	}

	wizard := rg.Group(PathWizard, authn, staff)
	{
		wizard.POST("", wizardHandler.Open)
		wizard.GET("/:id", wizardHandler.Get)
		wizard.POST("/:id/next", wizardHandler.Next)
		wizard.POST("/:id/prev", wizardHandler.Prev)
		wizard.PATCH("/:id/dados", wizardHandler.SetDados)
		wizard.PATCH("/:id/servicos/:servico", wizardHandler.SetServico)
		wizard.POST("/:id/submit", wizardHandler.Submit)
		wizard.DELETE("/:id", wizardHandler.Cancel)
	}
}
