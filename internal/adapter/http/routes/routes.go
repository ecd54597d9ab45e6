package routes

import (
	"log"
	"os"
	"strconv"

	_ "casar_em_carneiros/docs" // This will be auto-generated
	"casar_em_carneiros/internal/adapter/http/handlers"
	"casar_em_carneiros/internal/adapter/http/middleware"
	repository2 "casar_em_carneiros/internal/adapter/persistence/repository"
	"casar_em_carneiros/internal/infrastructure/database"
	"casar_em_carneiros/internal/infrastructure/identity"
	"casar_em_carneiros/internal/infrastructure/pdf"
	"casar_em_carneiros/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orcamentoRepo := repository2.NewOrcamentoDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	tokens := identity.NewTokenManager(os.Getenv("JWT_SECRET"), "casar-em-carneiros", 0)
	hasher := identity.BcryptHasher{}

	orcamentoUseCase := usecase.NewOrcamentoUseCase(orcamentoRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, hasher)
	authUseCase := usecase.NewAuthUseCase(userRepo, hasher, tokens)

	renderer := pdf.NewGenerator()

	orcamentoHandler := handlers.NewOrcamentoHandler(orcamentoUseCase, renderer)
	wizardHandler := handlers.NewWizardHandler(orcamentoUseCase, userUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	authn := middleware.RequireAuth(tokens)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authn, authHandler)

	// Rotas protegidas
	addOrcamentoRoutes(v1, authn, orcamentoHandler, wizardHandler)
	addUserRoutes(v1, authn, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
