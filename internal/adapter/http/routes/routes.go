package routes

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "arborgold/docs" // generated swagger docs
	"arborgold/internal/adapter/http/handlers"
	"arborgold/internal/adapter/persistence/repository"
	"arborgold/internal/infrastructure/ai"
	"arborgold/internal/infrastructure/database"
	"arborgold/internal/observability/logger"
	"arborgold/internal/seed"
	"arborgold/internal/usecase"
	"arborgold/internal/usecase/interfaces"
)

var router = gin.New()

const defaultPort = "8080"

// Run wires the whole service together and starts the HTTP server.
func Run() {
	log, err := logger.Init()
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		zap.L().Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes() {
	db, err := database.Connect()
	if err != nil {
		zap.L().Fatal("database connection failed", zap.Error(err))
	}
	node, err := database.NewIDNode()
	if err != nil {
		zap.L().Fatal("id node setup failed", zap.Error(err))
	}

	uow := repository.NewGormUnitOfWork(db)

	if err := seed.Run(context.Background(), uow, node); err != nil {
		zap.L().Fatal("demo seed failed", zap.Error(err))
	}

	var gateway interfaces.AIGateway
	gw, err := ai.NewOpenAIGateway(os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		zap.L().Warn("ai gateway not configured; serving mock suggestions", zap.Error(err))
		gateway = ai.NewMockGateway()
	} else {
		gateway = gw
	}

	customerUseCase := usecase.NewCustomerUseCase(uow, node)
	leadUseCase := usecase.NewLeadUseCase(uow, node)
	estimateUseCase := usecase.NewEstimateUseCase(uow, node)
	jobUseCase := usecase.NewJobUseCase(uow, node)
	crewUseCase := usecase.NewCrewUseCase(uow, node)
	equipmentUseCase := usecase.NewEquipmentUseCase(uow, node)
	invoiceUseCase := usecase.NewInvoiceUseCase(uow, node)
	settingsUseCase := usecase.NewSettingsUseCase(uow)
	reportUseCase := usecase.NewReportUseCase(uow)
	aiUseCase := usecase.NewAIUseCase(uow, gateway)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	crewHandler := handlers.NewCrewHandler(crewUseCase)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	aiHandler := handlers.NewAIHandler(aiUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, customerHandler, leadHandler)
	addBillingRoutes(v1, estimateHandler, invoiceHandler)
	addFieldworkRoutes(v1, jobHandler, crewHandler, equipmentHandler)
	addInsightRoutes(v1, reportHandler, settingsHandler, aiHandler)
}

func setMiddlewares() {
	router.Use(logger.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.L().Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
