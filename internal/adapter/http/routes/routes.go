package routes

import (
	"log"
	"os"
	"strconv"

	_ "cermont_os/docs" // This will be auto-generated
	"cermont_os/internal/adapter/http/handlers"
	repository2 "cermont_os/internal/adapter/persistence/repository"
	"cermont_os/internal/infrastructure/database"
	"cermont_os/internal/infrastructure/events"
	"cermont_os/internal/infrastructure/payments"
	"cermont_os/internal/infrastructure/sweeper"
	"cermont_os/internal/usecase"
	"cermont_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
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
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err.Error())
	}

	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderStateDynamoRepository(ddb)
	alertRepo := repository2.NewAlertDynamoRepository(ddb)
	entryRepo := repository2.NewCostEntryDynamoRepository(ddb)
	comparisonRepo := repository2.NewCostComparisonDynamoRepository(ddb)
	planningRepo := repository2.NewPlanningDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	publisher := events.ConnectPublisher(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"), logger)

	alertUseCase := usecase.NewAlertUseCase(alertRepo, logger)
	costUseCase := usecase.NewCostUseCase(orderRepo, entryRepo, comparisonRepo)
	triggerEngine := usecase.NewTriggerEngine(planningRepo, alertUseCase, costUseCase, logger)
	transitionUseCase := usecase.NewTransitionUseCase(orderRepo, publisher, triggerEngine, logger)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), logger)
	if err != nil {
		logger.Warn("payment gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway, transitionUseCase, logger)

	sweepUseCase := usecase.NewSweepUseCase(orderRepo, alertUseCase, usecase.SweepConfigFromEnv(), logger)
	scheduler := sweeper.NewScheduler(sweepUseCase, logger)
	if err := scheduler.Start(os.Getenv("SWEEP_SCHEDULE")); err != nil {
		log.Fatalf("Failed to start sweep scheduler: %v", err.Error())
	}

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	transitionHandler := handlers.NewTransitionHandler(transitionUseCase)
	alertHandler := handlers.NewAlertHandler(alertUseCase)
	costHandler := handlers.NewCostHandler(costUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, transitionHandler, alertHandler, costHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
