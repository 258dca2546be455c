package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "cuidandote_presupuestos/docs" // This will be auto-generated
	"cuidandote_presupuestos/internal/adapter/http/handlers"
	repository2 "cuidandote_presupuestos/internal/adapter/persistence/repository"
	"cuidandote_presupuestos/internal/infrastructure/database"
	"cuidandote_presupuestos/internal/infrastructure/mail"
	"cuidandote_presupuestos/internal/usecase"
	"cuidandote_presupuestos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const serviceVersion = "1.0.0"

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

	if seedEnabled() {
		if err := database.Bootstrap(context.Background(), ddb); err != nil {
			log.Fatalf("Failed to bootstrap DynamoDB tables: %v", err)
		}
	}

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	rateRepo := repository2.NewRateDynamoRepository(ddb)

	var mailer interfaces.IMailSender
	smtpMailer, err := mail.NewSMTPMailerFromEnv()
	if err != nil {
		log.Printf("SMTP mailer not configured: %v", err)
	} else {
		mailer = smtpMailer
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, rateRepo, mailer)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	healthHandler := handlers.NewHealthHandler(quoteRepo, serviceVersion)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPresupuestoRoutes(v1, quoteHandler, healthHandler)
}

// seedEnabled decides whether Bootstrap runs at startup. Explicit
// SEED_REFERENCE_DATA wins; otherwise seeding is on only when pointing at a
// local DynamoDB endpoint.
func seedEnabled() bool {
	if v := os.Getenv("SEED_REFERENCE_DATA"); v != "" {
		return v == "1" || v == "true"
	}
	return os.Getenv("DYNAMODB_ENDPOINT") != ""
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
