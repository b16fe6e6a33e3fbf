package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/Irtizzasmartlog/AIFuneral/docs" // This will be auto-generated
	"github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/handlers"
	repository2 "github.com/Irtizzasmartlog/AIFuneral/internal/adapter/persistence/repository"
	"github.com/Irtizzasmartlog/AIFuneral/internal/infrastructure/database"
	"github.com/Irtizzasmartlog/AIFuneral/internal/infrastructure/email"
	"github.com/Irtizzasmartlog/AIFuneral/internal/infrastructure/llm"
	"github.com/Irtizzasmartlog/AIFuneral/internal/infrastructure/pdf"
	"github.com/Irtizzasmartlog/AIFuneral/internal/intake"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"

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

	caseRepo := repository2.NewCaseDynamoRepository(ddb)
	stateRepo := repository2.NewConversationStateDynamoRepository(ddb)
	packageRepo := repository2.NewPackageDynamoRepository(ddb)
	agentRunRepo := repository2.NewAgentRunDynamoRepository(ddb)

	engine := buildConversationEngine()

	var emailSender interfaces.IEmailSender
	sesSender, err := email.NewSESSender(context.Background(), os.Getenv("EMAIL_FROM_ADDRESS"))
	if err != nil {
		log.Printf("Email sender not configured: %v", err)
	} else {
		emailSender = sesSender
	}

	caseUseCase := usecase.NewCaseUseCase(caseRepo)
	conversationUseCase := usecase.NewConversationUseCase(engine, stateRepo, caseRepo)
	orchestratorUseCase := usecase.NewOrchestratorUseCase(caseRepo, packageRepo, agentRunRepo)
	packageQueryUseCase := usecase.NewPackageQueryUseCase(caseRepo, packageRepo)
	quoteUseCase := usecase.NewQuoteUseCase(caseRepo, packageRepo, pdf.NewQuoteRenderer(), emailSender, os.Getenv("ORGANIZATION_NAME"))

	caseHandler := handlers.NewCaseHandler(caseUseCase)
	conversationHandler := handlers.NewConversationHandler(conversationUseCase)
	packageHandler := handlers.NewPackageHandler(orchestratorUseCase, packageQueryUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCaseRoutes(v1, caseHandler, conversationHandler, packageHandler, quoteHandler)
}

// buildConversationEngine selects the intake backend. The deterministic
// engine always works; the Gemini layer is opt-in and degrades to the
// deterministic engine when its prerequisites are missing.
func buildConversationEngine() interfaces.IConversationEngine {
	local := intake.NewEngine()

	if strings.EqualFold(strings.TrimSpace(os.Getenv("INTAKE_ENGINE")), "gemini") {
		gemini, err := llm.NewGeminiEngine(context.Background(), local)
		if err != nil {
			log.Printf("Gemini intake engine not configured, using local engine: %v", err)
			return local
		}
		return gemini
	}
	return local
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
