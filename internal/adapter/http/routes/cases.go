package routes

import (
	"github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCases = "/cases"
)

func addCaseRoutes(
	rg *gin.RouterGroup,
	caseHandler *handlers.CaseHandler,
	conversationHandler *handlers.ConversationHandler,
	packageHandler *handlers.PackageHandler,
	quoteHandler *handlers.QuoteHandler,
) {
	cases := rg.Group(PathCases)
	{
		cases.POST("", caseHandler.CreateCase)
		cases.GET("/:case_id", caseHandler.GetCase)

		cases.POST("/:case_id/turns", conversationHandler.PostTurn)
		cases.POST("/:case_id/apply", conversationHandler.ApplyToCase)

		cases.POST("/:case_id/packages", packageHandler.GeneratePackages)
		cases.GET("/:case_id/packages", packageHandler.ListPackages)

		cases.GET("/:case_id/quote-pdf", quoteHandler.DownloadQuotePDF)
		cases.POST("/:case_id/quote-email", quoteHandler.EmailQuote)
	}
}
