package routes

import (
	"cotacao_ia/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/cotacao"
	PathLead   = "/lead"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	rg.POST(PathQuotes, quoteHandler.GetQuotes)
	rg.POST(PathLead, quoteHandler.RegisterInterest)
}
