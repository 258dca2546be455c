package routes

import (
	"cuidandote_presupuestos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPresupuestos = "/presupuestos"
	PathHealth       = "/health"
)

func addPresupuestoRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, healthHandler *handlers.HealthHandler) {
	presupuestos := rg.Group(PathPresupuestos)
	{
		presupuestos.POST("", quoteHandler.CreateQuote)
		presupuestos.GET("/:token", quoteHandler.GetQuote)
		presupuestos.POST("/:token/uso", quoteHandler.MarkQuoteUsed)
	}

	rg.GET(PathHealth, healthHandler.Health)
}
