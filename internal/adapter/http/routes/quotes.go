package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathQuotes    = "/quotes"
	PathEstimates = "/estimates"
	PathPrint     = "/print"
)

func addQuoteRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET(PathCatalog, h.Catalog.GetCatalog)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.Quote.StartSession)
		quotes.GET("/:session_id", h.Quote.GetQuote)
		quotes.PATCH("/:session_id/category", h.Quote.SetCategory)
		quotes.PATCH("/:session_id/plan", h.Quote.SetPlan)
		quotes.PATCH("/:session_id/attendees", h.Quote.SetAttendees)
		quotes.POST("/:session_id/options/:item_id/toggle", h.Quote.ToggleOption)
		quotes.PUT("/:session_id/grades/:item_id", h.Quote.SetGrade)
		quotes.PUT("/:session_id/free-inputs/:item_id", h.Quote.SetFreeInputValue)
		quotes.POST("/:session_id/estimates", h.Estimate.SaveEstimate)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("/:id", h.Estimate.GetEstimate)
		estimates.POST("/:id/session", h.Estimate.OpenInSession)
	}

	rg.GET(PathPrint, h.Print.GetPrintData)
	rg.PUT(PathPrint, h.Print.PutPrintData)
}
