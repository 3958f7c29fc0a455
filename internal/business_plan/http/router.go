package http

import "github.com/gin-gonic/gin"

// Register registers the business plan routes. Extra handlers run before
// the seed endpoint only.
func (h *Handler) Register(rg *gin.RouterGroup, seedMiddleware ...gin.HandlerFunc) {
	rg.GET("/sections", h.ListSections)
	rg.GET("/overview", h.GetOverview)
	rg.GET("/market-analysis", h.GetMarketAnalysis)
	rg.GET("/financial", h.GetFinancial)
	rg.GET("/menu", h.GetMenu)
	rg.GET("/locations", h.GetLocations)
	rg.GET("/investment", h.GetInvestment)

	seed := append(append([]gin.HandlerFunc{}, seedMiddleware...), h.Seed)
	rg.POST("/seed", seed...)
}
