package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/logging"
	"github.com/gin-gonic/gin"
)

const (
	msgNotFound      = "Business plan not found"
	msgInternalError = "Internal server error"
	msgSeedFailed    = "Failed to seed business plan data"
)

// respond writes a section projection or translates err into the uniform
// error body. Store details are logged, never returned.
func respond[T any](c *gin.Context, op string, fetch func(ctx context.Context) (T, error)) {
	out, err := fetch(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, msgNotFound)
			return
		}
		logging.NewLogger(c.Request.Context()).LogError(op, err)
		abortWithError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetOverview returns company info and the executive summary
func (h *Handler) GetOverview(c *gin.Context) {
	respond(c, "get overview", h.svc.Overview)
}

// GetMarketAnalysis returns market sizing and growth trends
func (h *Handler) GetMarketAnalysis(c *gin.Context) {
	respond(c, "get market analysis", h.svc.MarketAnalysis)
}

// GetFinancial returns financial projections and investment breakdown
func (h *Handler) GetFinancial(c *gin.Context) {
	respond(c, "get financial", h.svc.Financial)
}

func (h *Handler) GetMenu(c *gin.Context) {
	respond(c, "get menu", h.svc.Menu)
}

func (h *Handler) GetLocations(c *gin.Context) {
	respond(c, "get locations", h.svc.Locations)
}

// GetInvestment returns the investment ask and ROI projections
func (h *Handler) GetInvestment(c *gin.Context) {
	respond(c, "get investment", h.svc.Investment)
}

// ListSections returns the section catalog used for navigation
func (h *Handler) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": domain.Sections()})
}

// Seed populates an empty store with the configured business plan
func (h *Handler) Seed(c *gin.Context) {
	log := logging.NewLogger(c.Request.Context())

	res, err := h.svc.Seed(c.Request.Context())
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			log.LogWarn("seed", rejectedPayload(ve))
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
				Status: http.StatusUnprocessableEntity,
				Error:  ve.Error(),
				Field:  ve.Field,
			})
			return
		}
		log.LogError("seed", err)
		abortWithError(c, http.StatusInternalServerError, msgSeedFailed)
		return
	}

	if res.InsertedID != "" {
		log.LogInfo("seed", "business plan seeded with id "+res.InsertedID)
	}
	c.JSON(http.StatusOK, res)
}

// rejectedPayload describes a validation failure for the log, including the
// decoder detail that is withheld from the response.
func rejectedPayload(ve *domain.ValidationError) string {
	if ve.Err != nil {
		return fmt.Sprintf("rejected payload: %s (%v)", ve.Error(), ve.Err)
	}
	return "rejected payload: " + ve.Error()
}
