package http

import (
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/service"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for business plan sections
type Handler struct {
	svc *service.BusinessPlanService
}

// New creates a new Handler
func New(svc *service.BusinessPlanService) *Handler {
	return &Handler{svc: svc}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Status: status, Error: msg})
}
