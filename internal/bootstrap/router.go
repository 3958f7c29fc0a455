package bootstrap

import (
	httpapi "github.com/cloudkitchen-sh/bizplan-backend/internal/api/http"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/api/http/middleware"
	bphttp "github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/http"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	SeedPerMin  int
	SeedBurst   int
	Service     *service.BusinessPlanService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	// a nil *BusinessPlanService must not become a non-nil Pinger
	var pinger httpapi.Pinger
	if dep.Service != nil {
		pinger = dep.Service
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger)
	healthHandler.RegisterRoutes(r)

	if dep.Service != nil {
		api := r.Group("/api")
		bp := api.Group("/business-plan")
		bphttp.New(dep.Service).Register(bp, middleware.RateLimit(dep.SeedPerMin, dep.SeedBurst))
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
