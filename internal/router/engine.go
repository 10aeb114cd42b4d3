package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-employee-auth/internal/container"
	"github.com/oksasatya/go-employee-auth/internal/interface/middleware"
)

// NewEngine builds the gin engine with global middleware and every module mounted.
func NewEngine(c *container.Container) *gin.Engine {
	cfg := c.Config

	r := gin.New()
	r.Use(gin.Recovery())
	// CORS stays off until origins are configured; cors.New rejects an empty list
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.TokenHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	reg := NewRegistry(r)
	reg.Use(middleware.RequestID(), middleware.RealIP(cfg.TrustProxyHeaders))
	InitModules(reg, c)
	reg.RegisterAll()
	return reg.Engine
}
