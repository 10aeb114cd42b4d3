package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-employee-auth/internal/interface/http"
	"github.com/oksasatya/go-employee-auth/internal/interface/middleware"
)

// AuthModule wires the account endpoints under /api/auth.
// Public: POST /register, POST /login (rate limited per IP and route)
// Protected: GET /profile (x-auth-token)
type AuthModule struct {
	Handler       *handlers.AuthHandler
	Authn         middleware.Authenticator
	Redis         *redis.Client
	LoginLimit    int
	RegisterLimit int
}

func NewAuthModule(h *handlers.AuthHandler, authn middleware.Authenticator, rdb *redis.Client, loginLimit, registerLimit int) *AuthModule {
	return &AuthModule{Handler: h, Authn: authn, Redis: rdb, LoginLimit: loginLimit, RegisterLimit: registerLimit}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	registerLimiter := middleware.RateLimit(m.Redis, m.RegisterLimit, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(m.Redis, m.LoginLimit, time.Minute, middleware.KeyByIPAndPath())

	auth.POST("/register", registerLimiter, m.Handler.Register)
	auth.POST("/login", loginLimiter, m.Handler.Login)
	auth.GET("/profile", middleware.Auth(m.Authn), m.Handler.Profile)
}
