package router

import (
	"github.com/oksasatya/go-employee-auth/internal/container"
	handlers "github.com/oksasatya/go-employee-auth/internal/interface/http"
	"github.com/oksasatya/go-employee-auth/internal/router/modules"
)

// InitModules builds services and handlers from c and adds their modules to r.
// Call RegisterAll afterwards to mount them.
func InitModules(r *Registry, c *container.Container) {
	cfg := c.Config
	authSvc := c.AuthService()
	employeeSvc := c.EmployeeService()

	authHandler := handlers.NewAuthHandler(authSvc, authSvc.Logger)
	employeeHandler := handlers.NewEmployeeHandler(employeeSvc, employeeSvc.Logger)

	r.Add(modules.NewAuthModule(authHandler, authSvc, c.Redis, cfg.RateLimitLogin, cfg.RateLimitRegister))
	r.Add(modules.NewEmployeeModule(employeeHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}
