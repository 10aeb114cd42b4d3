package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-employee-auth/internal/interface/http"
)

// EmployeeModule registers the employee CRUD routes under /api/employees.
// They are not behind the token gate.
type EmployeeModule struct {
	Handler *handlers.EmployeeHandler
}

func NewEmployeeModule(h *handlers.EmployeeHandler) *EmployeeModule {
	return &EmployeeModule{Handler: h}
}

func (m *EmployeeModule) Register(rg *gin.RouterGroup) {
	emp := rg.Group("/employees")
	emp.POST("", m.Handler.Create)
	emp.GET("", m.Handler.List)
	emp.GET("/:id", m.Handler.Get)
	emp.PUT("/:id", m.Handler.Update)
	emp.DELETE("/:id", m.Handler.Delete)
}
