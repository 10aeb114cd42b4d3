package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-employee-auth/internal/application"
	"github.com/oksasatya/go-employee-auth/internal/domain/entity"
	"github.com/oksasatya/go-employee-auth/pkg/helpers"
	"github.com/oksasatya/go-employee-auth/pkg/response"
)

type EmployeeHandler struct {
	Svc    *application.EmployeeService
	Logger logrus.FieldLogger
}

func NewEmployeeHandler(svc *application.EmployeeService, logger logrus.FieldLogger) *EmployeeHandler {
	return &EmployeeHandler{Svc: svc, Logger: logger}
}

type employeeView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position"`
}

type employeeUpdatedResponse struct {
	Message string `json:"message"`
	employeeView
}

func toEmployeeView(e *entity.Employee) employeeView {
	return employeeView{ID: e.ID, FirstName: e.FirstName, LastName: e.LastName, Position: e.Position}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req application.EmployeeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, application.MsgEmployeeFieldsRequired)
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEmployeeView(e))
}

func (h *EmployeeHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]employeeView, 0, len(list))
	for i := range list {
		out = append(out, toEmployeeView(&list[i]))
	}
	response.Data(c, http.StatusOK, out)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	e, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, toEmployeeView(e))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req application.EmployeeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, application.MsgEmployeeFieldsRequired)
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, employeeUpdatedResponse{Message: application.MsgEmployeeUpdated, employeeView: toEmployeeView(e)})
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, application.MsgEmployeeDeleted)
}

func (h *EmployeeHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Message(c, http.StatusBadRequest, application.MsgEmployeeInvalidID)
		return 0, false
	}
	return id, true
}

func (h *EmployeeHandler) fail(c *gin.Context, err error) {
	ae := application.AsAppError(err)
	if ae.Kind == application.KindInternal {
		helpers.LogError(h.Logger, "employee request failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
	}
	response.Message(c, ae.Status, ae.Message)
}
