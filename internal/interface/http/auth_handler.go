package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-employee-auth/internal/application"
	"github.com/oksasatya/go-employee-auth/internal/interface/middleware"
	"github.com/oksasatya/go-employee-auth/pkg/helpers"
	"github.com/oksasatya/go-employee-auth/pkg/response"
	"github.com/oksasatya/go-employee-auth/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger logrus.FieldLogger
}

func NewAuthHandler(svc *application.AuthService, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req application.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, application.MsgInvalidPayload, validation.ToDetails(err))
		return
	}
	if _, err := h.Svc.Register(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	response.Msg(c, http.StatusCreated, application.MsgRegistered, nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req application.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, application.MsgInvalidPayload, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: res.Token})
}

// Profile GET /api/auth/profile (x-auth-token required)
func (h *AuthHandler) Profile(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, application.MsgNoToken, nil)
		return
	}
	p, err := h.Svc.Profile(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *AuthHandler) fail(c *gin.Context, err error) {
	ae := application.AsAppError(err)
	if ae.Kind == application.KindInternal {
		helpers.LogError(h.Logger, "auth request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		})
	}
	response.Msg(c, ae.Status, ae.Message, ae.Details)
}
