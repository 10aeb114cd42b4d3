package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-employee-auth/internal/application"
	"github.com/oksasatya/go-employee-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-employee-auth/internal/domain/repository"
	"github.com/oksasatya/go-employee-auth/internal/interface/middleware"
)

func init() { gin.SetMode(gin.TestMode) }

var errStoreDown = errors.New("disk I/O error")

type brokenEmployees struct{}

func (brokenEmployees) Create(context.Context, *entity.Employee) error { return errStoreDown }
func (brokenEmployees) List(context.Context) ([]entity.Employee, error) {
	return nil, errStoreDown
}
func (brokenEmployees) GetByID(context.Context, int64) (*entity.Employee, error) {
	return nil, errStoreDown
}
func (brokenEmployees) Update(context.Context, *entity.Employee) error { return errStoreDown }
func (brokenEmployees) Delete(context.Context, int64) error           { return errStoreDown }

type brokenUsers struct{}

func (brokenUsers) FindByEmailOrUsername(context.Context, string, string) (*entity.User, error) {
	return nil, errStoreDown
}
func (brokenUsers) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, errStoreDown
}
func (brokenUsers) FindByID(context.Context, int64) (*entity.User, error) {
	return nil, errStoreDown
}
func (brokenUsers) Create(context.Context, string, string, string) (int64, error) {
	return 0, errStoreDown
}

func TestEmployeeHandler_StoreFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	h := NewEmployeeHandler(application.NewEmployeeService(brokenEmployees{}, logger), logger)

	r := gin.New()
	r.GET("/employees", h.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Error fetching employees"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "disk I/O")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestAuthHandler_LoginStoreFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	svc := application.NewAuthService(brokenUsers{}, nil, nil, nil, logger)
	h := NewAuthHandler(svc, logger)

	r := gin.New()
	r.POST("/login", h.Login)

	body := bytes.NewBufferString(`{"email":"jdoe@email.com","password":"password"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Database error"}`, w.Body.String())
	for _, e := range hook.AllEntries() {
		assert.NotContains(t, e.Message, "password")
		for _, v := range e.Data {
			assert.NotEqual(t, "password", v)
		}
	}
}

func TestAuthHandler_ProfileWithoutGate(t *testing.T) {
	h := NewAuthHandler(application.NewAuthService(brokenUsers{}, nil, nil, nil, nil), nil)

	r := gin.New()
	r.GET("/profile", h.Profile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_ProfileUnknownUser(t *testing.T) {
	h := NewAuthHandler(application.NewAuthService(missingUsers{}, nil, nil, nil, nil), nil)

	r := gin.New()
	r.GET("/profile", func(c *gin.Context) {
		c.Set(middleware.CtxUserIDKey, int64(99))
		c.Next()
	}, h.Profile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"User not found"}`, w.Body.String())
}

type missingUsers struct{ brokenUsers }

func (missingUsers) FindByID(context.Context, int64) (*entity.User, error) {
	return nil, repo.ErrNotFound
}
