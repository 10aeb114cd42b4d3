package application

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-employee-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-employee-auth/internal/domain/repository"
	"github.com/oksasatya/go-employee-auth/pkg/validation"
)

type EmployeeService struct {
	Repo   repo.EmployeeRepository
	Logger logrus.FieldLogger
}

func NewEmployeeService(employees repo.EmployeeRepository, logger logrus.FieldLogger) *EmployeeService {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &EmployeeService{Repo: employees, Logger: logger}
}

type EmployeeInput struct {
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
	Position  string `json:"position" validate:"notblank"`
}

func (in EmployeeInput) validate() error {
	if err := validation.Struct(in); err != nil {
		return Validation(MsgEmployeeFieldsRequired, validation.ToDetails(err))
	}
	return nil
}

func (s *EmployeeService) Create(ctx context.Context, in EmployeeInput) (*entity.Employee, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	e := &entity.Employee{FirstName: in.FirstName, LastName: in.LastName, Position: in.Position}
	if err := s.Repo.Create(ctx, e); err != nil {
		s.Logger.WithError(err).Error("create employee failed")
		return nil, Internal(MsgEmployeeInsertFailed, err)
	}
	return e, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]entity.Employee, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		s.Logger.WithError(err).Error("list employees failed")
		return nil, Internal(MsgEmployeeFetchFailed, err)
	}
	return list, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*entity.Employee, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupErr(err, MsgEmployeeFetchFailed, id)
	}
	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, in EmployeeInput) (*entity.Employee, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	e := &entity.Employee{ID: id, FirstName: in.FirstName, LastName: in.LastName, Position: in.Position}
	if err := s.Repo.Update(ctx, e); err != nil {
		return nil, s.mapLookupErr(err, MsgEmployeeUpdateFailed, id)
	}
	s.Logger.WithField("employee_id", id).Info("employee updated")
	return e, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return s.mapLookupErr(err, MsgEmployeeDeleteFailed, id)
	}
	s.Logger.WithField("employee_id", id).Info("employee deleted")
	return nil
}

func (s *EmployeeService) mapLookupErr(err error, internalMsg string, id int64) error {
	if errors.Is(err, repo.ErrNotFound) {
		return NotFound(MsgEmployeeNotFound)
	}
	s.Logger.WithError(err).WithField("employee_id", id).Error(internalMsg)
	return Internal(internalMsg, err)
}
