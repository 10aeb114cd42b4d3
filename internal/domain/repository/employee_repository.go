package repository

import (
	"context"

	"github.com/oksasatya/go-employee-auth/internal/domain/entity"
)

// EmployeeRepository defines persistence for employee records.
// GetByID, Update and Delete return ErrNotFound when the id does not exist.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	List(ctx context.Context) ([]entity.Employee, error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id int64) error
}
