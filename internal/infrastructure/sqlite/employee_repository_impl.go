package sqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/oksasatya/go-employee-auth/internal/domain/entity"
	"github.com/oksasatya/go-employee-auth/internal/domain/repository"
)

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (first_name, last_name, position)
		VALUES (?, ?, ?)
	`, e.FirstName, e.LastName, e.Position)
	if err != nil {
		return errors.Wrap(err, "insert employee")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "last insert id")
	}
	e.ID = id
	return nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, position
		FROM employees
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "list employees")
	}
	defer func() { _ = rows.Close() }()

	out := make([]entity.Employee, 0)
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position); err != nil {
			return nil, errors.Wrap(err, "scan employee")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate employees")
	}
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	e := &entity.Employee{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, position
		FROM employees
		WHERE id = ?
	`, id).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrap(err, "get employee")
	}
	return e, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *entity.Employee) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET first_name = ?, last_name = ?, position = ?
		WHERE id = ?
	`, e.FirstName, e.LastName, e.Position, e.ID)
	if err != nil {
		return errors.Wrap(err, "update employee")
	}
	return requireAffected(res)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete employee")
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)
