package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/oksasatya/go-employee-auth/internal/domain/entity"
	"github.com/oksasatya/go-employee-auth/internal/domain/repository"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO employees (first_name, last_name, position)
		VALUES ($1, $2, $3)
		RETURNING id
	`, e.FirstName, e.LastName, e.Position).Scan(&e.ID)
	return errors.Wrap(err, "insert employee")
}

func (r *EmployeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, position
		FROM employees
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "list employees")
	}
	defer rows.Close()

	out := make([]entity.Employee, 0)
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position); err != nil {
			return nil, errors.Wrap(err, "scan employee")
		}
		out = append(out, e)
	}
	return out, errors.Wrap(rows.Err(), "iterate employees")
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	e := &entity.Employee{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, position
		FROM employees
		WHERE id = $1
	`, id).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrap(err, "get employee")
	}
	return e, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *entity.Employee) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE employees
		SET first_name = $1, last_name = $2, position = $3
		WHERE id = $4
	`, e.FirstName, e.LastName, e.Position, e.ID)
	if err != nil {
		return errors.Wrap(err, "update employee")
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete employee")
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)
