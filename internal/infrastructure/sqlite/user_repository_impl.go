package sqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/oksasatya/go-employee-auth/internal/domain/entity"
	"github.com/oksasatya/go-employee-auth/internal/domain/repository"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, username, email, password
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1
	`, email, username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, username, email, password
		FROM users
		WHERE email = ?
	`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, username, email, password
		FROM users
		WHERE id = ?
	`, id)
}

func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, email, password)
		VALUES (?, ?, ?)
	`, username, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrConflict
		}
		return 0, errors.Wrap(err, "insert user")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "last insert id")
	}
	return id, nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	u := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrap(err, "query user")
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
