package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-employee-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-employee-auth/internal/domain/repository"
)

type memEmployees struct {
	rows   map[int64]entity.Employee
	nextID int64
	err    error
}

func newMemEmployees() *memEmployees {
	return &memEmployees{rows: map[int64]entity.Employee{}}
}

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	e.ID = m.nextID
	m.rows[e.ID] = *e
	return nil
}

func (m *memEmployees) List(context.Context) ([]entity.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]entity.Employee, 0, len(m.rows))
	for i := int64(1); i <= m.nextID; i++ {
		if e, ok := m.rows[i]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEmployees) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &e, nil
}

func (m *memEmployees) Update(_ context.Context, e *entity.Employee) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[e.ID]; !ok {
		return repo.ErrNotFound
	}
	m.rows[e.ID] = *e
	return nil
}

func (m *memEmployees) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func TestEmployeeService_CRUD(t *testing.T) {
	s := NewEmployeeService(newMemEmployees(), nil)
	ctx := context.Background()

	e, err := s.Create(ctx, EmployeeInput{FirstName: "John", LastName: "Doe", Position: "Software Engineer"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.ID)

	got, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)

	updated, err := s.Update(ctx, e.ID, EmployeeInput{FirstName: "John", LastName: "Doe", Position: "Senior Software Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Senior Software Engineer", updated.Position)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Senior Software Engineer", list[0].Position)

	require.NoError(t, s.Delete(ctx, e.ID))
	_, err = s.Get(ctx, e.ID)
	requireKind(t, err, KindNotFound, http.StatusNotFound, MsgEmployeeNotFound)
}

func TestEmployeeService_RequiredFields(t *testing.T) {
	s := NewEmployeeService(newMemEmployees(), nil)
	ctx := context.Background()

	_, err := s.Create(ctx, EmployeeInput{FirstName: "John", Position: "x"})
	requireKind(t, err, KindValidation, http.StatusBadRequest, MsgEmployeeFieldsRequired)

	_, err = s.Update(ctx, 1, EmployeeInput{LastName: "Doe"})
	requireKind(t, err, KindValidation, http.StatusBadRequest, MsgEmployeeFieldsRequired)

	_, err = s.Create(ctx, EmployeeInput{FirstName: "John", LastName: " ", Position: "x"})
	requireKind(t, err, KindValidation, http.StatusBadRequest, MsgEmployeeFieldsRequired)
}

func TestEmployeeService_MissingID(t *testing.T) {
	s := NewEmployeeService(newMemEmployees(), nil)
	ctx := context.Background()

	_, err := s.Update(ctx, 7, EmployeeInput{FirstName: "a", LastName: "b", Position: "c"})
	requireKind(t, err, KindNotFound, http.StatusNotFound, MsgEmployeeNotFound)

	err = s.Delete(ctx, 7)
	requireKind(t, err, KindNotFound, http.StatusNotFound, MsgEmployeeNotFound)
}

func TestEmployeeService_StoreErrors(t *testing.T) {
	m := newMemEmployees()
	m.err = errors.New("database is locked")
	s := NewEmployeeService(m, nil)
	ctx := context.Background()
	in := EmployeeInput{FirstName: "a", LastName: "b", Position: "c"}

	_, err := s.Create(ctx, in)
	requireKind(t, err, KindInternal, http.StatusInternalServerError, MsgEmployeeInsertFailed)

	_, err = s.List(ctx)
	requireKind(t, err, KindInternal, http.StatusInternalServerError, MsgEmployeeFetchFailed)

	_, err = s.Get(ctx, 1)
	requireKind(t, err, KindInternal, http.StatusInternalServerError, MsgEmployeeFetchFailed)

	_, err = s.Update(ctx, 1, in)
	requireKind(t, err, KindInternal, http.StatusInternalServerError, MsgEmployeeUpdateFailed)

	err = s.Delete(ctx, 1)
	requireKind(t, err, KindInternal, http.StatusInternalServerError, MsgEmployeeDeleteFailed)
}
