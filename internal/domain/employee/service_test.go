package employee_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registry-hub/admin-api/internal/domain/employee"
	"registry-hub/admin-api/internal/utils/platformerrors"
)

// MockRepository implements employee.Repository for testing.
type MockRepository struct {
	ListFunc    func(ctx context.Context) ([]employee.Employee, error)
	GetByIDFunc func(ctx context.Context, id int64) (*employee.Employee, error)
	CreateFunc  func(ctx context.Context, fields employee.Fields) (*employee.Employee, error)
	UpdateFunc  func(ctx context.Context, id int64, fields employee.Fields) (*employee.Employee, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	createCalls int
	updateCalls int
}

func (m *MockRepository) List(ctx context.Context) ([]employee.Employee, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRepository) Create(ctx context.Context, fields employee.Fields) (*employee.Employee, error) {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fields)
	}
	return nil, nil
}

func (m *MockRepository) Update(ctx context.Context, id int64, fields employee.Fields) (*employee.Employee, error) {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func newService(repo *MockRepository) employee.Service {
	return employee.NewService(repo, zerolog.Nop())
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		fields employee.Fields
	}{
		{"missing name", employee.Fields{Role: "Dev"}},
		{"blank name", employee.Fields{Name: "   ", Role: "Dev"}},
		{"missing role", employee.Fields{Name: "Ana"}},
		{"blank role", employee.Fields{Name: "Ana", Role: "\t"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockRepository{}
			svc := newService(repo)

			_, err := svc.Create(context.Background(), tc.fields)

			require.Error(t, err)
			assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeValidation))
			assert.Zero(t, repo.createCalls, "no store call on validation failure")
		})
	}
}

func TestCreateTrimsAndDelegates(t *testing.T) {
	var got employee.Fields
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, fields employee.Fields) (*employee.Employee, error) {
			got = fields
			return &employee.Employee{ID: 1, Name: fields.Name, Role: fields.Role}, nil
		},
	}
	svc := newService(repo)

	created, err := svc.Create(context.Background(), employee.Fields{Name: "  Ana ", Role: " Dev "})

	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "Dev", got.Role)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateOptionalFieldsStayNil(t *testing.T) {
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, fields employee.Fields) (*employee.Employee, error) {
			assert.Nil(t, fields.Address)
			assert.Nil(t, fields.Age)
			return &employee.Employee{ID: 2, Name: fields.Name, Role: fields.Role}, nil
		},
	}
	svc := newService(repo)

	_, err := svc.Create(context.Background(), employee.Fields{Name: "Ana", Role: "Dev"})
	require.NoError(t, err)
}

func TestUpdateValidation(t *testing.T) {
	repo := &MockRepository{}
	svc := newService(repo)

	_, err := svc.Update(context.Background(), 1, employee.Fields{Name: "", Role: "Dev"})

	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeValidation))
	assert.Zero(t, repo.updateCalls)
}

func TestUpdatePropagatesNotFound(t *testing.T) {
	repo := &MockRepository{
		UpdateFunc: func(ctx context.Context, id int64, fields employee.Fields) (*employee.Employee, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound, "employee not found", nil, "test-001")
		},
	}
	svc := newService(repo)

	_, err := svc.Update(context.Background(), 99, employee.Fields{Name: "Ana", Role: "Dev"})

	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeNotFound))
}
