package plan

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"gymcore/internal/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error) {
	args := m.Called(ctx, gymID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, gymID, id int) (*Plan, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, gymID int, includeInactive bool) ([]Plan, error) {
	args := m.Called(ctx, gymID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Plan), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, gymID, id int, req UpdatePlanRequest) (*Plan, error) {
	args := m.Called(ctx, gymID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, gymID, id int) (bool, error) {
	args := m.Called(ctx, gymID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ToggleStatus(ctx context.Context, gymID, id int) (*Plan, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func TestGetPlan(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, 7, 1).Return(&Plan{ID: 1, GymID: 7}, nil)
	// план другого зала не виден
	repo.On("GetByID", mock.Anything, 8, 1).Return(nil, sql.ErrNoRows)
	svc := NewService(repo)

	p, err := svc.Get(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)

	_, err = svc.Get(context.Background(), 8, 1)
	assert.Equal(t, ErrPlanNotFound, err)
}

func TestCreatePlan(t *testing.T) {
	t.Run("Negative price", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := NewService(repo).Create(context.Background(), 7, CreatePlanRequest{
			Name: "Broken", Price: decimal.NewFromInt(-1), DurationDays: 30,
		})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Success", func(t *testing.T) {
		req := CreatePlanRequest{Name: "Monthly", Price: decimal.NewFromInt(35), DurationDays: 30}
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, 7, req).Return(&Plan{ID: 3, Name: "Monthly", IsActive: true}, nil)

		p, err := NewService(repo).Create(context.Background(), 7, req)
		require.NoError(t, err)
		assert.True(t, p.IsActive)
	})
}

func TestUpdatePlan(t *testing.T) {
	price := decimal.NewFromInt(-5)
	repo := new(MockRepository)
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 7, 1, UpdatePlanRequest{Price: &price})
	assert.Equal(t, ErrNegativePrice, err)

	repo.On("Update", mock.Anything, 7, 99, UpdatePlanRequest{}).Return(nil, sql.ErrNoRows)
	_, err = svc.Update(context.Background(), 7, 99, UpdatePlanRequest{})
	assert.Equal(t, ErrPlanNotFound, err)
}

func TestDeletePlan(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Delete", mock.Anything, 7, 1).Return(true, nil)
	repo.On("Delete", mock.Anything, 7, 2).Return(false, nil)
	svc := NewService(repo)

	assert.NoError(t, svc.Delete(context.Background(), 7, 1))
	assert.Equal(t, ErrPlanNotFound, svc.Delete(context.Background(), 7, 2))
}

func TestToggleStatusPlan(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ToggleStatus", mock.Anything, 7, 1).Return(&Plan{ID: 1, IsActive: false}, nil)

	p, err := NewService(repo).ToggleStatus(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.False(t, p.IsActive)
}
