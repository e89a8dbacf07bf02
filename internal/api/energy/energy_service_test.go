package energy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

var _ Repository = (*MockRepository)(nil)

func (m *MockRepository) one(args mock.Arguments) (*types.EnergyGeneration, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.EnergyGeneration), args.Error(1)
}

func (m *MockRepository) CreateGeneration(ctx context.Context, params types.CreateEnergyGenerationParams) (*types.EnergyGeneration, error) {
	return m.one(m.Called(ctx, params))
}

func (m *MockRepository) ListGeneration(ctx context.Context, filter types.GenerationFilter, page types.Pagination) ([]types.EnergyGeneration, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.EnergyGeneration), args.Error(1)
}

func (m *MockRepository) GetGeneration(ctx context.Context, id int64) (*types.EnergyGeneration, error) {
	return m.one(m.Called(ctx, id))
}

func (m *MockRepository) UpdateGeneration(ctx context.Context, id int64, params types.UpdateEnergyGenerationParams) (*types.EnergyGeneration, error) {
	return m.one(m.Called(ctx, id, params))
}

func (m *MockRepository) DeleteGeneration(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestServiceImpl_CreateGeneration(t *testing.T) {
	ctx := context.Background()
	params := types.CreateEnergyGenerationParams{PanelID: ptr(int64(4)), Timestamp: time.Now().UTC()}

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateGeneration", mock.Anything, params).Return(&types.EnergyGeneration{GenerationID: 9}, nil).Once()

		g, err := NewService(repo, testLogger).CreateGeneration(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(9), g.GenerationID)
		repo.AssertExpectations(t)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateGeneration", mock.Anything, params).Return(nil, types.ErrConflict).Once()

		_, err := NewService(repo, testLogger).CreateGeneration(ctx, params)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrConflict)
	})
}

func TestServiceImpl_NotFoundIsPreserved(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("GetGeneration", mock.Anything, int64(3)).Return(nil, types.ErrNotFound).Once()
	repo.On("UpdateGeneration", mock.Anything, int64(3), mock.Anything).Return(nil, types.ErrNotFound).Once()
	repo.On("DeleteGeneration", mock.Anything, int64(3)).Return(types.ErrNotFound).Once()
	repo.On("ListGeneration", mock.Anything, types.GenerationFilter{}, types.Pagination{Limit: 10}).Return(nil, errors.New("boom")).Once()

	svc := NewService(repo, testLogger)
	_, err := svc.GetGeneration(ctx, 3)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = svc.UpdateGeneration(ctx, 3, types.UpdateEnergyGenerationParams{})
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteGeneration(ctx, 3), types.ErrNotFound)
	_, err = svc.ListGeneration(ctx, types.GenerationFilter{}, types.Pagination{Limit: 10})
	assert.EqualError(t, err, "error listing energy generation: boom")
	repo.AssertExpectations(t)
}
