package category

import (
	"context"
	"testing"

	"storefront-be/internal/apperr"
	"storefront-be/internal/pagination"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindPage(ctx context.Context, p pagination.Params) ([]Category, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) FindByName(ctx context.Context, name string) (*Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, name string) (Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(Category), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, name string) (Category, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(Category), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- Tests ---

func defaultParams() pagination.Params {
	return pagination.Params{
		PageNumber: pagination.DefaultPageNumber,
		PageSize:   pagination.DefaultPageSize,
		SortBy:     "categoryId",
		SortOrder:  pagination.DefaultSortOrder,
	}
}

func TestService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns page", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindPage", ctx, defaultParams()).
			Return([]Category{{ID: 1, Name: "Electronics"}}, int64(1), nil)

		page, err := svc.GetAll(ctx, defaultParams())
		assert.NoError(t, err)
		assert.Equal(t, int64(1), page.TotalElements)
		assert.Equal(t, "Electronics", page.Content[0].CategoryName)
	})

	t.Run("Empty catalog is an empty page", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindPage", ctx, defaultParams()).
			Return([]Category{}, int64(0), nil)

		page, err := svc.GetAll(ctx, defaultParams())
		assert.NoError(t, err)
		assert.NotNil(t, page.Content)
		assert.Empty(t, page.Content)
		assert.True(t, page.LastPage)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByName", ctx, "Electronics").Return(nil, nil)
		mockRepo.On("Insert", ctx, "Electronics").Return(Category{ID: 1, Name: "Electronics"}, nil)

		dto, err := svc.Create(ctx, "Electronics")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), dto.CategoryID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByName", ctx, "Electronics").
			Return(&Category{ID: 1, Name: "Electronics"}, nil)

		_, err := svc.Create(ctx, "Electronics")
		assert.True(t, apperr.IsAPIError(err))
		assert.EqualError(t, err, "Category with the name Electronics already exists")
		mockRepo.AssertNotCalled(t, "Insert")
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, int64(1)).Return(&Category{ID: 1, Name: "Electronics"}, nil)
		mockRepo.On("Update", ctx, int64(1), "Gadgets").Return(Category{ID: 1, Name: "Gadgets"}, nil)

		dto, err := svc.Update(ctx, 1, "Gadgets")
		assert.NoError(t, err)
		assert.Equal(t, "Gadgets", dto.CategoryName)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, int64(99)).Return(nil, nil)

		_, err := svc.Update(ctx, 99, "Gadgets")
		assert.True(t, apperr.IsNotFound(err))
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, int64(1)).Return(&Category{ID: 1, Name: "Electronics"}, nil)
		mockRepo.On("Delete", ctx, int64(1)).Return(nil)

		dto, err := svc.Delete(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Electronics", dto.CategoryName)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, int64(99)).Return(nil, nil)

		_, err := svc.Delete(ctx, 99)
		assert.True(t, apperr.IsNotFound(err))
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Category still referenced", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, int64(1)).Return(&Category{ID: 1, Name: "Electronics"}, nil)
		mockRepo.On("Delete", ctx, int64(1)).Return(&pq.Error{Code: "23503"})

		_, err := svc.Delete(ctx, 1)
		assert.True(t, apperr.IsAPIError(err))
	})
}
