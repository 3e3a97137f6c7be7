package cart

import (
	"context"
	"testing"

	"storefront-be/internal/apperr"
	"storefront-be/internal/pagination"
	"storefront-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockRepository) FindByUserID(ctx context.Context, userID int64) (*Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*Cart, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Cart), args.Error(1)
}

func (m *MockRepository) FindCartsByProductID(ctx context.Context, productID int64) ([]Cart, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Cart), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, userID int64) (Cart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(Cart), args.Error(1)
}

func (m *MockRepository) FindItem(ctx context.Context, cartID, productID int64) (*CartItem, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartItem), args.Error(1)
}

func (m *MockRepository) FindItems(ctx context.Context, cartID int64) ([]CartItem, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CartItem), args.Error(1)
}

func (m *MockRepository) AddItemTx(ctx context.Context, item CartItem, newTotal float64) error {
	return m.Called(ctx, item, newTotal).Error(0)
}

func (m *MockRepository) UpdateItemTx(ctx context.Context, item CartItem, newTotal float64) error {
	return m.Called(ctx, item, newTotal).Error(0)
}

func (m *MockRepository) RemoveItemTx(ctx context.Context, cartID, productID int64, newTotal float64) error {
	return m.Called(ctx, cartID, productID, newTotal).Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindPage(ctx context.Context, p pagination.Params) ([]product.Product, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]product.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindPageByCategory(ctx context.Context, categoryID int64, p pagination.Params) ([]product.Product, int64, error) {
	args := m.Called(ctx, categoryID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]product.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindPageByKeyword(ctx context.Context, keyword string, p pagination.Params) ([]product.Product, int64, error) {
	args := m.Called(ctx, keyword, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]product.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsByNameInCategory(ctx context.Context, categoryID int64, name string) (bool, error) {
	args := m.Called(ctx, categoryID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Insert(ctx context.Context, prod product.Product) (product.Product, error) {
	args := m.Called(ctx, prod)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, prod product.Product) (product.Product, error) {
	args := m.Called(ctx, prod)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateImage(ctx context.Context, id int64, image string) (product.Product, error) {
	args := m.Called(ctx, id, image)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- Tests ---

func newTestService() (*MockRepository, *MockProductRepository, Service) {
	repo := new(MockRepository)
	products := new(MockProductRepository)
	return repo, products, NewService(repo, products)
}

func sampleProduct() *product.Product {
	return &product.Product{
		ID: 1, Name: "Keyboard", Description: "Mechanical keyboard",
		Image: "default.png", Quantity: 10, Price: 100.0, Discount: 25.0,
		SpecialPrice: 75.0, CategoryID: 1, SellerID: 1,
	}
}

func TestService_AddProductToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates cart lazily and snapshots prices", func(t *testing.T) {
		repo, products, svc := newTestService()

		repo.On("FindByUserID", ctx, int64(1)).Return(nil, nil)
		repo.On("Create", ctx, int64(1)).Return(Cart{ID: 5, UserID: 1, TotalPrice: 0}, nil)
		products.On("FindByID", ctx, int64(1)).Return(sampleProduct(), nil)
		repo.On("FindItem", ctx, int64(5), int64(1)).Return(nil, nil)
		repo.On("AddItemTx", ctx, CartItem{
			CartID: 5, ProductID: 1, Quantity: 2, Discount: 25.0, ProductPrice: 75.0,
		}, 150.0).Return(nil)
		repo.On("FindItems", ctx, int64(5)).Return([]CartItem{
			{CartID: 5, ProductID: 1, Quantity: 2, ProductPrice: 75.0, Product: *sampleProduct()},
		}, nil)

		dto, err := svc.AddProductToCart(ctx, 1, 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, 150.0, dto.TotalPrice)
		assert.Equal(t, 2, dto.Products[0].Quantity)
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate line", func(t *testing.T) {
		repo, products, svc := newTestService()

		repo.On("FindByUserID", ctx, int64(1)).Return(&Cart{ID: 5, UserID: 1}, nil)
		products.On("FindByID", ctx, int64(1)).Return(sampleProduct(), nil)
		repo.On("FindItem", ctx, int64(5), int64(1)).Return(&CartItem{CartID: 5, ProductID: 1}, nil)

		_, err := svc.AddProductToCart(ctx, 1, 1, 2)
		assert.EqualError(t, err, "Product Keyboard already exists in the cart")
		repo.AssertNotCalled(t, "AddItemTx")
	})

	t.Run("Out of stock", func(t *testing.T) {
		repo, products, svc := newTestService()

		repo.On("FindByUserID", ctx, int64(1)).Return(&Cart{ID: 5, UserID: 1}, nil)
		empty := sampleProduct()
		empty.Quantity = 0
		products.On("FindByID", ctx, int64(1)).Return(empty, nil)
		repo.On("FindItem", ctx, int64(5), int64(1)).Return(nil, nil)

		_, err := svc.AddProductToCart(ctx, 1, 1, 1)
		assert.EqualError(t, err, "Keyboard is not available")
	})

	t.Run("Insufficient stock", func(t *testing.T) {
		repo, products, svc := newTestService()

		repo.On("FindByUserID", ctx, int64(1)).Return(&Cart{ID: 5, UserID: 1}, nil)
		products.On("FindByID", ctx, int64(1)).Return(sampleProduct(), nil)
		repo.On("FindItem", ctx, int64(5), int64(1)).Return(nil, nil)

		_, err := svc.AddProductToCart(ctx, 1, 1, 11)
		assert.EqualError(t, err, "Please, make an order of the Keyboard less than or equal to the quantity 10.")
	})
}

func TestService_GetAllCarts_EmptyIsError(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := newTestService()

	repo.On("FindAll", ctx).Return([]Cart{}, nil)

	_, err := svc.GetAllCarts(ctx)
	assert.EqualError(t, err, "No Carts Exists")
	assert.True(t, apperr.IsAPIError(err))
}

func TestService_GetUserCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo, _, svc := newTestService()

		repo.On("FindByEmail", ctx, "buyer@example.com").
			Return(&Cart{ID: 5, UserID: 1, TotalPrice: 150.0}, nil)
		repo.On("FindItems", ctx, int64(5)).Return([]CartItem{
			{CartID: 5, ProductID: 1, Quantity: 2, Product: *sampleProduct()},
		}, nil)

		dto, err := svc.GetUserCart(ctx, "buyer@example.com")
		assert.NoError(t, err)
		assert.Equal(t, int64(5), dto.CartID)
		assert.Len(t, dto.Products, 1)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, _, svc := newTestService()

		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		_, err := svc.GetUserCart(ctx, "ghost@example.com")
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_UpdateProductQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Increment refreshes snapshot and total", func(t *testing.T) {
		repo, products, svc := newTestService()

		repo.On("FindByUserID", ctx, int64(1)).Return(&Cart{ID: 5, UserID: 1, TotalPrice: 150.0}, nil)
		products.On("FindByID", ctx, int64(1)).Return(sampleProduct(), nil)
		repo.On("FindItem", ctx, int64(5), int64(1)).
			Return(&CartItem{CartID: 5, ProductID: 1, Quantity: 2, ProductPrice: 75.0}, nil)
		repo.On("UpdateItemTx", ctx, mock.MatchedBy(func(item CartItem) bool {
			return item.Quantity == 3 && item.ProductPrice == 75.0
		}), 225.0).Return(nil)
		repo.On("FindItems", ctx, int64(5)).Return([]CartItem{}, nil)

		dto, err := svc.UpdateProductQuantity(ctx, 1, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, 225.0, dto.TotalPrice)
	})

	t.Run("Decrement to zero removes the line", func(t *testing.T) {
		repo, products, svc := newTestService()

		repo.On("FindByUserID", ctx, int64(1)).Return(&Cart{ID: 5, UserID: 1, TotalPrice: 75.0}, nil)
		products.On("FindByID", ctx, int64(1)).Return(sampleProduct(), nil)
		repo.On("FindItem", ctx, int64(5), int64(1)).
			Return(&CartItem{CartID: 5, ProductID: 1, Quantity: 1, ProductPrice: 75.0}, nil)
		repo.On("RemoveItemTx", ctx, int64(5), int64(1), 0.0).Return(nil)
		repo.On("FindItems", ctx, int64(5)).Return([]CartItem{}, nil)

		dto, err := svc.UpdateProductQuantity(ctx, 1, 1, -1)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, dto.TotalPrice)
		repo.AssertCalled(t, "RemoveItemTx", ctx, int64(5), int64(1), 0.0)
	})

	t.Run("Negative result rejected", func(t *testing.T) {
		repo, products, svc := newTestService()

		repo.On("FindByUserID", ctx, int64(1)).Return(&Cart{ID: 5, UserID: 1}, nil)
		products.On("FindByID", ctx, int64(1)).Return(sampleProduct(), nil)
		repo.On("FindItem", ctx, int64(5), int64(1)).
			Return(&CartItem{CartID: 5, ProductID: 1, Quantity: 0}, nil)

		_, err := svc.UpdateProductQuantity(ctx, 1, 1, -1)
		assert.EqualError(t, err, "The Resulting quantity can not be negative")
	})

	t.Run("Item not in cart", func(t *testing.T) {
		repo, products, svc := newTestService()

		repo.On("FindByUserID", ctx, int64(1)).Return(&Cart{ID: 5, UserID: 1}, nil)
		products.On("FindByID", ctx, int64(1)).Return(sampleProduct(), nil)
		repo.On("FindItem", ctx, int64(5), int64(1)).Return(nil, nil)

		_, err := svc.UpdateProductQuantity(ctx, 1, 1, 1)
		assert.EqualError(t, err, "Product Keyboard does not exist in the cart!!!")
	})
}

func TestService_DeleteProductFromCart(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := newTestService()

	repo.On("FindByID", ctx, int64(5)).Return(&Cart{ID: 5, UserID: 1, TotalPrice: 150.0}, nil)
	repo.On("FindItem", ctx, int64(5), int64(1)).Return(&CartItem{
		CartID: 5, ProductID: 1, Quantity: 2, ProductPrice: 75.0, Product: *sampleProduct(),
	}, nil)
	repo.On("RemoveItemTx", ctx, int64(5), int64(1), 0.0).Return(nil)

	msg, err := svc.DeleteProductFromCart(ctx, 5, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Product Keyboard removed from cart!!!", msg)
}

func TestService_SyncProductPrice(t *testing.T) {
	ctx := context.Background()
	repo, products, svc := newTestService()

	updated := sampleProduct()
	updated.SpecialPrice = 100.0

	products.On("FindByID", ctx, int64(1)).Return(updated, nil)
	repo.On("FindCartsByProductID", ctx, int64(1)).
		Return([]Cart{{ID: 5, UserID: 1, TotalPrice: 150.0}}, nil)
	repo.On("FindItem", ctx, int64(5), int64(1)).
		Return(&CartItem{CartID: 5, ProductID: 1, Quantity: 2, ProductPrice: 75.0}, nil)
	// 150 - 75*2 + 100*2 = 200
	repo.On("UpdateItemTx", ctx, mock.MatchedBy(func(item CartItem) bool {
		return item.ProductPrice == 100.0
	}), 200.0).Return(nil)

	assert.NoError(t, svc.SyncProductPrice(ctx, 1))
	repo.AssertExpectations(t)
}

func TestService_RemoveProductFromAllCarts(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := newTestService()

	repo.On("FindCartsByProductID", ctx, int64(1)).
		Return([]Cart{{ID: 5, TotalPrice: 150.0}, {ID: 6, TotalPrice: 75.0}}, nil)
	repo.On("FindItem", ctx, int64(5), int64(1)).
		Return(&CartItem{CartID: 5, ProductID: 1, Quantity: 2, ProductPrice: 75.0}, nil)
	repo.On("FindItem", ctx, int64(6), int64(1)).
		Return(&CartItem{CartID: 6, ProductID: 1, Quantity: 1, ProductPrice: 75.0}, nil)
	repo.On("RemoveItemTx", ctx, int64(5), int64(1), 0.0).Return(nil)
	repo.On("RemoveItemTx", ctx, int64(6), int64(1), 0.0).Return(nil)

	assert.NoError(t, svc.RemoveProductFromAllCarts(ctx, 1))
	repo.AssertExpectations(t)
}
