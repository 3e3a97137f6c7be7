package cart

import (
	"context"

	"storefront-be/internal/apperr"
	"storefront-be/internal/logger"
	"storefront-be/internal/product"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Service interface {
	AddProductToCart(ctx context.Context, userID, productID int64, quantity int) (CartDTO, error)
	GetAllCarts(ctx context.Context) ([]CartDTO, error)
	GetUserCart(ctx context.Context, email string) (CartDTO, error)
	UpdateProductQuantity(ctx context.Context, userID, productID int64, delta int) (CartDTO, error)
	DeleteProductFromCart(ctx context.Context, cartID, productID int64) (string, error)

	// Product-change propagation, consumed by the product service.
	SyncProductPrice(ctx context.Context, productID int64) error
	RemoveProductFromAllCarts(ctx context.Context, productID int64) error
}

var _ product.CartSyncer = Service(nil)

type service struct {
	repo     Repository
	products product.Repository
}

func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products}
}

func (s *service) AddProductToCart(ctx context.Context, userID, productID int64, quantity int) (CartDTO, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddProductToCart"),
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID),
	)

	c, err := s.cartFor(ctx, userID)
	if err != nil {
		return CartDTO{}, err
	}

	prod, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return CartDTO{}, err
	}
	if prod == nil {
		return CartDTO{}, apperr.NotFound("Product", "productId", productID)
	}

	item, err := s.repo.FindItem(ctx, c.ID, productID)
	if err != nil {
		return CartDTO{}, err
	}
	if item != nil {
		return CartDTO{}, apperr.Newf("Product %s already exists in the cart", prod.Name)
	}

	if prod.Quantity == 0 {
		return CartDTO{}, apperr.Newf("%s is not available", prod.Name)
	}
	if prod.Quantity < quantity {
		return CartDTO{}, apperr.Newf("Please, make an order of the %s less than or equal to the quantity %d.",
			prod.Name, prod.Quantity)
	}

	newTotal := c.TotalPrice + prod.SpecialPrice*float64(quantity)
	err = s.repo.AddItemTx(ctx, CartItem{
		CartID:       c.ID,
		ProductID:    productID,
		Quantity:     quantity,
		Discount:     prod.Discount,
		ProductPrice: prod.SpecialPrice,
	}, newTotal)
	if err != nil {
		// Two concurrent adds can both pass the FindItem check; the
		// unique constraint decides the loser.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return CartDTO{}, apperr.Newf("Product %s already exists in the cart", prod.Name)
		}
		log.Error("failed to add cart item", zap.Error(err))
		return CartDTO{}, err
	}

	return s.render(ctx, Cart{ID: c.ID, UserID: c.UserID, TotalPrice: newTotal})
}

// cartFor returns the user's cart, creating one lazily.
func (s *service) cartFor(ctx context.Context, userID int64) (Cart, error) {
	existing, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return Cart{}, err
	}
	if existing != nil {
		return *existing, nil
	}
	return s.repo.Create(ctx, userID)
}

func (s *service) GetAllCarts(ctx context.Context) ([]CartDTO, error) {
	carts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, apperr.New("No Carts Exists")
	}

	dtos := make([]CartDTO, 0, len(carts))
	for _, c := range carts {
		dto, err := s.render(ctx, c)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *service) GetUserCart(ctx context.Context, email string) (CartDTO, error) {
	c, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return CartDTO{}, err
	}
	if c == nil {
		return CartDTO{}, apperr.NotFound("Cart", "email", email)
	}
	return s.render(ctx, *c)
}

// UpdateProductQuantity applies a quantity delta to an existing line.
// The cart total moves by the current special price times the delta,
// so a price change since add-time leaves the stored snapshot and the
// total agreeing with each other going forward.
func (s *service) UpdateProductQuantity(ctx context.Context, userID, productID int64, delta int) (CartDTO, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProductQuantity"),
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID),
	)

	c, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return CartDTO{}, err
	}
	if c == nil {
		return CartDTO{}, apperr.NotFound("Cart", "userId", userID)
	}

	prod, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return CartDTO{}, err
	}
	if prod == nil {
		return CartDTO{}, apperr.NotFound("Product", "productId", productID)
	}

	if prod.Quantity == 0 {
		return CartDTO{}, apperr.Newf("%s is not available", prod.Name)
	}
	if prod.Quantity < delta {
		return CartDTO{}, apperr.Newf("Please, make an order of the %s less than or equal to the quantity %d.",
			prod.Name, prod.Quantity)
	}

	item, err := s.repo.FindItem(ctx, c.ID, productID)
	if err != nil {
		return CartDTO{}, err
	}
	if item == nil {
		return CartDTO{}, apperr.Newf("Product %s does not exist in the cart!!!", prod.Name)
	}

	newQuantity := item.Quantity + delta
	if newQuantity < 0 {
		return CartDTO{}, apperr.New("The Resulting quantity can not be negative")
	}

	var newTotal float64
	if newQuantity == 0 {
		newTotal = c.TotalPrice - item.ProductPrice*float64(item.Quantity)
		if err := s.repo.RemoveItemTx(ctx, c.ID, productID, newTotal); err != nil {
			log.Error("failed to remove cart item", zap.Error(err))
			return CartDTO{}, err
		}
	} else {
		item.Quantity = newQuantity
		item.Discount = prod.Discount
		item.ProductPrice = prod.SpecialPrice
		newTotal = c.TotalPrice + prod.SpecialPrice*float64(delta)
		if err := s.repo.UpdateItemTx(ctx, *item, newTotal); err != nil {
			log.Error("failed to update cart item", zap.Error(err))
			return CartDTO{}, err
		}
	}

	return s.render(ctx, Cart{ID: c.ID, UserID: c.UserID, TotalPrice: newTotal})
}

func (s *service) DeleteProductFromCart(ctx context.Context, cartID, productID int64) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteProductFromCart"),
		zap.Int64("cart_id", cartID),
		zap.Int64("product_id", productID),
	)

	c, err := s.repo.FindByID(ctx, cartID)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", apperr.NotFound("Cart", "cartId", cartID)
	}

	item, err := s.repo.FindItem(ctx, cartID, productID)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", apperr.Newf("Product %d not available in the cart!!!", productID)
	}

	newTotal := c.TotalPrice - item.ProductPrice*float64(item.Quantity)
	if err := s.repo.RemoveItemTx(ctx, cartID, productID, newTotal); err != nil {
		log.Error("failed to remove cart item", zap.Error(err))
		return "", err
	}

	return "Product " + item.Product.Name + " removed from cart!!!", nil
}

// SyncProductPrice refreshes the stored price snapshot in every cart
// holding the product: per cart, the old line contribution is swapped
// for the new one in the total.
func (s *service) SyncProductPrice(ctx context.Context, productID int64) error {
	prod, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if prod == nil {
		return apperr.NotFound("Product", "productId", productID)
	}

	carts, err := s.repo.FindCartsByProductID(ctx, productID)
	if err != nil {
		return err
	}

	for _, c := range carts {
		item, err := s.repo.FindItem(ctx, c.ID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			return apperr.Newf("Product %s not available in the cart!!!", prod.Name)
		}

		newTotal := c.TotalPrice -
			item.ProductPrice*float64(item.Quantity) +
			prod.SpecialPrice*float64(item.Quantity)

		item.ProductPrice = prod.SpecialPrice
		item.Discount = prod.Discount
		if err := s.repo.UpdateItemTx(ctx, *item, newTotal); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) RemoveProductFromAllCarts(ctx context.Context, productID int64) error {
	carts, err := s.repo.FindCartsByProductID(ctx, productID)
	if err != nil {
		return err
	}

	for _, c := range carts {
		item, err := s.repo.FindItem(ctx, c.ID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			continue
		}
		newTotal := c.TotalPrice - item.ProductPrice*float64(item.Quantity)
		if err := s.repo.RemoveItemTx(ctx, c.ID, productID, newTotal); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) render(ctx context.Context, c Cart) (CartDTO, error) {
	items, err := s.repo.FindItems(ctx, c.ID)
	if err != nil {
		return CartDTO{}, err
	}
	return ToDTO(c, items), nil
}
