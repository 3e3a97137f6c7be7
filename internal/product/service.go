package product

import (
	"context"

	"storefront-be/internal/apperr"
	"storefront-be/internal/category"
	"storefront-be/internal/logger"
	"storefront-be/internal/pagination"

	"go.uber.org/zap"
)

// DefaultImage is attached to every product until an image reference
// is uploaded for it.
const DefaultImage = "default.png"

// CartSyncer propagates product changes into existing carts. It is
// implemented by the cart service; the indirection keeps the two
// packages from importing each other.
type CartSyncer interface {
	// SyncProductPrice refreshes the price snapshot of every cart line
	// holding the product and adjusts each cart's total.
	SyncProductPrice(ctx context.Context, productID int64) error
	// RemoveProductFromAllCarts drops the product's line from every
	// cart that holds it, adjusting totals.
	RemoveProductFromAllCarts(ctx context.Context, productID int64) error
}

type Service interface {
	Add(ctx context.Context, categoryID, sellerID int64, in ProductInput) (ProductDTO, error)
	GetAll(ctx context.Context, p pagination.Params) (pagination.Page[ProductDTO], error)
	GetByCategory(ctx context.Context, categoryID int64, p pagination.Params) (pagination.Page[ProductDTO], error)
	SearchByKeyword(ctx context.Context, keyword string, p pagination.Params) (pagination.Page[ProductDTO], error)
	Update(ctx context.Context, productID int64, in ProductInput) (ProductDTO, error)
	UpdateImage(ctx context.Context, productID int64, image string) (ProductDTO, error)
	Delete(ctx context.Context, productID int64) (ProductDTO, error)
}

type service struct {
	repo       Repository
	categories category.Repository
	carts      CartSyncer
}

func NewService(repo Repository, categories category.Repository, carts CartSyncer) Service {
	return &service{repo: repo, categories: categories, carts: carts}
}

func (s *service) Add(ctx context.Context, categoryID, sellerID int64, in ProductInput) (ProductDTO, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Add"),
		zap.Int64("category_id", categoryID),
	)

	cat, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return ProductDTO{}, err
	}
	if cat == nil {
		return ProductDTO{}, apperr.NotFound("Category", "categoryId", categoryID)
	}

	exists, err := s.repo.ExistsByNameInCategory(ctx, categoryID, in.ProductName)
	if err != nil {
		return ProductDTO{}, err
	}
	if exists {
		return ProductDTO{}, apperr.New("Product Already Exists")
	}

	created, err := s.repo.Insert(ctx, Product{
		Name:         in.ProductName,
		Description:  in.Description,
		Image:        DefaultImage,
		Quantity:     in.Quantity,
		Price:        in.Price,
		Discount:     in.Discount,
		SpecialPrice: SpecialPriceOf(in.Price, in.Discount),
		CategoryID:   categoryID,
		SellerID:     sellerID,
	})
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return ProductDTO{}, err
	}

	log.Info("product created", zap.Int64("product_id", created.ID))
	return ToDTO(created), nil
}

// GetAll never fails on an empty catalog; it returns an empty page.
func (s *service) GetAll(ctx context.Context, p pagination.Params) (pagination.Page[ProductDTO], error) {
	products, total, err := s.repo.FindPage(ctx, p)
	if err != nil {
		return pagination.Page[ProductDTO]{}, err
	}
	return pagination.NewPage(ToDTOs(products), p, total), nil
}

func (s *service) GetByCategory(ctx context.Context, categoryID int64, p pagination.Params) (pagination.Page[ProductDTO], error) {
	cat, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return pagination.Page[ProductDTO]{}, err
	}
	if cat == nil {
		return pagination.Page[ProductDTO]{}, apperr.NotFound("Category", "categoryId", categoryID)
	}

	products, total, err := s.repo.FindPageByCategory(ctx, categoryID, p)
	if err != nil {
		return pagination.Page[ProductDTO]{}, err
	}
	if len(products) == 0 {
		return pagination.Page[ProductDTO]{}, apperr.Newf("%s category does not have any product", cat.Name)
	}
	return pagination.NewPage(ToDTOs(products), p, total), nil
}

func (s *service) SearchByKeyword(ctx context.Context, keyword string, p pagination.Params) (pagination.Page[ProductDTO], error) {
	products, total, err := s.repo.FindPageByKeyword(ctx, keyword, p)
	if err != nil {
		return pagination.Page[ProductDTO]{}, err
	}
	if len(products) == 0 {
		return pagination.Page[ProductDTO]{}, apperr.Newf("Products not Found with Keyword %s", keyword)
	}
	return pagination.NewPage(ToDTOs(products), p, total), nil
}

func (s *service) Update(ctx context.Context, productID int64, in ProductInput) (ProductDTO, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Update"),
		zap.Int64("product_id", productID),
	)

	existing, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return ProductDTO{}, err
	}
	if existing == nil {
		return ProductDTO{}, apperr.NotFound("Product", "productId", productID)
	}

	existing.Name = in.ProductName
	existing.Description = in.Description
	existing.Quantity = in.Quantity
	existing.Price = in.Price
	existing.Discount = in.Discount
	existing.SpecialPrice = SpecialPriceOf(in.Price, in.Discount)

	updated, err := s.repo.Update(ctx, *existing)
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return ProductDTO{}, err
	}

	// Carts holding this product keep a price snapshot; refresh them so
	// their totals reflect the new special price.
	if err := s.carts.SyncProductPrice(ctx, productID); err != nil {
		log.Error("failed to sync product price into carts", zap.Error(err))
		return ProductDTO{}, err
	}

	return ToDTO(updated), nil
}

func (s *service) UpdateImage(ctx context.Context, productID int64, image string) (ProductDTO, error) {
	existing, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return ProductDTO{}, err
	}
	if existing == nil {
		return ProductDTO{}, apperr.NotFound("Product", "productId", productID)
	}

	updated, err := s.repo.UpdateImage(ctx, productID, image)
	if err != nil {
		return ProductDTO{}, err
	}
	return ToDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, productID int64) (ProductDTO, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Delete"),
		zap.Int64("product_id", productID),
	)

	existing, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return ProductDTO{}, err
	}
	if existing == nil {
		return ProductDTO{}, apperr.NotFound("Product", "productId", productID)
	}

	// Cart lines referencing the product go first.
	if err := s.carts.RemoveProductFromAllCarts(ctx, productID); err != nil {
		log.Error("failed to remove product from carts", zap.Error(err))
		return ProductDTO{}, err
	}

	if err := s.repo.Delete(ctx, productID); err != nil {
		log.Error("failed to delete product", zap.Error(err))
		return ProductDTO{}, err
	}

	log.Info("product deleted")
	return ToDTO(*existing), nil
}
