package category

import (
	"context"

	"storefront-be/internal/apperr"
	"storefront-be/internal/logger"
	"storefront-be/internal/pagination"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Service defines the business logic for the category catalog.
type Service interface {
	GetAll(ctx context.Context, p pagination.Params) (pagination.Page[CategoryDTO], error)
	Create(ctx context.Context, name string) (CategoryDTO, error)
	Update(ctx context.Context, id int64, name string) (CategoryDTO, error)
	Delete(ctx context.Context, id int64) (CategoryDTO, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetAll returns a page of categories. An empty catalog is a valid empty
// page, not an error.
func (s *service) GetAll(ctx context.Context, p pagination.Params) (pagination.Page[CategoryDTO], error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetAll"),
	)

	categories, total, err := s.repo.FindPage(ctx, p)
	if err != nil {
		log.Error("failed to get categories", zap.Error(err))
		return pagination.Page[CategoryDTO]{}, err
	}

	return pagination.NewPage(ToDTOs(categories), p, total), nil
}

func (s *service) Create(ctx context.Context, name string) (CategoryDTO, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("name", name),
	)

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		log.Error("failed to check category name", zap.Error(err))
		return CategoryDTO{}, err
	}
	if existing != nil {
		return CategoryDTO{}, apperr.Newf("Category with the name %s already exists", name)
	}

	c, err := s.repo.Insert(ctx, name)
	if err != nil {
		log.Error("failed to insert category", zap.Error(err))
		return CategoryDTO{}, err
	}

	log.Info("category created", zap.Int64("category_id", c.ID))
	return ToDTO(c), nil
}

func (s *service) Update(ctx context.Context, id int64, name string) (CategoryDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CategoryDTO{}, err
	}
	if existing == nil {
		return CategoryDTO{}, apperr.NotFound("Category", "categoryId", id)
	}

	c, err := s.repo.Update(ctx, id, name)
	if err != nil {
		return CategoryDTO{}, err
	}
	return ToDTO(c), nil
}

func (s *service) Delete(ctx context.Context, id int64) (CategoryDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CategoryDTO{}, err
	}
	if existing == nil {
		return CategoryDTO{}, apperr.NotFound("Category", "categoryId", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		// The products FK is ON DELETE RESTRICT; surface it as a rule
		// violation instead of a server error.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return CategoryDTO{}, apperr.Newf("Category %s still has products", existing.Name)
		}
		return CategoryDTO{}, err
	}

	return ToDTO(*existing), nil
}
