package address

import (
	"context"
	"database/sql"
	"errors"

	"storefront-be/internal/apperr"
	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID int64, input AddressInput) (AddressDTO, error)
	GetAll(ctx context.Context) ([]AddressDTO, error)
	GetByID(ctx context.Context, id int64) (AddressDTO, error)
	GetByUser(ctx context.Context, userID int64) ([]AddressDTO, error)
	Update(ctx context.Context, id int64, input AddressInput) (AddressDTO, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID int64, input AddressInput) (AddressDTO, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.Int64("user_id", userID),
	)

	a, err := s.repo.Create(ctx, Address{
		UserID:       userID,
		Street:       input.Street,
		BuildingName: input.BuildingName,
		City:         input.City,
		State:        input.State,
		Country:      input.Country,
		Pincode:      input.Pincode,
	})
	if err != nil {
		log.Error("failed to create address", zap.Error(err))
		return AddressDTO{}, err
	}

	return ToDTO(a), nil
}

func (s *service) GetAll(ctx context.Context) ([]AddressDTO, error) {
	addresses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToDTOs(addresses), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (AddressDTO, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AddressDTO{}, err
	}
	if a == nil {
		return AddressDTO{}, apperr.NotFound("Address", "addressId", id)
	}
	return ToDTO(*a), nil
}

func (s *service) GetByUser(ctx context.Context, userID int64) ([]AddressDTO, error) {
	addresses, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToDTOs(addresses), nil
}

func (s *service) Update(ctx context.Context, id int64, input AddressInput) (AddressDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AddressDTO{}, err
	}
	if existing == nil {
		return AddressDTO{}, apperr.NotFound("Address", "addressId", id)
	}

	existing.Street = input.Street
	existing.BuildingName = input.BuildingName
	existing.City = input.City
	existing.State = input.State
	existing.Country = input.Country
	existing.Pincode = input.Pincode

	updated, err := s.repo.Update(ctx, *existing)
	if err != nil {
		return AddressDTO{}, err
	}
	return ToDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) (string, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperr.NotFound("Address", "addressId", id)
		}
		return "", err
	}
	return "Address deleted successfully", nil
}
