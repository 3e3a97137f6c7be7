package order

import (
	"context"
	"errors"
	"time"

	"storefront-be/internal/address"
	"storefront-be/internal/apperr"
	"storefront-be/internal/cart"
	"storefront-be/internal/logger"
	"storefront-be/internal/payment"

	"go.uber.org/zap"
)

// PaymentDetails carries the gateway fields of a checkout request.
type PaymentDetails struct {
	PgName            string `json:"pgName" binding:"required"`
	PgPaymentID       string `json:"pgPaymentId" binding:"required"`
	PgStatus          string `json:"pgStatus" binding:"required"`
	PgResponseMessage string `json:"pgResponseMessage" binding:"required"`
}

type Service interface {
	PlaceOrder(ctx context.Context, email string, addressID int64, paymentMethod string, details PaymentDetails) (OrderDTO, error)
	GetUserOrders(ctx context.Context, email string) ([]OrderDTO, error)
}

type service struct {
	repo      Repository
	carts     cart.Repository
	addresses address.Repository
	payments  payment.Repository
}

func NewService(repo Repository, carts cart.Repository, addresses address.Repository, payments payment.Repository) Service {
	return &service{repo: repo, carts: carts, addresses: addresses, payments: payments}
}

// PlaceOrder converts the caller's cart into an order. The cart must
// exist and be non-empty, and the shipping address must exist. On
// success the cart is left empty with a zero total.
func (s *service) PlaceOrder(ctx context.Context, email string, addressID int64, paymentMethod string, details PaymentDetails) (OrderDTO, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Int64("address_id", addressID),
	)

	c, err := s.carts.FindByEmail(ctx, email)
	if err != nil {
		return OrderDTO{}, err
	}
	if c == nil {
		return OrderDTO{}, apperr.NotFound("Cart", "email", email)
	}

	addr, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		return OrderDTO{}, err
	}
	if addr == nil {
		return OrderDTO{}, apperr.NotFound("Address", "addressId", addressID)
	}

	cartItems, err := s.carts.FindItems(ctx, c.ID)
	if err != nil {
		return OrderDTO{}, err
	}
	if len(cartItems) == 0 {
		return OrderDTO{}, apperr.New("Cart is Empty")
	}

	items := make([]OrderItem, 0, len(cartItems))
	for _, ci := range cartItems {
		items = append(items, OrderItem{
			ProductID:           ci.ProductID,
			Quantity:            ci.Quantity,
			Discount:            ci.Discount,
			OrderedProductPrice: ci.ProductPrice,
			Product:             ci.Product,
		})
	}

	created, createdItems, createdPay, err := s.repo.PlaceOrderTx(ctx, Order{
		Email:       email,
		OrderDate:   time.Now(),
		TotalAmount: c.TotalPrice,
		Status:      StatusAccepted,
		AddressID:   addressID,
	}, items, payment.Payment{
		PaymentMethod:     paymentMethod,
		PgName:            details.PgName,
		PgPaymentID:       details.PgPaymentID,
		PgStatus:          details.PgStatus,
		PgResponseMessage: details.PgResponseMessage,
	}, c.ID)
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return OrderDTO{}, apperr.New("Ordered quantity exceeds the available stock")
		}
		log.Error("failed to place order", zap.Error(err))
		return OrderDTO{}, err
	}

	log.Info("order placed",
		zap.Int64("order_id", created.ID),
		zap.Float64("total", created.TotalAmount),
	)
	return ToDTO(created, createdItems, createdPay), nil
}

func (s *service) GetUserOrders(ctx context.Context, email string) ([]OrderDTO, error) {
	orders, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		items, err := s.repo.FindItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		pay, err := s.payments.FindByOrderID(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		if pay == nil {
			pay = &payment.Payment{}
		}
		dtos = append(dtos, ToDTO(o, items, *pay))
	}
	return dtos, nil
}
