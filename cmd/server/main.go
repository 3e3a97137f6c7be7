package main

import (
	"storefront-be/internal/address"
	"storefront-be/internal/auth"
	"storefront-be/internal/cart"
	"storefront-be/internal/category"
	"storefront-be/internal/config"
	"storefront-be/internal/db"
	"storefront-be/internal/logger"
	"storefront-be/internal/order"
	"storefront-be/internal/payment"
	"storefront-be/internal/product"
	"storefront-be/internal/transport/rest"
	"storefront-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTCookieName, cfg.JWTExpiresHours)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	productRepo := product.NewRepository(database)
	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	productSvc := product.NewService(productRepo, categoryRepo, cartSvc)

	addressRepo := address.NewRepository(database)
	addressSvc := address.NewService(addressRepo)

	paymentRepo := payment.NewRepository(database)
	orderRepo := order.NewRepository(database, paymentRepo)
	orderSvc := order.NewService(orderRepo, cartRepo, addressRepo, paymentRepo)

	router := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(userSvc, tokens, cfg.JWTCookieSecure),
		Category: rest.NewCategoryHandler(categorySvc),
		Product:  rest.NewProductHandler(productSvc),
		Cart:     rest.NewCartHandler(cartSvc),
		Order:    rest.NewOrderHandler(orderSvc),
		Address:  rest.NewAddressHandler(addressSvc),
		Tokens:   tokens,
		Users:    userSvc,

		AllowedOrigins: cfg.AllowedOrigins,
	})

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
