package rest

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront-be/internal/auth"
	"storefront-be/internal/middleware"
	"storefront-be/internal/user"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Category *CategoryHandler
	Product  *ProductHandler
	Cart     *CartHandler
	Order    *OrderHandler
	Address  *AddressHandler

	Tokens *auth.TokenManager
	Users  user.Service

	AllowedOrigins []string
}

// NewRouter wires the middleware chain and the route table. Identity
// is resolved on every request; the public group simply never checks
// it, while everything else demands a principal and /api/admin and
// the admin-only listings additionally demand the ADMIN role.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	origins := h.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(
		middleware.RequestID(),
		middleware.Identity(h.Tokens, h.Users),
		middleware.AccessLog(),
		middleware.RateLimit(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signin", h.Auth.SignIn)
		authGroup.POST("/signup", h.Auth.SignUp)
		authGroup.POST("/signout", h.Auth.SignOut)
		authGroup.GET("/username", h.Auth.Username)
		authGroup.GET("/user", middleware.RequireAuth(), h.Auth.CurrentUser)
	}

	public := r.Group("/api/public")
	{
		public.GET("/categories", h.Category.List)
		public.POST("/categories", middleware.RequireRole(string(user.RoleAdmin)), h.Category.Create)
		public.PUT("/categories/:categoryId", middleware.RequireRole(string(user.RoleAdmin)), h.Category.Update)

		public.GET("/products", h.Product.List)
		public.GET("/categories/:categoryId/products", h.Product.ListByCategory)
		public.GET("/products/keyword/:keyword", h.Product.Search)
	}

	admin := r.Group("/api/admin", middleware.RequireRole(string(user.RoleAdmin)))
	{
		admin.DELETE("/categories/:categoryId", h.Category.Delete)
		admin.POST("/categories/:categoryId/product", h.Product.Add)
		admin.PUT("/products/:productId", h.Product.Update)
		admin.DELETE("/products/:productId", h.Product.Delete)
	}

	authed := r.Group("/api", middleware.RequireAuth())
	{
		authed.PUT("/products/:productId/image", middleware.RequireRole(string(user.RoleAdmin)), h.Product.UpdateImage)

		authed.POST("/carts/products/:productId/quantity/:quantity", h.Cart.AddProduct)
		authed.GET("/carts", middleware.RequireRole(string(user.RoleAdmin)), h.Cart.ListAll)
		authed.GET("/carts/users/cart", h.Cart.GetUserCart)
		authed.PUT("/cart/products/:productId/quantity/:operation", h.Cart.UpdateQuantity)
		authed.DELETE("/carts/:cartId/product/:productId", h.Cart.DeleteProduct)

		authed.POST("/order/users/payments/:paymentMethod", h.Order.PlaceOrder)
		authed.GET("/order/users/orders", h.Order.ListUserOrders)

		authed.POST("/addresses", h.Address.Create)
		authed.GET("/addresses", middleware.RequireRole(string(user.RoleAdmin)), h.Address.List)
		authed.GET("/addresses/:addressId", h.Address.Get)
		authed.GET("/users/addresses", h.Address.ListUserAddresses)
		authed.PUT("/addresses/:addressId", h.Address.Update)
		authed.DELETE("/addresses/:addressId", h.Address.Delete)
	}

	return r
}
