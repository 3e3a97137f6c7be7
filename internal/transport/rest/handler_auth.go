package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/auth"
	"storefront-be/internal/user"
)

// cookiePath scopes the session cookie to the API surface.
const cookiePath = "/api"

type signInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signUpRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=20"`
	Email    string   `json:"email" binding:"required,email,max=50"`
	Password string   `json:"password" binding:"required,min=6,max=40"`
	Role     []string `json:"role"`
}

type AuthHandler struct {
	users        user.Service
	tokens       *auth.TokenManager
	cookieSecure bool
}

func NewAuthHandler(users user.Service, tokens *auth.TokenManager, cookieSecure bool) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, cookieSecure: cookieSecure}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Generate(u.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(h.tokens.CookieName, token,
		int(h.tokens.Expiry().Seconds()), cookiePath, "", h.cookieSecure, true)
	c.JSON(http.StatusOK, user.ToUserInfo(u, token))
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	_, err := h.users.Register(c.Request.Context(), user.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{Message: "User Registered Successfully", Status: true})
}

// SignOut replaces the session cookie with an expired empty one.
func (h *AuthHandler) SignOut(c *gin.Context) {
	c.SetCookie(h.tokens.CookieName, "", -1, cookiePath, "", h.cookieSecure, true)
	c.JSON(http.StatusOK, APIResponse{Message: "Signed out successfully", Status: true})
}

// Username returns the caller's username, or "NULL" for anonymous
// requests.
func (h *AuthHandler) Username(c *gin.Context) {
	p := auth.PrincipalFrom(c.Request.Context())
	if p == nil {
		c.String(http.StatusOK, "NULL")
		return
	}
	c.String(http.StatusOK, p.Username)
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	p := auth.PrincipalFrom(c.Request.Context())

	u, err := h.users.GetByUsername(c.Request.Context(), p.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.ToUserInfo(u, ""))
}
