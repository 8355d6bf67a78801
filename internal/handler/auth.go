package handler

import (
	"errors"
	"net/http"
	"time"

	"clientmap-api/internal/auth"

	"github.com/gin-gonic/gin"
)

// Authenticator interface for dependency injection
type Authenticator interface {
	Login(password string) (string, time.Time, error)
}

// AuthHandler exchanges the operator password for a token
type AuthHandler struct {
	auth Authenticator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(a Authenticator) *AuthHandler {
	return &AuthHandler{auth: a}
}

// LoginRequest is the login body.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login godoc
// @Summary      Operator login
// @Description  Issues a bearer token and sets it as a cookie for the map page
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "operator password"
// @Success      200   {object}  LoginResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body must be a JSON object with a 'password' field")
		return
	}

	token, expiresAt, err := h.auth.Login(req.Password)
	switch {
	case errors.Is(err, auth.ErrDisabled):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "authentication is disabled"})
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid password"})
		return
	case err != nil:
		respondError(c, err)
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, token, maxAge, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}
