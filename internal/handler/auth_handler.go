package handler

import (
	"net/http"
	"time"

	"selfcare_portal/internal/middleware"
	"selfcare_portal/internal/model"
	"selfcare_portal/internal/service"
	"selfcare_portal/internal/utils"

	"github.com/gin-gonic/gin"
)

// CookieConfig controls the session cookie written on login
type CookieConfig struct {
	TTL    time.Duration
	Secure bool
}

// AuthHandler handles authentication and password-reset requests
type AuthHandler struct {
	service service.AuthService
	cookie  CookieConfig
}

// NewAuthHandler creates a new AuthHandler
// RegisterValidators must have run before its routes serve requests.
func NewAuthHandler(s service.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: s, cookie: cookie}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidFormat(c)
		return
	}

	account, token, err := h.service.Login(c.Request.Context(), utils.NormalizePhone(req.Phone), req.Password)
	if err != nil {
		respondError(c, err,
			errorCase{service.ErrInvalidCredentials, http.StatusUnauthorized, service.ErrInvalidCredentials.Error()},
		)
		return
	}

	h.setSessionCookie(c, token, int(h.cookie.TTL.Seconds()))
	c.JSON(http.StatusOK, model.LoginResponse{User: account, Token: token})
}

// Logout clears the session cookie; it succeeds with or without a session
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

func (h *AuthHandler) RequestReset(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidFormat(c)
		return
	}

	if err := h.service.RequestReset(c.Request.Context(), utils.NormalizePhone(req.Phone)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req model.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidFormat(c)
		return
	}

	if err := h.service.VerifyCode(c.Request.Context(), utils.NormalizePhone(req.Phone), req.Code); err != nil {
		respondError(c, err,
			errorCase{service.ErrInvalidCode, http.StatusBadRequest, service.ErrInvalidCode.Error()},
		)
		return
	}
	c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

func (h *AuthHandler) SetPassword(c *gin.Context) {
	var req model.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidFormat(c)
		return
	}

	err := h.service.SetPassword(c.Request.Context(), utils.NormalizePhone(req.Phone), req.Code, req.NewPassword)
	if err != nil {
		respondError(c, err,
			errorCase{service.ErrInvalidCode, http.StatusBadRequest, service.ErrInvalidCode.Error()},
			errorCase{service.ErrAccountNotFound, http.StatusNotFound, service.ErrAccountNotFound.Error()},
		)
		return
	}
	c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, value, maxAge, "/", "", h.cookie.Secure, true)
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/reset-password", h.RequestReset)
		authGroup.POST("/verify-code", h.VerifyCode)
		authGroup.POST("/set-password", h.SetPassword)
	}
}
