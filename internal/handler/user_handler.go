package handler

import (
	"net/http"

	"selfcare_portal/internal/middleware"
	"selfcare_portal/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the signed-in subscriber's account
type UserHandler struct {
	service service.AuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.AuthService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	accountID, ok := middleware.AuthAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	account, err := h.service.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err,
			errorCase{service.ErrAccountNotFound, http.StatusNotFound, service.ErrAccountNotFound.Error()},
		)
		return
	}
	c.JSON(http.StatusOK, account)
}

// RegisterUserRoutes registers account routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", h.GetCurrentUser)
}
