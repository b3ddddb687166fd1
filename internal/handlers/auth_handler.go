package handlers

import (
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/middleware"
	"landscaping_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	auth.POST("/login", h.Login)
	auth.GET("/me", middleware.AuthMiddleware(), h.Me)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.authService.Login(db, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	profile, err := h.authService.Profile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, profile)
}
