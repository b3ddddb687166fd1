package handlers

import (
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/middleware"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(base BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

// RegisterRoutes mounts the staff account CRUD, admin only.
func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup) {
	users := api.Group("/users", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	users.GET("", h.List)
	users.POST("", h.Create)
	users.GET("/:id", h.Get)
	users.PUT("/:id", h.Update)
	users.DELETE("/:id", h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	users, err := h.userService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	profiles := make([]dto.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, dto.NewUserProfile(&users[i]))
	}
	respondOK(c, profiles)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.Create(db, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondCreated(c, dto.NewUserProfile(user))
}

func (h *UserHandler) Get(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, dto.NewUserProfile(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.Update(db, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, dto.NewUserProfile(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	actorID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.userService.Delete(db, actorID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondMessage(c, "User deleted")
}
