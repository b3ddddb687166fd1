package handlers

import (
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/middleware"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	categories.GET("", h.ListActive)

	admin := categories.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	admin.GET("/admin/all", h.ListAll)
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)

	// gin allows one wildcard name per segment; the public lookup reads it
	// as a slug
	categories.GET("/:id", h.GetBySlug)
}

func (h *CategoryHandler) ListActive(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	categories, err := h.categoryService.ListActive(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, categories)
}

func (h *CategoryHandler) ListAll(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	categories, err := h.categoryService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, categories)
}

func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	category, err := h.categoryService.GetBySlug(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	category, err := h.categoryService.Create(db, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondCreated(c, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	category, err := h.categoryService.Update(db, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.categoryService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondMessage(c, "Category deleted")
}
