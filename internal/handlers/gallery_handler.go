package handlers

import (
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/middleware"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	BaseHandler
	galleryService services.GalleryService
}

func NewGalleryHandler(base BaseHandler, galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{BaseHandler: base, galleryService: galleryService}
}

func (h *GalleryHandler) RegisterRoutes(api *gin.RouterGroup) {
	gallery := api.Group("/gallery")
	gallery.GET("", h.ListPublic)

	staff := gallery.Group("", middleware.AuthMiddleware())
	staff.GET("/admin/all", h.ListAll)
	staff.POST("", h.Create)
	staff.PUT("/reorder", h.Reorder)
	staff.PUT("/:id", h.Update)

	admin := gallery.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	admin.DELETE("/:id", h.Delete)
}

func (h *GalleryHandler) ListPublic(c *gin.Context) {
	var query dto.GalleryListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items, err := h.galleryService.ListPublic(db, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, items)
}

func (h *GalleryHandler) ListAll(c *gin.Context) {
	page, limit := NormalizePage(queryInt(c, "page"), queryInt(c, "limit"))

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items, total, err := h.galleryService.ListAll(db, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondList(c, items, page, limit, total)
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req dto.CreateGalleryItemRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	item, err := h.galleryService.Create(db, req, formFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondCreated(c, item)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	var req dto.UpdateGalleryItemRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	item, err := h.galleryService.Update(db, c.Param("id"), req, formFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, item)
}

func (h *GalleryHandler) Reorder(c *gin.Context) {
	var req dto.ReorderGalleryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.galleryService.Reorder(db, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondMessage(c, "Gallery order updated")
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.galleryService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondMessage(c, "Gallery item deleted")
}
