package handlers

import (
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/middleware"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{BaseHandler: base, contactService: contactService}
}

func (h *ContactHandler) RegisterRoutes(api *gin.RouterGroup) {
	contact := api.Group("/contact")
	contact.POST("", h.Create)

	staff := contact.Group("", middleware.AuthMiddleware())
	staff.GET("/admin/all", h.List)
	staff.GET("/:id", h.Get)
	staff.PUT("/:id", h.Update)

	admin := contact.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	admin.DELETE("/:id", h.Delete)
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	contact, err := h.contactService.Create(db, req, formFiles(c, "attachments"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondCreated(c, contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	var query dto.ContactListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = NormalizePage(query.Page, query.Limit)

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	contacts, total, err := h.contactService.List(db, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondList(c, contacts, query.Page, query.Limit, total)
}

func (h *ContactHandler) Get(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	contact, err := h.contactService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req dto.UpdateContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	contact, err := h.contactService.Update(db, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contactService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondMessage(c, "Contact deleted")
}
