package handlers

import (
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/middleware"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	BaseHandler
	quoteService services.QuoteService
}

func NewQuoteHandler(base BaseHandler, quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{BaseHandler: base, quoteService: quoteService}
}

func (h *QuoteHandler) RegisterRoutes(api *gin.RouterGroup) {
	quotes := api.Group("/quotes")
	quotes.POST("", h.Create)

	staff := quotes.Group("", middleware.AuthMiddleware())
	staff.GET("/admin/all", h.List)
	staff.GET("/stats", h.Stats)
	staff.GET("/:id", h.Get)
	staff.PUT("/:id", h.Update)

	admin := quotes.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	admin.DELETE("/:id", h.Delete)
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	quote, err := h.quoteService.Create(db, req, formFiles(c, "attachments"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondCreated(c, quote)
}

func (h *QuoteHandler) List(c *gin.Context) {
	var query dto.QuoteListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = NormalizePage(query.Page, query.Limit)

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	quotes, total, err := h.quoteService.List(db, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondList(c, quotes, query.Page, query.Limit, total)
}

func (h *QuoteHandler) Stats(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	stats, err := h.quoteService.Stats(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, stats)
}

func (h *QuoteHandler) Get(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	quote, err := h.quoteService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, quote)
}

func (h *QuoteHandler) Update(c *gin.Context) {
	var req dto.UpdateQuoteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	quote, err := h.quoteService.Update(db, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, quote)
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.quoteService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondMessage(c, "Quote request deleted")
}
