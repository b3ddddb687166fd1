package handlers

import (
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/middleware"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	BaseHandler
	testimonialService services.TestimonialService
}

func NewTestimonialHandler(base BaseHandler, testimonialService services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{BaseHandler: base, testimonialService: testimonialService}
}

func (h *TestimonialHandler) RegisterRoutes(api *gin.RouterGroup) {
	testimonials := api.Group("/testimonials")
	testimonials.GET("", h.ListApproved)
	testimonials.POST("", h.Create)

	staff := testimonials.Group("", middleware.AuthMiddleware())
	staff.GET("/admin/all", h.ListAll)
	staff.PUT("/:id", h.Update)

	admin := testimonials.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	admin.DELETE("/:id", h.Delete)
}

func (h *TestimonialHandler) ListApproved(c *gin.Context) {
	var query dto.TestimonialListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	testimonials, err := h.testimonialService.ListApproved(db, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, testimonials)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	testimonial, err := h.testimonialService.Create(db, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondCreated(c, testimonial)
}

func (h *TestimonialHandler) ListAll(c *gin.Context) {
	var query dto.TestimonialAdminQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = NormalizePage(query.Page, query.Limit)

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	testimonials, total, err := h.testimonialService.ListAll(db, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondList(c, testimonials, query.Page, query.Limit, total)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	var req dto.UpdateTestimonialRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	testimonial, err := h.testimonialService.Update(db, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, testimonial)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.testimonialService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondMessage(c, "Testimonial deleted")
}
