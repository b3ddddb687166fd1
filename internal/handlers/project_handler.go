package handlers

import (
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/middleware"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// publicProjectPageSize is the default page size of the public portfolio.
const publicProjectPageSize = 12

type ProjectHandler struct {
	BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{BaseHandler: base, projectService: projectService}
}

func (h *ProjectHandler) RegisterRoutes(api *gin.RouterGroup) {
	projects := api.Group("/projects")
	projects.GET("", h.ListPublished)
	projects.GET("/:id", h.GetBySlug)

	staff := projects.Group("", middleware.AuthMiddleware())
	staff.GET("/admin/all", h.ListAll)
	staff.POST("", h.Create)
	staff.PUT("/:id", h.Update)
	staff.POST("/:id/images", h.AddImages)
	staff.DELETE("/:id/images/:imageId", h.RemoveImage)

	admin := projects.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	admin.DELETE("/:id", h.Delete)
}

func (h *ProjectHandler) ListPublished(c *gin.Context) {
	var query dto.ProjectListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	if query.Limit == 0 {
		query.Limit = publicProjectPageSize
	}
	query.Page, query.Limit = NormalizePage(query.Page, query.Limit)

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	projects, total, err := h.projectService.List(db, query, false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondList(c, projects, query.Page, query.Limit, total)
}

func (h *ProjectHandler) ListAll(c *gin.Context) {
	var query dto.ProjectListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = NormalizePage(query.Page, query.Limit)

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	projects, total, err := h.projectService.List(db, query, true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondList(c, projects, query.Page, query.Limit, total)
}

func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	project, err := h.projectService.GetBySlug(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	creatorID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	project, err := h.projectService.Create(db, creatorID, req, formFiles(c, "images"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondCreated(c, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	project, err := h.projectService.Update(db, c.Param("id"), req, formFiles(c, "images"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, project)
}

func (h *ProjectHandler) AddImages(c *gin.Context) {
	images := formFiles(c, "images")
	if len(images) == 0 {
		h.HandleServiceError(c, errNoFiles())
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	project, err := h.projectService.AddImages(db, c.Param("id"), images)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, project)
}

func (h *ProjectHandler) RemoveImage(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	project, err := h.projectService.RemoveImage(db, c.Param("id"), c.Param("imageId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondOK(c, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	db, err := h.GetDB(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.projectService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	respondMessage(c, "Project deleted")
}
