package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/queries/get_category"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/create_category"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/delete_category"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/restore_category"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/update_category"
)

// CategoriesHandler exposes category CRUD over HTTP.
type CategoriesHandler struct {
	createUC  *create_category.Interactor
	updateUC  *update_category.Interactor
	deleteUC  *delete_category.Interactor
	restoreUC *restore_category.Interactor
	getQ      *get_category.Query
	listQ     *list_categories.Query
	logger    *zap.Logger
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(
	createUC *create_category.Interactor,
	updateUC *update_category.Interactor,
	deleteUC *delete_category.Interactor,
	restoreUC *restore_category.Interactor,
	getQ *get_category.Query,
	listQ *list_categories.Query,
	logger *zap.Logger,
) *CategoriesHandler {
	return &CategoriesHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		restoreUC: restoreUC,
		getQ:      getQ,
		listQ:     listQ,
		logger:    logger,
	}
}

// Register binds the category routes onto a router group.
func (h *CategoriesHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/categories", h.create)
	rg.GET("/categories", h.list)
	rg.GET("/categories/:id", h.get)
	rg.PATCH("/categories/:id", h.update)
	rg.DELETE("/categories/:id", h.delete)
	rg.POST("/categories/:id/restore", h.restore)
}

func (h *CategoriesHandler) create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categoryID, err := h.createUC.Execute(c.Request.Context(), &create_category.Request{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category_id": categoryID})
}

func (h *CategoriesHandler) get(c *gin.Context) {
	dto, err := h.getQ.Execute(c.Request.Context(), &get_category.Request{CategoryID: c.Param("id")})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(dto))
}

func (h *CategoriesHandler) list(c *gin.Context) {
	result, err := h.listQ.Execute(c.Request.Context(), &list_categories.Request{
		Search:         c.Query("search"),
		IncludeDeleted: c.Query("include_deleted") == "true",
		Page:           queryInt(c, "page"),
		PageSize:       queryInt(c, "page_size"),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	categories := make([]*categoryResponse, 0, len(result.Categories))
	for _, dto := range result.Categories {
		categories = append(categories, toCategoryResponse(dto))
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"meta": listMeta{
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalCount: result.TotalCount,
		},
	})
}

func (h *CategoriesHandler) update(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.updateUC.Execute(c.Request.Context(), &update_category.Request{
		CategoryID:  c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoriesHandler) delete(c *gin.Context) {
	deletedAt, err := h.deleteUC.Execute(c.Request.Context(), &delete_category.Request{CategoryID: c.Param("id")})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_at": deletedAt})
}

func (h *CategoriesHandler) restore(c *gin.Context) {
	err := h.restoreUC.Execute(c.Request.Context(), &restore_category.Request{CategoryID: c.Param("id")})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
