package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/restore_product"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/update_product"
)

// ProductsHandler exposes product CRUD over HTTP.
type ProductsHandler struct {
	createUC  *create_product.Interactor
	updateUC  *update_product.Interactor
	deleteUC  *delete_product.Interactor
	restoreUC *restore_product.Interactor
	getQ      *get_product.Query
	listQ     *list_products.Query
	logger    *zap.Logger
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(
	createUC *create_product.Interactor,
	updateUC *update_product.Interactor,
	deleteUC *delete_product.Interactor,
	restoreUC *restore_product.Interactor,
	getQ *get_product.Query,
	listQ *list_products.Query,
	logger *zap.Logger,
) *ProductsHandler {
	return &ProductsHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		restoreUC: restoreUC,
		getQ:      getQ,
		listQ:     listQ,
		logger:    logger,
	}
}

// Register binds the product routes onto a router group.
func (h *ProductsHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/products", h.create)
	rg.GET("/products", h.list)
	rg.GET("/products/:id", h.get)
	rg.PATCH("/products/:id", h.update)
	rg.DELETE("/products/:id", h.delete)
	rg.POST("/products/:id/restore", h.restore)
}

func (h *ProductsHandler) create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID, err := h.createUC.Execute(c.Request.Context(), &create_product.Request{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product_id": productID})
}

func (h *ProductsHandler) get(c *gin.Context) {
	dto, err := h.getQ.Execute(c.Request.Context(), &get_product.Request{ProductID: c.Param("id")})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(dto))
}

func (h *ProductsHandler) list(c *gin.Context) {
	req := &list_products.Request{
		Search:         c.Query("search"),
		CategoryID:     c.Query("category_id"),
		ActiveOnly:     c.Query("active_only") == "true",
		IncludeDeleted: c.Query("include_deleted") == "true",
		Page:           queryInt(c, "page"),
		PageSize:       queryInt(c, "page_size"),
	}

	if v := c.Query("min_price_cents"); v != "" {
		if cents, err := strconv.ParseInt(v, 10, 64); err == nil {
			req.MinPriceCents = &cents
		}
	}
	if v := c.Query("max_price_cents"); v != "" {
		if cents, err := strconv.ParseInt(v, 10, 64); err == nil {
			req.MaxPriceCents = &cents
		}
	}

	result, err := h.listQ.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	products := make([]*productResponse, 0, len(result.Products))
	for _, dto := range result.Products {
		products = append(products, toProductResponse(dto))
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"meta": listMeta{
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalCount: result.TotalCount,
		},
	})
}

func (h *ProductsHandler) update(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.updateUC.Execute(c.Request.Context(), &update_product.Request{
		ProductID:   c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		PriceCents:  req.PriceCents,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) delete(c *gin.Context) {
	deletedAt, err := h.deleteUC.Execute(c.Request.Context(), &delete_product.Request{ProductID: c.Param("id")})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_at": deletedAt})
}

func (h *ProductsHandler) restore(c *gin.Context) {
	err := h.restoreUC.Execute(c.Request.Context(), &restore_product.Request{ProductID: c.Param("id")})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed so downstream defaults apply.
func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
