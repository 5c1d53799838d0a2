package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/get_sale"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/list_sales"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/sales_summary"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/usecases/create_sale"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/usecases/delete_sale"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/usecases/update_sale"
)

// SalesHandler exposes the sale workflow over HTTP.
type SalesHandler struct {
	createUC *create_sale.Interactor
	updateUC *update_sale.Interactor
	deleteUC *delete_sale.Interactor
	getQ     *get_sale.Query
	listQ    *list_sales.Query
	summaryQ *sales_summary.Query
	logger   *zap.Logger
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(
	createUC *create_sale.Interactor,
	updateUC *update_sale.Interactor,
	deleteUC *delete_sale.Interactor,
	getQ *get_sale.Query,
	listQ *list_sales.Query,
	summaryQ *sales_summary.Query,
	logger *zap.Logger,
) *SalesHandler {
	return &SalesHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getQ:     getQ,
		listQ:    listQ,
		summaryQ: summaryQ,
		logger:   logger,
	}
}

// Register binds the sale routes onto a router group.
func (h *SalesHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/sales", h.create)
	rg.GET("/sales", h.list)
	rg.GET("/sales/summary", h.summary)
	rg.GET("/sales/:id", h.get)
	rg.PUT("/sales/:id", h.update)
	rg.DELETE("/sales/:id", h.delete)
}

func (h *SalesHandler) create(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ucReq := &create_sale.Request{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
	}
	if req.SaleDate != nil {
		ucReq.SaleDate = *req.SaleDate
	}
	for _, item := range req.Items {
		ucReq.Items = append(ucReq.Items, create_sale.ItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	result, err := h.createUC.Execute(c.Request.Context(), ucReq)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := gin.H{
		"sale_id":     result.SaleID,
		"sale_date":   result.SaleDate,
		"total_cents": result.TotalCents,
	}
	items := make([]*saleItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, &saleItemResponse{
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			LineTotalCents: item.LineTotalCents,
		})
	}
	resp["items"] = items

	c.JSON(http.StatusCreated, resp)
}

func (h *SalesHandler) get(c *gin.Context) {
	dto, err := h.getQ.Execute(c.Request.Context(), &get_sale.Request{SaleID: c.Param("id")})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toSaleResponse(dto))
}

func (h *SalesHandler) list(c *gin.Context) {
	req := &list_sales.Request{
		CustomerSearch: c.Query("customer"),
		Page:           queryInt(c, "page"),
		PageSize:       queryInt(c, "page_size"),
	}
	req.From = queryTime(c, "from")
	req.To = queryTime(c, "to")

	result, err := h.listQ.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	sales := make([]*saleResponse, 0, len(result.Sales))
	for _, dto := range result.Sales {
		sales = append(sales, toSaleResponse(dto))
	}

	c.JSON(http.StatusOK, gin.H{
		"sales": sales,
		"meta": listMeta{
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalCount: result.TotalCount,
		},
	})
}

func (h *SalesHandler) update(c *gin.Context) {
	var req updateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ucReq := &update_sale.Request{
		SaleID:          c.Param("id"),
		SaleDate:        req.SaleDate,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
	}
	for _, item := range req.Items {
		ucReq.Items = append(ucReq.Items, update_sale.ItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := h.updateUC.Execute(c.Request.Context(), ucReq); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SalesHandler) delete(c *gin.Context) {
	err := h.deleteUC.Execute(c.Request.Context(), &delete_sale.Request{SaleID: c.Param("id")})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SalesHandler) summary(c *gin.Context) {
	summary, err := h.summaryQ.Execute(c.Request.Context(), &sales_summary.Request{
		From: queryTime(c, "from"),
		To:   queryTime(c, "to"),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := &summaryResponse{
		TotalUnits:    summary.TotalUnits,
		TotalRevenue:  summary.TotalRevenue,
		DistinctSales: summary.DistinctSales,
	}
	for _, row := range summary.Rows {
		resp.Rows = append(resp.Rows, &summaryRowResponse{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			CategoryName: row.CategoryName,
			UnitsSold:    row.UnitsSold,
			Revenue:      row.Revenue,
			RevenueCents: row.RevenueCents,
			LastSoldAt:   row.LastSoldAt,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// queryTime parses an RFC 3339 query parameter, returning nil when absent
// or malformed.
func queryTime(c *gin.Context, name string) *time.Time {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &t
}
