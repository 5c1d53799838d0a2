package http

import (
	"time"

	catalogcontracts "github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	salescontracts "github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_outbox"
)

// --- Requests ---

type createProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	Stock       int64  `json:"stock" binding:"gte=0"`
}

type updateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
	PriceCents  *int64  `json:"price_cents" binding:"omitempty,gt=0"`
	IsActive    *bool   `json:"is_active"`
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type saleItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

type createSaleRequest struct {
	SaleDate        *time.Time        `json:"sale_date"`
	CustomerName    string            `json:"customer_name" binding:"required"`
	CustomerEmail   string            `json:"customer_email" binding:"required,email"`
	CustomerAddress string            `json:"customer_address" binding:"required"`
	Items           []saleItemRequest `json:"items" binding:"required,min=1,dive"`
}

type updateSaleRequest struct {
	SaleDate        *time.Time        `json:"sale_date"`
	CustomerName    *string           `json:"customer_name"`
	CustomerEmail   *string           `json:"customer_email" binding:"omitempty,email"`
	CustomerAddress *string           `json:"customer_address"`
	Items           []saleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// --- Responses ---

type productResponse struct {
	ProductID    string     `json:"product_id"`
	CategoryID   string     `json:"category_id"`
	CategoryName string     `json:"category_name,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	PriceCents   int64      `json:"price_cents"`
	Stock        int64      `json:"stock"`
	IsActive     bool       `json:"is_active"`
	IsDeleted    bool       `json:"is_deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	Version      int64      `json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type categoryResponse struct {
	CategoryID  string     `json:"category_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type saleItemResponse struct {
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	Quantity       int64   `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	LineTotalCents int64   `json:"line_total_cents"`
	ProductDeleted bool    `json:"product_deleted,omitempty"`
}

type saleResponse struct {
	SaleID          string              `json:"sale_id"`
	SaleDate        time.Time           `json:"sale_date"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerAddress string              `json:"customer_address"`
	Total           float64             `json:"total"`
	TotalCents      int64               `json:"total_cents"`
	ItemCount       int64               `json:"item_count"`
	Items           []*saleItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type summaryRowResponse struct {
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	CategoryName string    `json:"category_name"`
	UnitsSold    int64     `json:"units_sold"`
	Revenue      float64   `json:"revenue"`
	RevenueCents int64     `json:"revenue_cents"`
	LastSoldAt   time.Time `json:"last_sold_at"`
}

type summaryResponse struct {
	Rows          []*summaryRowResponse `json:"rows"`
	TotalUnits    int64                 `json:"total_units"`
	TotalRevenue  float64               `json:"total_revenue"`
	DistinctSales int64                 `json:"distinct_sales"`
}

type eventResponse struct {
	EventID     string     `json:"event_id"`
	EventType   string     `json:"event_type"`
	AggregateID string     `json:"aggregate_id"`
	Payload     string     `json:"payload,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	RetryCount  int64      `json:"retry_count"`
}

type listMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
}

// --- Converters ---

func toProductResponse(dto *catalogcontracts.ProductDTO) *productResponse {
	return &productResponse{
		ProductID:    dto.ProductID,
		CategoryID:   dto.CategoryID,
		CategoryName: dto.CategoryName,
		Name:         dto.Name,
		Description:  dto.Description,
		Price:        dto.Price,
		PriceCents:   dto.PriceCents,
		Stock:        dto.Stock,
		IsActive:     dto.IsActive,
		IsDeleted:    dto.IsDeleted,
		DeletedAt:    dto.DeletedAt,
		Version:      dto.Version,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
}

func toCategoryResponse(dto *catalogcontracts.CategoryDTO) *categoryResponse {
	return &categoryResponse{
		CategoryID:  dto.CategoryID,
		Name:        dto.Name,
		Description: dto.Description,
		IsDeleted:   dto.IsDeleted,
		DeletedAt:   dto.DeletedAt,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
}

func toSaleResponse(dto *salescontracts.SaleDTO) *saleResponse {
	resp := &saleResponse{
		SaleID:          dto.SaleID,
		SaleDate:        dto.SaleDate,
		CustomerName:    dto.CustomerName,
		CustomerEmail:   dto.CustomerEmail,
		CustomerAddress: dto.CustomerAddress,
		Total:           dto.Total,
		TotalCents:      dto.TotalCents,
		ItemCount:       dto.ItemCount,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}
	for _, item := range dto.Items {
		resp.Items = append(resp.Items, &saleItemResponse{
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			UnitPriceCents: item.UnitPriceCents,
			LineTotalCents: item.LineTotalCents,
			ProductDeleted: item.ProductDeleted,
		})
	}
	return resp
}

func toEventResponse(data *m_outbox.Data) *eventResponse {
	resp := &eventResponse{
		EventID:     data.EventID,
		EventType:   data.EventType,
		AggregateID: data.AggregateID,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
		RetryCount:  data.RetryCount,
	}
	if data.Payload.Valid {
		resp.Payload = data.Payload.String()
	}
	if data.ProcessedAt.Valid {
		t := data.ProcessedAt.Time
		resp.ProcessedAt = &t
	}
	return resp
}
