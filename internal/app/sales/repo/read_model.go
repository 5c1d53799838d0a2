package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	catalog "github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_sale"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// ReadModelImpl implements the sales ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
	logger *zap.Logger
}

// NewReadModel creates a new sales ReadModel implementation.
func NewReadModel(client *spanner.Client, logger *zap.Logger) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
		logger: logger,
	}
}

// GetSaleByID retrieves a sale with its line items resolved against the
// catalog as of the sale date. Products deleted after the sale still
// appear (flagged); a product deleted before the sale date is a data
// anomaly, logged and dropped from the item view. The stored total is
// returned as-is either way.
func (rm *ReadModelImpl) GetSaleByID(ctx context.Context, saleID string) (*contracts.SaleDTO, error) {
	tx := rm.client.ReadOnlyTransaction()
	defer tx.Close()

	row, err := tx.ReadRow(ctx, m_sale.TableName, spanner.Key{saleID}, m_sale.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to read sale: %w", err)
	}

	var data m_sale.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse sale: %w", err)
	}

	dto := &contracts.SaleDTO{
		SaleID:          data.SaleID,
		SaleDate:        data.SaleDate,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		CustomerAddress: data.CustomerAddress,
		Total:           catalog.NewMoneyFromCents(data.TotalCents).Float64(),
		TotalCents:      data.TotalCents,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	stmt := spanner.Statement{
		SQL: `SELECT si.product_id, si.quantity, si.unit_price_cents,
		             p.name, p.is_deleted, p.deleted_at
		      FROM sale_items si
		      JOIN products p ON p.product_id = si.product_id
		      WHERE si.sale_id = @saleID
		      ORDER BY p.name`,
		Params: map[string]interface{}{"saleID": saleID},
	}

	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate sale items: %w", err)
		}

		var (
			productID      string
			quantity       int64
			unitPriceCents int64
			productName    string
			isDeleted      bool
			deletedAt      spanner.NullTime
		)
		if err := row.Columns(&productID, &quantity, &unitPriceCents, &productName, &isDeleted, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale item: %w", err)
		}

		if item := rm.resolveItem(saleID, data.SaleDate, productID, quantity, unitPriceCents, productName, isDeleted, deletedAt); item != nil {
			dto.Items = append(dto.Items, item)
		}
	}

	dto.ItemCount = int64(len(dto.Items))
	return dto, nil
}

// resolveItem turns one scanned sale item row into its historical view.
// A product deleted after the sale still shows, flagged. A product
// deleted at or before the sale date should not exist: deletion blocks
// new sales. Such a row is logged and dropped from the view; the stored
// sale total is kept as-is either way.
func (rm *ReadModelImpl) resolveItem(
	saleID string,
	saleDate time.Time,
	productID string,
	quantity, unitPriceCents int64,
	productName string,
	isDeleted bool,
	deletedAt spanner.NullTime,
) *contracts.SaleItemDTO {
	p := contracts.ProductRow{ProductID: productID, IsDeleted: isDeleted}
	if deletedAt.Valid {
		p.DeletedAt = &deletedAt.Time
	}

	if !p.AvailableAt(saleDate) {
		rm.logger.Warn("sale references product deleted before sale date",
			zap.String("sale_id", saleID),
			zap.String("product_id", productID),
			zap.Time("sale_date", saleDate),
			zap.Timep("deleted_at", p.DeletedAt),
		)
		return nil
	}

	return &contracts.SaleItemDTO{
		ProductID:      productID,
		ProductName:    productName,
		Quantity:       quantity,
		UnitPrice:      catalog.NewMoneyFromCents(unitPriceCents).Float64(),
		UnitPriceCents: unitPriceCents,
		LineTotalCents: unitPriceCents * quantity,
		ProductDeleted: isDeleted,
	}
}

// ListSales retrieves a paginated list of sales. List rows carry the
// same historically resolved item view and count GetSaleByID reports.
func (rm *ReadModelImpl) ListSales(ctx context.Context, filter *contracts.SaleListFilter) (*contracts.SaleListResult, error) {
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	where, params := saleFilterClauses(filter)

	countStmt := spanner.Statement{
		SQL:    "SELECT COUNT(*) FROM sales s" + where,
		Params: params,
	}
	totalCount, err := rm.queryCount(ctx, countStmt)
	if err != nil {
		return nil, err
	}

	listParams := make(map[string]interface{}, len(params)+2)
	for k, v := range params {
		listParams[k] = v
	}
	listParams["limit"] = int64(pageSize)
	listParams["offset"] = int64((page - 1) * pageSize)

	stmt := spanner.Statement{
		SQL: `SELECT s.sale_id, s.sale_date, s.customer_name, s.customer_email,
		             s.customer_address, s.total_cents, s.created_at, s.updated_at
		      FROM sales s` + where + `
		      ORDER BY s.sale_date DESC
		      LIMIT @limit OFFSET @offset`,
		Params: listParams,
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	sales := make([]*contracts.SaleDTO, 0, pageSize)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate sales: %w", err)
		}

		dto := &contracts.SaleDTO{}
		if err := row.Columns(
			&dto.SaleID,
			&dto.SaleDate,
			&dto.CustomerName,
			&dto.CustomerEmail,
			&dto.CustomerAddress,
			&dto.TotalCents,
			&dto.CreatedAt,
			&dto.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		dto.Total = catalog.NewMoneyFromCents(dto.TotalCents).Float64()

		sales = append(sales, dto)
	}

	if err := rm.attachItems(ctx, sales); err != nil {
		return nil, err
	}

	return &contracts.SaleListResult{
		Sales:      sales,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}, nil
}

// attachItems loads the line items for a page of sales and resolves each
// against the catalog as of its sale's date.
func (rm *ReadModelImpl) attachItems(ctx context.Context, sales []*contracts.SaleDTO) error {
	if len(sales) == 0 {
		return nil
	}

	byID := make(map[string]*contracts.SaleDTO, len(sales))
	saleIDs := make([]string, len(sales))
	for n, sale := range sales {
		byID[sale.SaleID] = sale
		saleIDs[n] = sale.SaleID
	}

	stmt := spanner.Statement{
		SQL: `SELECT si.sale_id, si.product_id, si.quantity, si.unit_price_cents,
		             p.name, p.is_deleted, p.deleted_at
		      FROM sale_items si
		      JOIN products p ON p.product_id = si.product_id
		      WHERE si.sale_id IN UNNEST(@saleIDs)
		      ORDER BY si.sale_id, p.name`,
		Params: map[string]interface{}{"saleIDs": saleIDs},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to iterate sale items: %w", err)
		}

		var (
			saleID         string
			productID      string
			quantity       int64
			unitPriceCents int64
			productName    string
			isDeleted      bool
			deletedAt      spanner.NullTime
		)
		if err := row.Columns(&saleID, &productID, &quantity, &unitPriceCents, &productName, &isDeleted, &deletedAt); err != nil {
			return fmt.Errorf("failed to scan sale item: %w", err)
		}

		sale := byID[saleID]
		if item := rm.resolveItem(saleID, sale.SaleDate, productID, quantity, unitPriceCents, productName, isDeleted, deletedAt); item != nil {
			sale.Items = append(sale.Items, item)
		}
	}

	for _, sale := range sales {
		sale.ItemCount = int64(len(sale.Items))
	}
	return nil
}

// Summary aggregates sold units and revenue per product over an optional
// date range, ordered by revenue. Revenue is computed from sale-time unit
// price snapshots, so repricing or deleting a product never changes past
// figures.
func (rm *ReadModelImpl) Summary(ctx context.Context, from, to *time.Time) (*contracts.SalesSummary, error) {
	var conds []string
	params := make(map[string]interface{})

	if from != nil {
		conds = append(conds, "s.sale_date >= @from")
		params["from"] = *from
	}
	if to != nil {
		conds = append(conds, "s.sale_date <= @to")
		params["to"] = *to
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	stmt := spanner.Statement{
		SQL: `SELECT si.product_id, p.name, c.name,
		             SUM(si.quantity) AS units,
		             SUM(si.quantity * si.unit_price_cents) AS revenue_cents,
		             MAX(s.sale_date) AS last_sold_at
		      FROM sale_items si
		      JOIN sales s ON s.sale_id = si.sale_id
		      JOIN products p ON p.product_id = si.product_id
		      JOIN categories c ON c.category_id = p.category_id` + where + `
		      GROUP BY si.product_id, p.name, c.name
		      ORDER BY revenue_cents DESC`,
		Params: params,
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	summary := &contracts.SalesSummary{}

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate summary: %w", err)
		}

		var r contracts.SummaryRow
		if err := row.Columns(&r.ProductID, &r.ProductName, &r.CategoryName, &r.UnitsSold, &r.RevenueCents, &r.LastSoldAt); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		r.Revenue = catalog.NewMoneyFromCents(r.RevenueCents).Float64()

		summary.Rows = append(summary.Rows, &r)
		summary.TotalUnits += r.UnitsSold
		summary.TotalRevCents += r.RevenueCents
	}

	summary.TotalRevenue = catalog.NewMoneyFromCents(summary.TotalRevCents).Float64()

	distinctStmt := spanner.Statement{
		SQL:    "SELECT COUNT(*) FROM sales s" + where,
		Params: params,
	}
	distinct, err := rm.queryCount(ctx, distinctStmt)
	if err != nil {
		return nil, err
	}
	summary.DistinctSales = distinct

	return summary, nil
}

func (rm *ReadModelImpl) queryCount(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to scan count: %w", err)
	}
	return count, nil
}

func saleFilterClauses(filter *contracts.SaleListFilter) (string, map[string]interface{}) {
	var conds []string
	params := make(map[string]interface{})

	if filter.CustomerSearch != "" {
		conds = append(conds, "LOWER(s.customer_name) LIKE CONCAT('%', LOWER(@customer), '%')")
		params["customer"] = filter.CustomerSearch
	}
	if filter.From != nil {
		conds = append(conds, "s.sale_date >= @from")
		params["from"] = *filter.From
	}
	if filter.To != nil {
		conds = append(conds, "s.sale_date <= @to")
		params["to"] = *filter.To
	}

	if len(conds) == 0 {
		return "", params
	}
	return " WHERE " + strings.Join(conds, " AND "), params
}
