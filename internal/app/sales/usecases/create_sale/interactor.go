package create_sale

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	catalog "github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

// ItemRequest is one requested line: product and quantity. The unit price
// is never part of the request; it is snapshotted from the catalog inside
// the transaction.
type ItemRequest struct {
	ProductID string
	Quantity  int64
}

// Request contains the data needed to record a sale.
type Request struct {
	SaleDate        time.Time
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Items           []ItemRequest
}

// ResolvedItem is a recorded line with its snapshotted unit price.
type ResolvedItem struct {
	ProductID      string
	ProductName    string
	Quantity       int64
	UnitPriceCents int64
	LineTotalCents int64
}

// Result describes the sale as recorded.
type Result struct {
	SaleID     string
	SaleDate   time.Time
	TotalCents int64
	Items      []ResolvedItem
}

// Interactor coordinates the sale creation workflow: availability checks,
// price snapshotting, stock decrements, the sale insert, and the outbox
// event all happen inside one read-write transaction. If any product has
// insufficient stock, nothing is written.
type Interactor struct {
	txRunner contracts.TxRunner
	clock    clock.Clock
	logger   *zap.Logger
}

// NewInteractor creates a new create sale interactor.
func NewInteractor(txRunner contracts.TxRunner, clk clock.Clock, logger *zap.Logger) *Interactor {
	return &Interactor{
		txRunner: txRunner,
		clock:    clk,
		logger:   logger,
	}
}

// Execute records a sale and returns it as recorded, with resolved line
// items and the derived total.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	// Shape validation happens before any storage work; only requests
	// that could possibly succeed open a transaction.
	if err := validate(req); err != nil {
		return nil, err
	}

	saleID := uuid.New().String()
	now := i.clock.Now()

	saleDate := req.SaleDate
	if saleDate.IsZero() {
		saleDate = now
	}

	var result *Result
	err := i.txRunner.ReadWrite(ctx, func(ctx context.Context, tx contracts.Tx) error {
		productIDs := make([]string, len(req.Items))
		for n, item := range req.Items {
			productIDs[n] = item.ProductID
		}

		products, err := tx.ProductsByID(ctx, productIDs)
		if err != nil {
			return err
		}

		items := make([]domain.LineItem, 0, len(req.Items))
		for _, reqItem := range req.Items {
			p, ok := products[reqItem.ProductID]
			if !ok || !p.Sellable(now) {
				// Missing, deleted, and inactive all read the same from the
				// outside: this product cannot be sold.
				return fmt.Errorf("product %s: %w", reqItem.ProductID, domain.ErrProductNotFound)
			}

			if err := p.Reserve(reqItem.Quantity); err != nil {
				return fmt.Errorf("product %s: %w", reqItem.ProductID, err)
			}

			item, err := domain.NewLineItem(p.ProductID, reqItem.Quantity, catalog.NewMoneyFromCents(p.PriceCents))
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		sale, err := domain.NewSale(saleID, saleDate, req.CustomerName, req.CustomerEmail, req.CustomerAddress, items, now)
		if err != nil {
			return err
		}

		if err := tx.InsertSale(saleToRow(sale), itemsToRows(sale)); err != nil {
			return err
		}

		// Persist the reserved levels in the same transaction as the
		// availability check above.
		for _, item := range sale.Items() {
			p := products[item.ProductID()]
			if err := tx.SetStock(p.ProductID, p.Stock); err != nil {
				return err
			}
		}

		event := &domain.SaleCreatedEvent{
			SaleID:     sale.ID(),
			SaleDate:   sale.SaleDate(),
			TotalCents: sale.Total().Cents(),
			ItemCount:  len(sale.Items()),
			Units:      sale.TotalQuantity(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		if err := tx.AppendEvent(event.EventType(), event.AggregateID(), string(payload)); err != nil {
			return err
		}

		// The fn can be retried; rebuild the result each attempt.
		result = &Result{
			SaleID:     sale.ID(),
			SaleDate:   sale.SaleDate(),
			TotalCents: sale.Total().Cents(),
			Items:      make([]ResolvedItem, 0, len(sale.Items())),
		}
		for _, item := range sale.Items() {
			result.Items = append(result.Items, ResolvedItem{
				ProductID:      item.ProductID(),
				ProductName:    products[item.ProductID()].Name,
				Quantity:       item.Quantity(),
				UnitPriceCents: item.UnitPrice().Cents(),
				LineTotalCents: item.LineTotal().Cents(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.logger.Info("sale recorded",
		zap.String("sale_id", saleID),
		zap.Int("items", len(req.Items)),
	)
	return result, nil
}

func validate(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return domain.ErrMissingCustomer
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return domain.ErrMissingEmail
	}
	if strings.TrimSpace(req.CustomerAddress) == "" {
		return domain.ErrMissingAddress
	}
	if len(req.Items) == 0 {
		return domain.ErrNoLineItems
	}

	seen := make(map[string]bool, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
		if seen[item.ProductID] {
			return domain.ErrDuplicateProduct
		}
		seen[item.ProductID] = true
	}

	return nil
}

func saleToRow(sale *domain.Sale) *contracts.SaleRow {
	return &contracts.SaleRow{
		SaleID:          sale.ID(),
		SaleDate:        sale.SaleDate(),
		CustomerName:    sale.CustomerName(),
		CustomerEmail:   sale.CustomerEmail(),
		CustomerAddress: sale.CustomerAddress(),
		TotalCents:      sale.Total().Cents(),
		CreatedAt:       sale.CreatedAt(),
		UpdatedAt:       sale.UpdatedAt(),
	}
}

func itemsToRows(sale *domain.Sale) []*contracts.SaleItemRow {
	items := sale.Items()
	rows := make([]*contracts.SaleItemRow, len(items))
	for n, item := range items {
		rows[n] = &contracts.SaleItemRow{
			SaleID:         sale.ID(),
			ProductID:      item.ProductID(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
		}
	}
	return rows
}
