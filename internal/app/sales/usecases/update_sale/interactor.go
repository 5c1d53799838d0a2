package update_sale

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	catalog "github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

// ItemRequest is one requested line in the replacement item set.
type ItemRequest struct {
	ProductID string
	Quantity  int64
}

// Request contains the data needed to update a sale. The item set
// replaces the existing one wholesale; nil customer fields are left
// unchanged.
type Request struct {
	SaleID          string
	SaleDate        *time.Time
	CustomerName    *string
	CustomerEmail   *string
	CustomerAddress *string
	Items           []ItemRequest
}

// Interactor handles the update sale use case. In one transaction it
// returns the old line quantities to stock, then re-runs the full sale
// derivation (availability, stock, fresh price snapshots) for the new
// item set. Prices are re-snapshotted: an updated sale reflects the
// catalog at update time, not at original sale time.
type Interactor struct {
	txRunner contracts.TxRunner
	clock    clock.Clock
	logger   *zap.Logger
}

// NewInteractor creates a new update sale interactor.
func NewInteractor(txRunner contracts.TxRunner, clk clock.Clock, logger *zap.Logger) *Interactor {
	return &Interactor{
		txRunner: txRunner,
		clock:    clk,
		logger:   logger,
	}
}

// Execute replaces a sale's details and line items.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if err := validate(req); err != nil {
		return err
	}

	now := i.clock.Now()

	err := i.txRunner.ReadWrite(ctx, func(ctx context.Context, tx contracts.Tx) error {
		existing, oldItems, err := tx.SaleByID(ctx, req.SaleID)
		if err != nil {
			return err
		}

		saleDate := existing.SaleDate
		if req.SaleDate != nil {
			saleDate = *req.SaleDate
		}
		customerName := existing.CustomerName
		if req.CustomerName != nil {
			customerName = *req.CustomerName
		}
		customerEmail := existing.CustomerEmail
		if req.CustomerEmail != nil {
			customerEmail = *req.CustomerEmail
		}
		customerAddress := existing.CustomerAddress
		if req.CustomerAddress != nil {
			customerAddress = *req.CustomerAddress
		}

		// Load every product touched by the old or new item set.
		idSet := make(map[string]bool)
		for _, item := range oldItems {
			idSet[item.ProductID] = true
		}
		for _, item := range req.Items {
			idSet[item.ProductID] = true
		}
		productIDs := make([]string, 0, len(idSet))
		for id := range idSet {
			productIDs = append(productIDs, id)
		}

		products, err := tx.ProductsByID(ctx, productIDs)
		if err != nil {
			return err
		}

		// Return the old quantities to stock before checking the new set,
		// so changing a quantity on the same product works against the
		// restored level. Soft-deleted products still have rows, so their
		// stock is restored too.
		originalStock := make(map[string]int64, len(products))
		for id, p := range products {
			originalStock[id] = p.Stock
		}
		for _, item := range oldItems {
			if p, ok := products[item.ProductID]; ok {
				if err := p.Restock(item.Quantity); err != nil {
					return err
				}
			}
		}

		items := make([]domain.LineItem, 0, len(req.Items))
		for _, reqItem := range req.Items {
			p, ok := products[reqItem.ProductID]
			if !ok || !p.Sellable(now) {
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

		sale, err := domain.NewSale(req.SaleID, saleDate, customerName, customerEmail, customerAddress, items, now)
		if err != nil {
			return err
		}

		row := &contracts.SaleRow{
			SaleID:          sale.ID(),
			SaleDate:        sale.SaleDate(),
			CustomerName:    sale.CustomerName(),
			CustomerEmail:   sale.CustomerEmail(),
			CustomerAddress: sale.CustomerAddress(),
			TotalCents:      sale.Total().Cents(),
			CreatedAt:       existing.CreatedAt,
			UpdatedAt:       now,
		}

		itemRows := make([]*contracts.SaleItemRow, len(items))
		for n, item := range items {
			itemRows[n] = &contracts.SaleItemRow{
				SaleID:         sale.ID(),
				ProductID:      item.ProductID(),
				Quantity:       item.Quantity(),
				UnitPriceCents: item.UnitPrice().Cents(),
			}
		}

		if err := tx.UpdateSale(row, itemRows); err != nil {
			return err
		}

		// Write every stock level that moved.
		for id, p := range products {
			if p.Stock != originalStock[id] {
				if err := tx.SetStock(id, p.Stock); err != nil {
					return err
				}
			}
		}

		event := &domain.SaleUpdatedEvent{
			SaleID:     sale.ID(),
			SaleDate:   sale.SaleDate(),
			TotalCents: sale.Total().Cents(),
			ItemCount:  len(items),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		return tx.AppendEvent(event.EventType(), event.AggregateID(), string(payload))
	})
	if err != nil {
		return err
	}

	i.logger.Info("sale updated",
		zap.String("sale_id", req.SaleID),
		zap.Int("items", len(req.Items)),
	)
	return nil
}

func validate(req *Request) error {
	if req.SaleID == "" {
		return domain.ErrSaleNotFound
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
