package delete_sale

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

// Request contains the sale ID to delete.
type Request struct {
	SaleID string
}

// Interactor handles the delete sale use case. Sales are hard-deleted:
// a removed sale leaves no tombstone, and sold units are NOT returned to
// stock. Deleting the record does not undo the fulfilment.
type Interactor struct {
	txRunner contracts.TxRunner
	clock    clock.Clock
	logger   *zap.Logger
}

// NewInteractor creates a new delete sale interactor.
func NewInteractor(txRunner contracts.TxRunner, clk clock.Clock, logger *zap.Logger) *Interactor {
	return &Interactor{
		txRunner: txRunner,
		clock:    clk,
		logger:   logger,
	}
}

// Execute deletes a sale and its line items.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.SaleID == "" {
		return domain.ErrSaleNotFound
	}

	now := i.clock.Now()

	err := i.txRunner.ReadWrite(ctx, func(ctx context.Context, tx contracts.Tx) error {
		// Existence check so a missing sale surfaces as not-found rather
		// than a silent no-op delete.
		if _, _, err := tx.SaleByID(ctx, req.SaleID); err != nil {
			return err
		}

		if err := tx.DeleteSale(req.SaleID); err != nil {
			return err
		}

		event := &domain.SaleDeletedEvent{
			SaleID:    req.SaleID,
			DeletedAt: now,
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

	i.logger.Info("sale deleted", zap.String("sale_id", req.SaleID))
	return nil
}
