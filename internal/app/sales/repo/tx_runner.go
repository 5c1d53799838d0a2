package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_outbox"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_product"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_sale"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_sale_item"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

// SpannerTxRunner implements TxRunner on a Spanner read-write transaction.
// Reads inside the transaction lock the rows they touch, so the stock
// levels a sale workflow checks cannot move before its writes commit;
// racing transactions abort and surface as ErrStorageConflict.
type SpannerTxRunner struct {
	client *spanner.Client
	clock  clock.Clock
}

// NewSpannerTxRunner creates a new SpannerTxRunner.
func NewSpannerTxRunner(client *spanner.Client, clk clock.Clock) contracts.TxRunner {
	return &SpannerTxRunner{
		client: client,
		clock:  clk,
	}
}

// ReadWrite runs fn inside one read-write transaction. The Spanner client
// retries aborted transactions internally; an abort that survives those
// retries is mapped to domain.ErrStorageConflict.
func (r *SpannerTxRunner) ReadWrite(ctx context.Context, fn func(ctx context.Context, tx contracts.Tx) error) error {
	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		return fn(ctx, &spannerTx{
			txn:         txn,
			clock:       r.clock,
			saleModel:   m_sale.NewModel(),
			itemModel:   m_sale_item.NewModel(),
			outboxModel: m_outbox.NewModel(),
		})
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.Aborted {
			return domain.ErrStorageConflict
		}
		return err
	}
	return nil
}

type spannerTx struct {
	txn   *spanner.ReadWriteTransaction
	clock clock.Clock

	saleModel   *m_sale.Model
	itemModel   *m_sale_item.Model
	outboxModel *m_outbox.Model
}

// ProductsByID reads the given products inside the transaction.
func (t *spannerTx) ProductsByID(ctx context.Context, productIDs []string) (map[string]*contracts.ProductRow, error) {
	keys := make([]spanner.KeySet, 0, len(productIDs))
	for _, id := range productIDs {
		keys = append(keys, spanner.Key{id})
	}

	iter := t.txn.Read(ctx, m_product.TableName, spanner.KeySets(keys...), []string{
		m_product.ProductID,
		m_product.Name,
		m_product.PriceCents,
		m_product.Stock,
		m_product.IsActive,
		m_product.IsDeleted,
		m_product.DeletedAt,
	})
	defer iter.Stop()

	result := make(map[string]*contracts.ProductRow, len(productIDs))
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read products: %w", err)
		}

		var (
			p         contracts.ProductRow
			deletedAt spanner.NullTime
		)
		if err := row.Columns(&p.ProductID, &p.Name, &p.PriceCents, &p.Stock, &p.IsActive, &p.IsDeleted, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if deletedAt.Valid {
			p.DeletedAt = &deletedAt.Time
		}
		result[p.ProductID] = &p
	}

	return result, nil
}

// SaleByID reads a sale and its line items inside the transaction.
func (t *spannerTx) SaleByID(ctx context.Context, saleID string) (*contracts.SaleRow, []*contracts.SaleItemRow, error) {
	row, err := t.txn.ReadRow(ctx, m_sale.TableName, spanner.Key{saleID}, m_sale.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, nil, domain.ErrSaleNotFound
		}
		return nil, nil, fmt.Errorf("failed to read sale: %w", err)
	}

	var data m_sale.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, nil, fmt.Errorf("failed to parse sale: %w", err)
	}

	sale := &contracts.SaleRow{
		SaleID:          data.SaleID,
		SaleDate:        data.SaleDate,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		CustomerAddress: data.CustomerAddress,
		TotalCents:      data.TotalCents,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	itemIter := t.txn.Read(ctx, m_sale_item.TableName, spanner.KeyRange{
		Start: spanner.Key{saleID},
		End:   spanner.Key{saleID},
		Kind:  spanner.ClosedClosed,
	}, m_sale_item.AllColumns)
	defer itemIter.Stop()

	var items []*contracts.SaleItemRow
	for {
		row, err := itemIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read sale items: %w", err)
		}

		var item m_sale_item.Data
		if err := row.ToStruct(&item); err != nil {
			return nil, nil, fmt.Errorf("failed to parse sale item: %w", err)
		}

		items = append(items, &contracts.SaleItemRow{
			SaleID:         item.SaleID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	return sale, items, nil
}

// InsertSale buffers the insert of a sale and its line items.
func (t *spannerTx) InsertSale(sale *contracts.SaleRow, items []*contracts.SaleItemRow) error {
	muts := make([]*spanner.Mutation, 0, len(items)+1)
	muts = append(muts, t.saleModel.InsertMut(saleRowToData(sale)))
	for _, item := range items {
		muts = append(muts, t.itemModel.InsertMut(itemRowToData(item)))
	}
	return t.txn.BufferWrite(muts)
}

// UpdateSale buffers replacement of a sale's columns and line item set.
// Existing line items are deleted and reinserted; the sale row update and
// item replacement land atomically with the rest of the transaction.
func (t *spannerTx) UpdateSale(sale *contracts.SaleRow, items []*contracts.SaleItemRow) error {
	muts := make([]*spanner.Mutation, 0, len(items)+2)

	muts = append(muts, t.saleModel.UpdateMut(sale.SaleID, map[string]interface{}{
		m_sale.SaleDate:        sale.SaleDate,
		m_sale.CustomerName:    sale.CustomerName,
		m_sale.CustomerEmail:   sale.CustomerEmail,
		m_sale.CustomerAddress: sale.CustomerAddress,
		m_sale.TotalCents:      sale.TotalCents,
		m_sale.UpdatedAt:       sale.UpdatedAt,
	}))

	muts = append(muts, t.itemModel.DeleteForSaleMut(sale.SaleID))
	for _, item := range items {
		muts = append(muts, t.itemModel.InsertMut(itemRowToData(item)))
	}

	return t.txn.BufferWrite(muts)
}

// DeleteSale buffers deletion of a sale. Interleaved line items are
// removed by ON DELETE CASCADE.
func (t *spannerTx) DeleteSale(saleID string) error {
	return t.txn.BufferWrite([]*spanner.Mutation{t.saleModel.DeleteMut(saleID)})
}

// SetStock buffers a stock update for a product.
func (t *spannerTx) SetStock(productID string, stock int64) error {
	mut := spanner.Update(m_product.TableName,
		[]string{m_product.ProductID, m_product.Stock, m_product.UpdatedAt},
		[]interface{}{productID, stock, t.clock.Now()},
	)
	return t.txn.BufferWrite([]*spanner.Mutation{mut})
}

// AppendEvent buffers an outbox event insert.
func (t *spannerTx) AppendEvent(eventType, aggregateID, payload string) error {
	data := &m_outbox.Data{
		EventID:     uuid.New().String(),
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     spanner.NullJSON{Value: payload, Valid: payload != ""},
		Status:      m_outbox.StatusPending,
	}
	return t.txn.BufferWrite([]*spanner.Mutation{t.outboxModel.InsertMut(data)})
}

func saleRowToData(sale *contracts.SaleRow) *m_sale.Data {
	return &m_sale.Data{
		SaleID:          sale.SaleID,
		SaleDate:        sale.SaleDate,
		CustomerName:    sale.CustomerName,
		CustomerEmail:   sale.CustomerEmail,
		CustomerAddress: sale.CustomerAddress,
		TotalCents:      sale.TotalCents,
		CreatedAt:       sale.CreatedAt,
		UpdatedAt:       sale.UpdatedAt,
	}
}

func itemRowToData(item *contracts.SaleItemRow) *m_sale_item.Data {
	return &m_sale_item.Data{
		SaleID:         item.SaleID,
		ProductID:      item.ProductID,
		Quantity:       item.Quantity,
		UnitPriceCents: item.UnitPriceCents,
	}
}
