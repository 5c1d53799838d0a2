package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

func TestNewProduct(t *testing.T) {
	price, _ := NewMoney(19, 99)
	now := time.Now().UTC()
	clk := clock.NewMockClock(now)

	t.Run("valid product creation", func(t *testing.T) {
		p, err := NewProduct("id-1", "cat-1", "Widget", "A widget", price, 10, now, clk)
		require.NoError(t, err)
		assert.Equal(t, "id-1", p.ID())
		assert.Equal(t, "cat-1", p.CategoryID())
		assert.Equal(t, "Widget", p.Name())
		assert.Equal(t, int64(10), p.Stock())
		assert.True(t, p.IsActive())
		assert.False(t, p.IsDeleted())
		assert.Equal(t, int64(1), p.Version())
		assert.True(t, p.Changes().HasChanges())
		assert.Len(t, p.DomainEvents(), 1)
	})

	t.Run("empty name returns error", func(t *testing.T) {
		_, err := NewProduct("id-1", "cat-1", "", "desc", price, 10, now, clk)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("empty category returns error", func(t *testing.T) {
		_, err := NewProduct("id-1", "", "Widget", "desc", price, 10, now, clk)
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("zero price returns error", func(t *testing.T) {
		_, err := NewProduct("id-1", "cat-1", "Widget", "desc", NewMoneyFromCents(0), 10, now, clk)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("negative price returns error", func(t *testing.T) {
		_, err := NewProduct("id-1", "cat-1", "Widget", "desc", NewMoneyFromCents(-100), 10, now, clk)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("negative stock returns error", func(t *testing.T) {
		_, err := NewProduct("id-1", "cat-1", "Widget", "desc", price, -1, now, clk)
		assert.ErrorIs(t, err, ErrNegativeStock)
	})
}

func newTestProduct(t *testing.T, stock int64) *Product {
	t.Helper()
	price, _ := NewMoney(19, 99)
	now := time.Now().UTC()
	clk := clock.NewMockClock(now)
	p, err := NewProduct("id-1", "cat-1", "Widget", "A widget", price, stock, now, clk)
	require.NoError(t, err)
	return p
}

func TestProduct_SoftDelete(t *testing.T) {
	deletedAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("delete marks product and records timestamp", func(t *testing.T) {
		p := newTestProduct(t, 5)
		err := p.SoftDelete(deletedAt)
		require.NoError(t, err)
		assert.True(t, p.IsDeleted())
		require.NotNil(t, p.DeletedAt())
		assert.Equal(t, deletedAt, *p.DeletedAt())
		assert.True(t, p.Changes().Dirty(FieldSoftDelete))
	})

	t.Run("double delete fails", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.SoftDelete(deletedAt))
		assert.ErrorIs(t, p.SoftDelete(deletedAt), ErrAlreadyDeleted)
	})

	t.Run("deleted product rejects modification", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.SoftDelete(deletedAt))
		assert.ErrorIs(t, p.SetName("New"), ErrCannotModifyDeleted)
		assert.ErrorIs(t, p.SetPrice(NewMoneyFromCents(100)), ErrCannotModifyDeleted)
		assert.ErrorIs(t, p.Activate(), ErrCannotModifyDeleted)
	})
}

func TestProduct_Restore(t *testing.T) {
	t.Run("restore clears delete state", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.SoftDelete(time.Now().UTC()))
		require.NoError(t, p.Restore())
		assert.False(t, p.IsDeleted())
		assert.Nil(t, p.DeletedAt())
	})

	t.Run("restore of live product fails", func(t *testing.T) {
		p := newTestProduct(t, 5)
		assert.ErrorIs(t, p.Restore(), ErrNotDeleted)
	})
}

func TestProduct_AvailableAt(t *testing.T) {
	deletedAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	before := deletedAt.Add(-time.Hour)
	after := deletedAt.Add(time.Hour)

	t.Run("live product is always available", func(t *testing.T) {
		p := newTestProduct(t, 5)
		assert.True(t, p.AvailableAt(before))
		assert.True(t, p.AvailableAt(after))
	})

	t.Run("deleted product is available before deletion", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.SoftDelete(deletedAt))
		assert.True(t, p.AvailableAt(before))
	})

	t.Run("deleted product is unavailable at and after deletion", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.SoftDelete(deletedAt))
		assert.False(t, p.AvailableAt(deletedAt))
		assert.False(t, p.AvailableAt(after))
	})
}

func TestProduct_Setters(t *testing.T) {
	t.Run("set price tracks change", func(t *testing.T) {
		p := newTestProduct(t, 5)
		p.Changes().Clear()
		require.NoError(t, p.SetPrice(NewMoneyFromCents(2500)))
		assert.Equal(t, int64(2500), p.Price().Cents())
		assert.True(t, p.Changes().Dirty(FieldPrice))
	})

	t.Run("set invalid price fails", func(t *testing.T) {
		p := newTestProduct(t, 5)
		assert.ErrorIs(t, p.SetPrice(NewMoneyFromCents(0)), ErrInvalidPrice)
	})

	t.Run("set name", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.SetName("Gadget"))
		assert.Equal(t, "Gadget", p.Name())
		assert.ErrorIs(t, p.SetName(""), ErrEmptyName)
	})

	t.Run("set category", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.SetCategory("cat-2"))
		assert.Equal(t, "cat-2", p.CategoryID())
		assert.ErrorIs(t, p.SetCategory(""), ErrInvalidCategory)
	})
}

func TestProduct_Events(t *testing.T) {
	p := newTestProduct(t, 5)
	require.Len(t, p.DomainEvents(), 1)
	assert.Equal(t, "product.created", p.DomainEvents()[0].EventType())

	require.NoError(t, p.SetName("Gadget"))
	assert.Equal(t, "product.updated", p.DomainEvents()[1].EventType())

	p.ClearEvents()
	assert.Empty(t, p.DomainEvents())

	require.NoError(t, p.SoftDelete(time.Now().UTC()))
	require.Len(t, p.DomainEvents(), 1)
	assert.Equal(t, "product.deleted", p.DomainEvents()[0].EventType())
}
