package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(19, 99)
		require.NoError(t, err)
		assert.Equal(t, int64(1999), m.Cents())
	})

	t.Run("whole units only", func(t *testing.T) {
		m, err := NewMoney(2499, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(249900), m.Cents())
	})

	t.Run("cents above 99 returns error", func(t *testing.T) {
		_, err := NewMoney(10, 100)
		assert.Error(t, err)
	})

	t.Run("negative cents returns error", func(t *testing.T) {
		_, err := NewMoney(10, -1)
		assert.Error(t, err)
	})

	t.Run("negative units allowed", func(t *testing.T) {
		m, err := NewMoney(-10, 50)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
		assert.Equal(t, int64(-1050), m.Cents())
	})
}

func TestMoney_Add(t *testing.T) {
	m1 := NewMoneyFromCents(10000)
	m2 := NewMoneyFromCents(5000)

	result := m1.Add(m2)
	assert.Equal(t, int64(15000), result.Cents())
}

func TestMoney_Sub(t *testing.T) {
	m1 := NewMoneyFromCents(10000)
	m2 := NewMoneyFromCents(3000)

	result := m1.Sub(m2)
	assert.Equal(t, int64(7000), result.Cents())
}

func TestMoney_MulQty(t *testing.T) {
	m, _ := NewMoney(19, 99)

	result := m.MulQty(3)
	assert.Equal(t, int64(5997), result.Cents())
}

func TestMoney_Comparisons(t *testing.T) {
	small := NewMoneyFromCents(100)
	large := NewMoneyFromCents(200)

	assert.True(t, small.LessThan(large))
	assert.True(t, large.GreaterThan(small))
	assert.True(t, small.Equals(NewMoneyFromCents(100)))
	assert.False(t, small.Equals(large))
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, NewMoneyFromCents(0).IsZero())
	assert.True(t, NewMoneyFromCents(-1).IsNegative())
	assert.True(t, NewMoneyFromCents(1).IsPositive())
	assert.False(t, NewMoneyFromCents(0).IsPositive())
}

func TestMoney_String(t *testing.T) {
	t.Run("positive amount", func(t *testing.T) {
		assert.Equal(t, "19.99", NewMoneyFromCents(1999).String())
	})

	t.Run("whole amount pads cents", func(t *testing.T) {
		assert.Equal(t, "25.00", NewMoneyFromCents(2500).String())
	})

	t.Run("sub-unit amount", func(t *testing.T) {
		assert.Equal(t, "0.05", NewMoneyFromCents(5).String())
	})

	t.Run("negative amount", func(t *testing.T) {
		assert.Equal(t, "-3.50", NewMoneyFromCents(-350).String())
	})
}

func TestMoney_Float64(t *testing.T) {
	m := NewMoneyFromCents(1999)
	assert.InDelta(t, 19.99, m.Float64(), 0.0001)
}
