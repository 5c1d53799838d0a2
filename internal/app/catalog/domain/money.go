package domain

import (
	"fmt"
)

// Money represents a monetary amount as fixed-point currency with two
// decimal places, stored as an integer number of cents. Integer cents
// avoid floating-point drift in price arithmetic and map directly onto
// the INT64 price columns in the database.
type Money struct {
	cents int64
}

// NewMoney creates a Money from whole units and cents.
// Example: NewMoney(2499, 0) is 2499.00, NewMoney(19, 99) is 19.99.
func NewMoney(units, cents int64) (Money, error) {
	if cents < 0 || cents > 99 {
		return Money{}, fmt.Errorf("cents must be between 0 and 99, got %d", cents)
	}
	if units < 0 {
		return Money{cents: units*100 - cents}, nil
	}
	return Money{cents: units*100 + cents}, nil
}

// NewMoneyFromCents creates a Money from a raw cent amount.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// Cents returns the raw cent amount.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two Money values.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// MulQty returns this amount multiplied by a quantity.
func (m Money) MulQty(qty int64) Money {
	return Money{cents: m.cents * qty}
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsNegative returns true if the amount is negative.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsPositive returns true if the amount is positive.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// LessThan returns true if this amount is less than another.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// GreaterThan returns true if this amount is greater than another.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// Equals returns true if the two amounts are equal.
func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

// Float64 returns an approximate float64 representation (for display
// and JSON responses, not for calculations).
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// String renders the amount with two decimal places, e.g. "19.99".
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
