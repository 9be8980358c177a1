package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGet(t *testing.T) {
	rec := NewRecord(TransactionSchema, map[string]any{
		"name":   "Grocery Store",
		"booked": true,
	})

	t.Run("DeclaredAndPresent", func(t *testing.T) {
		v, ok, err := rec.Get("name")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Grocery Store", v)
	})

	t.Run("DeclaredButAbsent", func(t *testing.T) {
		v, ok, err := rec.Get("category")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("Undeclared", func(t *testing.T) {
		_, _, err := rec.Get("nonsense")
		var attrErr *AttributeError
		require.ErrorAs(t, err, &attrErr)
		assert.Equal(t, "transaction", attrErr.Entity)
		assert.Equal(t, "nonsense", attrErr.Name)
	})

	t.Run("IgnoredIsNotDeclared", func(t *testing.T) {
		_, _, err := rec.Get("categoryId")
		var attrErr *AttributeError
		assert.ErrorAs(t, err, &attrErr)
	})
}

func TestRecordSet(t *testing.T) {
	rec := NewRecord(TransactionSchema, map[string]any{"checkmark": false})

	require.NoError(t, rec.Set("checkmark", true))
	v, ok, err := rec.Bool("checkmark")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v)

	var attrErr *AttributeError
	assert.ErrorAs(t, rec.Set("nonsense", 1), &attrErr)
}

func TestRecordTypedAccessors(t *testing.T) {
	day := time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := NewRecord(TransactionSchema, map[string]any{
		"name":        "Salary",
		"booked":      true,
		"amount":      2500.5,
		"bookingDate": day,
	})

	s, ok, err := rec.String("name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Salary", s)

	b, ok, err := rec.Bool("booked")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, b)

	d, ok, err := rec.Date("bookingDate")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, day, d)

	t.Run("TypeMismatch", func(t *testing.T) {
		_, ok, err := rec.String("booked")
		assert.True(t, ok)
		var typeErr *TypeError
		assert.ErrorAs(t, err, &typeErr)
	})
}

func TestRecordDecimal(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{"Float64", 123.45, "123.45"},
		{"Int", 7, "7"},
		{"Int64", int64(-42), "-42"},
		{"Uint64", uint64(9), "9"},
		{"String", "10.50", "10.5"},
		{"Decimal", decimal.RequireFromString("0.1"), "0.1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := NewRecord(TransactionSchema, map[string]any{"amount": tc.value})
			d, ok, err := rec.Decimal("amount")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tc.expected, d.String())
		})
	}

	t.Run("Unconvertible", func(t *testing.T) {
		rec := NewRecord(TransactionSchema, map[string]any{"amount": []int{1}})
		_, _, err := rec.Decimal("amount")
		var typeErr *TypeError
		assert.ErrorAs(t, err, &typeErr)
	})
}

func TestMoney(t *testing.T) {
	m := NewMoneyFromFloat(-12.5, "EUR")
	assert.True(t, m.IsNegative())
	assert.False(t, m.IsZero())
	assert.Equal(t, "-12.50 EUR", m.String())

	zero := NewMoney(decimal.Zero, "CHF")
	assert.True(t, zero.IsZero())
}
