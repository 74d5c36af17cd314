package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		stock int
		want  StockStatus
	}{
		{-5, StockOut},
		{0, StockOut},
		{1, StockLow},
		{10, StockLow},
		{11, StockNormal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyStock(tc.stock, DefaultLowStockThreshold), "stock %d", tc.stock)
	}
}

func TestClassifyStockZeroThreshold(t *testing.T) {
	assert.Equal(t, StockOut, ClassifyStock(0, 0))
	assert.Equal(t, StockNormal, ClassifyStock(1, 0))
}

func TestLineTotal(t *testing.T) {
	assert.True(t, LineTotal(decimal.RequireFromString("2.50"), 4).Equal(decimal.NewFromInt(10)))
	assert.True(t, LineTotal(decimal.RequireFromString("0.99"), 3).Equal(decimal.RequireFromString("2.97")))
}
