package cost

import (
	"context"
	"testing"

	"craft-planner/core/procurement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Closure(t *testing.T) {
	svc := newTestService(testPrices())

	report, err := svc.Closure(context.Background(), elixir)
	require.NoError(t, err)
	assert.Equal(t, ItemRef{ID: elixir, Name: "Elixir"}, report.Root)
	require.Len(t, report.Items, 4)
	assert.Equal(t, elixir, report.Items[0].ID)
}

func TestService_Needs(t *testing.T) {
	svc := newTestService(testPrices())

	report, err := svc.Needs(context.Background(), elixir)
	require.NoError(t, err)
	assert.Equal(t, []NeedRow{
		{ID: herb, Name: "Herb", Quantity: 3},
		{ID: water, Name: "Water", Quantity: 2},
		{ID: potion, Name: "Potion", Quantity: 1},
	}, report.Rows)
}

func TestService_Decision(t *testing.T) {
	svc := newTestService(testPrices())
	ctx := context.Background()

	d, err := svc.Decision(ctx, potion)
	require.NoError(t, err)
	assert.Equal(t, procurement.ModeBuy, d.Mode)
	require.NotNil(t, d.UnitCost)
	assert.Equal(t, 25.0, *d.UnitCost)
	assert.Equal(t, "Zodiark", d.Origin)
	assert.NotEmpty(t, d.Snapshot)

	d, err = svc.Decision(ctx, elixir)
	require.NoError(t, err)
	assert.Equal(t, procurement.ModeCraft, d.Mode)
	assert.Equal(t, 27.0, *d.UnitCost)
	assert.Nil(t, d.BuyPrice)
}

func TestService_Estimate(t *testing.T) {
	svc := newTestService(testPrices())
	ctx := context.Background()

	t.Run("Intermediate bought when cheaper", func(t *testing.T) {
		est, err := svc.Estimate(ctx, elixir)
		require.NoError(t, err)

		assert.Nil(t, est.MarketPrice)
		require.NotNil(t, est.CraftCost)
		assert.Equal(t, 27.0, *est.CraftCost)
		require.Len(t, est.Rows, 2)
		assert.Equal(t, water, est.Rows[0].ID)
		assert.Equal(t, 2, est.Rows[0].Quantity)
		assert.Equal(t, potion, est.Rows[1].ID)
		assert.Equal(t, 27.0, est.KnownTotal)
		assert.Empty(t, est.Unpriced)
	})

	t.Run("Root is crafted even when listed cheaper", func(t *testing.T) {
		est, err := svc.Estimate(ctx, potion)
		require.NoError(t, err)

		require.NotNil(t, est.MarketPrice)
		assert.Equal(t, 25.0, *est.MarketPrice)
		assert.Equal(t, "Zodiark", est.MarketOrigin)
		assert.Equal(t, 30.0, *est.CraftCost)
		assert.Equal(t, []BuyRow{{ID: herb, Name: "Herb", Quantity: 3, UnitPrice: ptr(10), Origin: "Odin", Total: ptr(30)}}, est.Rows)
	})

	t.Run("Unpriced rows are null and excluded", func(t *testing.T) {
		svc := newTestService(&staticNoPrices{})
		est, err := svc.Estimate(ctx, potion)
		require.NoError(t, err)

		assert.Nil(t, est.CraftCost)
		require.Len(t, est.Rows, 1)
		assert.Nil(t, est.Rows[0].Total)
		assert.Equal(t, []procurement.ItemID{herb}, est.Unpriced)
		assert.Zero(t, est.KnownTotal)
	})
}

func TestService_Errors(t *testing.T) {
	svc := newTestService(testPrices())
	ctx := context.Background()

	_, err := svc.Estimate(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = svc.Needs(ctx, 999)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = newTestService(failingOracle{}).Estimate(ctx, potion)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func ptr(f float64) *float64 {
	return &f
}
