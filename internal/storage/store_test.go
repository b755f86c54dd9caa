package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/drakos74/curve-fit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGateway(t *testing.T) {
	ctx := context.Background()
	g := NewMockGateway()

	samples := []model.Sample{{X: 1, Y: 2}, {X: 3, Y: 4}}
	require.NoError(t, g.Store(ctx, samples, "linear", "y = 1x + 1"))
	require.NoError(t, g.Store(ctx, samples[:1], "cubic", "y = 0x^3 + 0x^2 + 0x + 2"))

	assert.Equal(t, []model.Row{
		{X: 1, Y: 2, CurveType: "linear", FittedEquation: "y = 1x + 1"},
		{X: 3, Y: 4, CurveType: "linear", FittedEquation: "y = 1x + 1"},
		{X: 1, Y: 2, CurveType: "cubic", FittedEquation: "y = 0x^3 + 0x^2 + 0x + 2"},
	}, g.Rows)

	loaded, err := g.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Sample{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 1, Y: 2}}, loaded)

	g.StoreErr = errors.New("disk full")
	err = g.Store(ctx, samples, "linear", "")
	assert.True(t, errors.Is(err, CouldNotStoreErr))

	g.LoadErr = errors.New("locked")
	_, err = g.LoadAll(ctx)
	assert.True(t, errors.Is(err, CouldNotLoadErr))
}

func TestVoidGateway(t *testing.T) {
	ctx := context.Background()
	g := NewVoidGateway()

	require.NoError(t, g.Store(ctx, []model.Sample{{X: 1, Y: 2}}, "linear", "y = 1x + 1"))
	loaded, err := g.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, len(loaded))
}
