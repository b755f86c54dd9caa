package json

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/drakos74/curve-fit/internal/model"
	"github.com/drakos74/curve-fit/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_Store(t *testing.T) {

	g, err := NewGateway(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	samples, err := g.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, len(samples))

	linear := []model.Sample{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	err = g.Store(ctx, linear, "linear", "y = 1x + 0")
	require.NoError(t, err)

	cubic := []model.Sample{{X: -1, Y: 0}, {X: 0.5, Y: -0.375}}
	err = g.Store(ctx, cubic, "cubic", "y = 1x^3 + 0x^2 + -1x + 0")
	require.NoError(t, err)

	samples, err = g.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, append(linear, cubic...), samples)

	b, err := os.ReadFile(g.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Equal(t, 5, len(lines))
	assert.Equal(t, `{"x":0,"y":0,"curveType":"linear","fittedEquation":"y = 1x + 0"}`, lines[0])
	assert.Contains(t, lines[4], `"curveType":"cubic"`)
}

func TestGateway_Corrupt(t *testing.T) {
	g, err := NewGateway(t.TempDir())
	require.NoError(t, err)

	err = os.WriteFile(g.Path(), []byte("{\"x\":1,\"y\":2}\nnot-json\n"), 0600)
	require.NoError(t, err)

	_, err = g.LoadAll(context.Background())
	assert.True(t, errors.Is(err, storage.CouldNotLoadErr))
}

func TestGateway_Cancelled(t *testing.T) {
	g, err := NewGateway(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = g.Store(ctx, []model.Sample{{X: 1, Y: 1}}, "linear", "y = 1x + 0")
	assert.True(t, errors.Is(err, storage.CouldNotStoreErr))
}

func TestNewGateway_NotADir(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "file")
	require.NoError(t, err)
	f.Close()

	_, err = NewGateway(f.Name())
	assert.Error(t, err)
}
