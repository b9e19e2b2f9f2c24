package logtransform

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/pipegridgo/internal/frame"
)

func TestTransformer_RoundTripsPositiveTargets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(nil, 0)
	require.NoError(t, err)
	tr := c.(*Transformer)

	X := frame.Empty()
	y := frame.NewNumeric("target", frame.Double, []float64{1, math.E, 10})

	require.NoError(t, tr.Fit(ctx, X, &y))
	_, logged, err := tr.Transform(ctx, X, &y)
	require.NoError(t, err)
	assert.InDelta(t, 0, logged.Floats()[0], 1e-9)
	assert.InDelta(t, 1, logged.Floats()[1], 1e-9)

	restored, err := tr.InverseTransform(ctx, logged)
	require.NoError(t, err)
	for i, want := range y.Floats() {
		assert.InDelta(t, want, restored.Floats()[i], 1e-9)
	}
}

func TestTransformer_ShiftsNonPositiveTargets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(nil, 0)
	require.NoError(t, err)
	tr := c.(*Transformer)

	X := frame.Empty()
	y := frame.NewNumeric("target", frame.Double, []float64{-3, 0, 5})

	require.NoError(t, tr.Fit(ctx, X, &y))
	_, logged, err := tr.Transform(ctx, X, &y)
	require.NoError(t, err)

	// The smallest value shifts to one, so its log is zero.
	assert.InDelta(t, 0, logged.Floats()[0], 1e-9)

	restored, err := tr.InverseTransform(ctx, logged)
	require.NoError(t, err)
	for i, want := range y.Floats() {
		assert.InDelta(t, want, restored.Floats()[i], 1e-9)
	}
}

func TestTransformer_RequiresNumericTarget(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(nil, 0)
	require.NoError(t, err)
	tr := c.(*Transformer)

	cat := frame.NewCategorical("target", frame.Categorical, []string{"a"})
	require.ErrorContains(t, tr.Fit(ctx, frame.Empty(), &cat), "numeric target")
	require.ErrorContains(t, tr.Fit(ctx, frame.Empty(), nil), "requires a target")

	_, err = tr.InverseTransform(ctx, &cat)
	require.ErrorContains(t, err, "must be fitted")
}
