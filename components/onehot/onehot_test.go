package onehot

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/pipegridgo/internal/frame"
)

func TestEncoder_EncodesCategoricalColumns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(map[string]any{"top_n": 10}, 0)
	require.NoError(t, err)
	enc := c.(*Encoder)

	X, err := frame.New(
		frame.NewNumeric("num", frame.Double, []float64{1, 2, 3}),
		frame.NewCategorical("color", frame.Categorical, []string{"red", "blue", "red"}),
	)
	require.NoError(t, err)

	require.NoError(t, enc.Fit(ctx, X, nil))
	out, _, err := enc.Transform(ctx, X, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"num", "color_blue", "color_red"}, out.Names())

	red, _ := out.Column("color_red")
	assert.Equal(t, frame.Double, red.Type())
	assert.Equal(t, []float64{1, 0, 1}, red.Floats())
	blue, _ := out.Column("color_blue")
	assert.Equal(t, []float64{0, 1, 0}, blue.Floats())
}

func TestEncoder_TopNLimitsCategories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(map[string]any{"top_n": 1}, 0)
	require.NoError(t, err)
	enc := c.(*Encoder)

	X, err := frame.New(
		frame.NewCategorical("color", frame.Categorical, []string{"red", "red", "blue"}),
	)
	require.NoError(t, err)

	require.NoError(t, enc.Fit(ctx, X, nil))
	out, _, err := enc.Transform(ctx, X, nil)
	require.NoError(t, err)

	// Only the most frequent category survives; other values encode as all
	// zeros.
	assert.Equal(t, []string{"color_red"}, out.Names())
	red, _ := out.Column("color_red")
	assert.Equal(t, []float64{1, 1, 0}, red.Floats())
}

func TestEncoder_FeatureProvenance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(map[string]any{"top_n": 10}, 0)
	require.NoError(t, err)
	enc := c.(*Encoder)

	X, err := frame.New(
		frame.NewCategorical("color", frame.Categorical, []string{"red", "blue"}),
		frame.NewNumeric("num", frame.Double, []float64{1, 2}),
	)
	require.NoError(t, err)
	require.NoError(t, enc.Fit(ctx, X, nil))

	want := map[string][]string{"color": {"color_blue", "color_red"}}
	if diff := cmp.Diff(want, enc.FeatureProvenance()); diff != "" {
		t.Errorf("unexpected provenance (-want +got):\n%s", diff)
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New(map[string]any{"top_n": 0}, 0)
	require.ErrorContains(t, err, "top_n must be positive")

	_, err = New(map[string]any{"nope": 1}, 0)
	require.ErrorContains(t, err, "unknown parameters [nope]")
}
