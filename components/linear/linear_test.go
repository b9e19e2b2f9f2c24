package linear

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/pipegridgo/internal/frame"
)

func TestRegressor_RecoversExactLinearRelation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(nil, 0)
	require.NoError(t, err)
	r := c.(*Regressor)

	// y = 2*a + 3*b + 1
	X, err := frame.New(
		frame.NewNumeric("a", frame.Double, []float64{1, 2, 3, 4, 5}),
		frame.NewNumeric("b", frame.Double, []float64{5, 3, 8, 1, 2}),
	)
	require.NoError(t, err)
	y := frame.NewNumeric("target", frame.Double, []float64{18, 14, 31, 12, 17})

	require.NoError(t, r.Fit(ctx, X, &y))

	preds, err := r.Predict(ctx, X)
	require.NoError(t, err)
	for i, want := range y.Floats() {
		assert.InDelta(t, want, preds.Floats()[i], 1e-6)
	}
}

func TestRegressor_IgnoresNonNumericColumns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(nil, 0)
	require.NoError(t, err)
	r := c.(*Regressor)

	X, err := frame.New(
		frame.NewNumeric("a", frame.Double, []float64{1, 2, 3}),
		frame.NewCategorical("label", frame.Categorical, []string{"x", "y", "z"}),
	)
	require.NoError(t, err)
	y := frame.NewNumeric("target", frame.Double, []float64{2, 4, 6})

	require.NoError(t, r.Fit(ctx, X, &y))

	preds, err := r.Predict(ctx, X)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, preds.Floats()[1], 1e-6)
}

func TestRegressor_ErrorsOnCollinearFeatures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(nil, 0)
	require.NoError(t, err)
	r := c.(*Regressor)

	X, err := frame.New(
		frame.NewNumeric("a", frame.Double, []float64{1, 2, 3}),
		frame.NewNumeric("twice_a", frame.Double, []float64{2, 4, 6}),
	)
	require.NoError(t, err)
	y := frame.NewNumeric("target", frame.Double, []float64{1, 2, 3})

	err = r.Fit(ctx, X, &y)
	require.ErrorContains(t, err, "singular system")
}

func TestRegressor_PredictRequiresFittedColumns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(nil, 0)
	require.NoError(t, err)
	r := c.(*Regressor)

	X, err := frame.New(frame.NewNumeric("a", frame.Double, []float64{1, 2, 3}))
	require.NoError(t, err)
	y := frame.NewNumeric("target", frame.Double, []float64{2, 4, 6})
	require.NoError(t, r.Fit(ctx, X, &y))

	other, err := frame.New(frame.NewNumeric("other", frame.Double, []float64{1}))
	require.NoError(t, err)
	_, err = r.Predict(ctx, other)
	require.ErrorContains(t, err, `missing fitted column "a"`)
}

func TestRegressor_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(nil, 0)
	require.NoError(t, err)
	r := c.(*Regressor)

	X, err := frame.New(frame.NewCategorical("c", frame.Categorical, []string{"a"}))
	require.NoError(t, err)
	y := frame.NewNumeric("target", frame.Double, []float64{1})

	require.ErrorContains(t, r.Fit(ctx, X, &y), "at least one numeric feature")
	require.ErrorContains(t, r.Fit(ctx, X, nil), "requires a target")

	_, err = r.Predict(ctx, X)
	require.ErrorContains(t, err, "must be fitted")
}
