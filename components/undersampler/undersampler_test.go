package undersampler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/pipegridgo/internal/frame"
)

func imbalancedData() (*frame.Frame, frame.Column) {
	n := 12
	values := make([]float64, n)
	labels := make([]string, n)
	for i := range values {
		values[i] = float64(i)
		if i < 10 {
			labels[i] = "majority"
		} else {
			labels[i] = "minority"
		}
	}
	X, err := frame.New(frame.NewNumeric("a", frame.Double, values))
	if err != nil {
		panic(err)
	}
	return X, frame.NewCategorical("target", frame.Categorical, labels)
}

func TestUndersampler_ResamplesAtFitTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(map[string]any{"sampling_ratio": 0.5}, 7)
	require.NoError(t, err)
	u := c.(*Undersampler)

	X, y := imbalancedData()
	outX, outY, err := u.FitTransform(ctx, X, &y)
	require.NoError(t, err)

	// Minority has 2 rows; at ratio 0.5 the majority keeps at most 4.
	counts := map[string]int{}
	for _, v := range outY.Strings() {
		counts[v]++
	}
	assert.Equal(t, 2, counts["minority"])
	assert.Equal(t, 4, counts["majority"])
	assert.Equal(t, 6, outX.NumRows())
}

func TestUndersampler_SeedMakesResampleDeterministic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	X, y := imbalancedData()

	sample := func() []float64 {
		c, err := New(map[string]any{"sampling_ratio": 0.5}, 7)
		require.NoError(t, err)
		outX, _, err := c.(*Undersampler).FitTransform(ctx, X, &y)
		require.NoError(t, err)
		a, _ := outX.Column("a")
		return a.Floats()
	}

	assert.Equal(t, sample(), sample())
}

func TestUndersampler_TransformPassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(map[string]any{"sampling_ratio": 0.5}, 0)
	require.NoError(t, err)
	u := c.(*Undersampler)

	X, y := imbalancedData()
	outX, outY, err := u.Transform(ctx, X, &y)
	require.NoError(t, err)
	assert.Equal(t, X.NumRows(), outX.NumRows())
	assert.Equal(t, y.Len(), outY.Len())
}

func TestUndersampler_BalancedDataUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := New(map[string]any{"sampling_ratio": 1.0}, 0)
	require.NoError(t, err)
	u := c.(*Undersampler)

	X, err := frame.New(frame.NewNumeric("a", frame.Double, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	y := frame.NewCategorical("target", frame.Categorical, []string{"a", "a", "b", "b"})

	outX, _, err := u.FitTransform(ctx, X, &y)
	require.NoError(t, err)
	assert.Equal(t, 4, outX.NumRows())
}

func TestNew_RejectsInvalidRatio(t *testing.T) {
	t.Parallel()

	_, err := New(map[string]any{"sampling_ratio": 0.0}, 0)
	require.ErrorContains(t, err, "sampling_ratio must be in (0, 1]")

	_, err = New(map[string]any{"sampling_ratio": 1.5}, 0)
	require.ErrorContains(t, err, "sampling_ratio must be in (0, 1]")
}
