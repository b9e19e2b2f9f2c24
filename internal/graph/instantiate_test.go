package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantiate_MergesDefaultsAndOverrides(t *testing.T) {
	t.Parallel()
	reg := testRegistry(&recorder{})
	ctx := context.Background()

	g, err := New(ctx, reg, []NodeDef{
		{Name: "one", Component: "Stamp", Inputs: []string{"X"}},
		{Name: "two", Component: "Stamp", Inputs: []string{"one.x"}},
	})
	require.NoError(t, err)
	require.NoError(t, g.Instantiate(ctx, map[string]map[string]any{
		"two": {"label": "custom"},
	}))
	require.True(t, g.IsInstantiated())

	one, err := g.Component("one")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"label": "stamp"}, one.Parameters())

	two, err := g.Component("two")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"label": "custom"}, two.Parameters())
}

func TestInstantiate_Twice(t *testing.T) {
	t.Parallel()
	reg := testRegistry(&recorder{})
	ctx := context.Background()

	g, err := New(ctx, reg, []NodeDef{
		{Name: "one", Component: "Stamp", Inputs: []string{"X"}},
	})
	require.NoError(t, err)
	require.NoError(t, g.Instantiate(ctx, nil))
	require.ErrorIs(t, g.Instantiate(ctx, nil), ErrReinstantiate)
}

func TestInstantiate_FailureAllowsRetry(t *testing.T) {
	t.Parallel()
	reg := testRegistry(&recorder{})
	ctx := context.Background()

	g, err := New(ctx, reg, []NodeDef{
		{Name: "one", Component: "Stamp", Inputs: []string{"X"}},
		{Name: "picky", Component: "Picky", Inputs: []string{"one.x"}},
	})
	require.NoError(t, err)

	err = g.Instantiate(ctx, map[string]map[string]any{
		"picky": {"mode": "bad"},
	})
	require.ErrorIs(t, err, ErrInstantiate)
	assert.Contains(t, err.Error(), "bad is an invalid mode")
	assert.False(t, g.IsInstantiated())

	// A failed instantiation must bind no instances at all.
	_, err = g.Component("one")
	require.ErrorIs(t, err, ErrNotInstantiated)

	// The graph accepts corrected parameters afterwards.
	require.NoError(t, g.Instantiate(ctx, map[string]map[string]any{
		"picky": {"mode": "ok"},
	}))
	assert.True(t, g.IsInstantiated())
}

func TestInstantiate_IgnoresParametersForUnknownNodes(t *testing.T) {
	t.Parallel()
	reg := testRegistry(&recorder{})
	ctx := context.Background()

	g, err := New(ctx, reg, []NodeDef{
		{Name: "one", Component: "Stamp", Inputs: []string{"X"}},
	})
	require.NoError(t, err)
	require.NoError(t, g.Instantiate(ctx, map[string]map[string]any{
		"ghost": {"label": "ignored"},
	}))
}

func TestEstimators_RequiresInstantiation(t *testing.T) {
	t.Parallel()
	reg := testRegistry(&recorder{})
	ctx := context.Background()

	g, err := New(ctx, reg, []NodeDef{
		{Name: "one", Component: "Stamp", Inputs: []string{"X"}},
		{Name: "model", Component: "Mean Estimator", Inputs: []string{"one.x", "y"}},
	})
	require.NoError(t, err)

	_, err = g.Estimators()
	require.ErrorIs(t, err, ErrNotInstantiated)

	require.NoError(t, g.Instantiate(ctx, nil))
	ests, err := g.Estimators()
	require.NoError(t, err)
	require.Len(t, ests, 1)
	assert.Equal(t, "Mean Estimator", ests[0].Name())
}
