package graph

import (
	"context"
	"fmt"

	"github.com/vk/pipegridgo/internal/ctxlog"
	"github.com/vk/pipegridgo/internal/frame"
)

// Fit runs one fit pass over the whole compute order: every transformer is
// fit and applied, every estimator is fit, and the terminal estimator's
// predictions are skipped. Feature provenance is derived from the fitted
// transformers afterwards. Fitting an empty graph is a no-op.
func (g *Graph) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Fitting component graph.", "nodes", len(g.order), "rows", X.NumRows())

	p := g.newPass(X, y, true)
	if err := p.run(ctx, g.order); err != nil {
		return err
	}
	g.provenance = g.computeProvenance(X.Names())
	return nil
}

// Predict runs one transform/predict pass over the whole compute order and
// returns the terminal node's output: a single prediction column named after
// the terminal node when it is an estimator, or its transformed feature table
// when it is a transformer. Predicting with an empty graph returns X
// unchanged.
func (g *Graph) Predict(ctx context.Context, X *frame.Frame) (*frame.Frame, error) {
	if len(g.order) == 0 {
		return X, nil
	}

	p := g.newPass(X, nil, false)
	if err := p.run(ctx, g.order); err != nil {
		return nil, err
	}

	terminal := g.order[len(g.order)-1]
	out := p.outputs[terminal]
	if out.isEstimator() {
		return frame.FromColumn(out.pred.Renamed(terminal)), nil
	}
	return out.x, nil
}

// FitFeatures fits and applies every component except the terminal one and
// returns the feature table the terminal component would be fed.
func (g *Graph) FitFeatures(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, error) {
	return g.featuresHelper(ctx, X, y, true)
}

// ComputeFinalComponentFeatures applies every already-fitted component except
// the terminal one and returns the feature table that would feed the
// terminal component. Cached target-channel outputs never appear in the
// returned table.
func (g *Graph) ComputeFinalComponentFeatures(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, error) {
	return g.featuresHelper(ctx, X, y, false)
}

func (g *Graph) featuresHelper(ctx context.Context, X *frame.Frame, y *frame.Column, fit bool) (*frame.Frame, error) {
	if len(g.order) == 0 {
		return X, nil
	}
	terminal := g.order[len(g.order)-1]
	if len(g.order) == 1 {
		g.inputFeatureNames[terminal] = X.Names()
		return X, nil
	}

	p := g.newPass(X, y, fit)
	if err := p.run(ctx, g.order[:len(g.order)-1]); err != nil {
		return nil, err
	}

	// Gather the terminal node's feature-channel inputs from the cache,
	// excluding anything flowing on the target channel.
	xParts, err := p.resolveXParts(g.nodes[terminal])
	if err != nil {
		return nil, err
	}
	features := X
	if len(xParts) > 0 {
		features, err = frame.ConcatColumns(xParts...)
		if err != nil {
			return nil, fmt.Errorf("gathering final component features: %w", err)
		}
	}
	if fit {
		g.inputFeatureNames[terminal] = features.Names()
	}
	return features, nil
}
