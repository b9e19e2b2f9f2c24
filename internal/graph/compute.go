package graph

import (
	"context"
	"fmt"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/ctxlog"
	"github.com/vk/pipegridgo/internal/frame"
)

// nodeOutput is the per-node entry of the output cache for a single pass.
// Transformers populate the x and y channels; estimators populate pred.
type nodeOutput struct {
	x    *frame.Frame
	y    *frame.Column
	pred *frame.Column
}

func (o *nodeOutput) isEstimator() bool { return o.x == nil && o.y == nil }

// pass holds the transient state of one fit or predict walk over the compute
// order: the original root inputs, the output cache, the most recent target
// seen, and the list of nodes computed so far. A pass is created per call and
// discarded with it.
type pass struct {
	g           *Graph
	fit         bool
	X           *frame.Frame
	y           *frame.Column
	mostRecentY *frame.Column
	outputs     map[string]*nodeOutput
	computed    []string
}

func (g *Graph) newPass(X *frame.Frame, y *frame.Column, fit bool) *pass {
	return &pass{
		g:           g,
		fit:         fit,
		X:           X,
		y:           y,
		mostRecentY: y,
		outputs:     make(map[string]*nodeOutput, len(g.order)),
	}
}

// run walks the given slice of the compute order, executing each node after
// resolving its inputs against the cache. No node is entered before all of
// its resolved inputs are cached; the order guarantees that.
func (p *pass) run(ctx context.Context, order []string) error {
	logger := ctxlog.FromContext(ctx)
	for _, name := range order {
		n := p.g.nodes[name]
		if n.instance == nil {
			return ErrNotInstantiated
		}

		inX, inY, err := p.resolveInputs(n)
		if err != nil {
			return err
		}
		p.g.inputFeatureNames[name] = inX.Names()

		logger.Debug("Running component.", "node", name, "kind", n.def.Kind.String(), "fit", p.fit, "input_columns", inX.NumCols())
		out := &nodeOutput{}
		switch n.def.Kind {
		case component.KindTransformer, component.KindTargetTransformer:
			out.x, out.y, err = p.runTransformer(ctx, n, inX, inY)
		case component.KindEstimator:
			out.pred, err = p.runEstimator(ctx, n, inX, inY)
		default:
			err = fmt.Errorf("component %q has unknown kind %d", n.def.Name, n.def.Kind)
		}
		if err != nil {
			return fmt.Errorf("running component %q: %w", name, err)
		}

		if out.y != nil {
			p.mostRecentY = out.y
		}
		p.outputs[name] = out
		p.computed = append(p.computed, name)
	}
	return nil
}

func (p *pass) runTransformer(ctx context.Context, n *node, inX *frame.Frame, inY *frame.Column) (*frame.Frame, *frame.Column, error) {
	t, ok := n.instance.(component.Transformer)
	if !ok {
		return nil, nil, fmt.Errorf("component %q does not implement the transformer contract", n.def.Name)
	}
	if !p.fit {
		return t.Transform(ctx, inX, inY)
	}
	if ft, ok := t.(component.FitTransformer); ok {
		return ft.FitTransform(ctx, inX, inY)
	}
	if err := t.Fit(ctx, inX, inY); err != nil {
		return nil, nil, err
	}
	return t.Transform(ctx, inX, inY)
}

func (p *pass) runEstimator(ctx context.Context, n *node, inX *frame.Frame, inY *frame.Column) (*frame.Column, error) {
	e, ok := n.instance.(component.Estimator)
	if !ok {
		return nil, fmt.Errorf("component %q does not implement the estimator contract", n.def.Name)
	}
	if p.fit {
		if err := e.Fit(ctx, inX, inY); err != nil {
			return nil, err
		}
		// The terminal estimator is not asked to predict during fit; its
		// predictions have no downstream consumer on that pass.
		if n.name == p.g.order[len(p.g.order)-1] {
			return nil, nil
		}
	}
	return e.Predict(ctx, inX)
}

// resolveInputs turns a node's declared input references into the concrete
// feature table and target it will be called with.
func (p *pass) resolveInputs(n *node) (*frame.Frame, *frame.Column, error) {
	xParts, err := p.resolveXParts(n)
	if err != nil {
		return nil, nil, err
	}

	inX := p.X
	if len(xParts) > 0 {
		inX, err = frame.ConcatColumns(xParts...)
		if err != nil {
			return nil, nil, fmt.Errorf("resolving inputs of %q: %w", n.name, err)
		}
	}

	inY := p.mostRecentY
	if yIn, ok := p.resolveY(n); ok {
		inY = yIn
	}
	return inX, inY, nil
}

// resolveXParts collects the feature-channel inputs in declared order. When a
// node declares no explicit feature reference, the default input accumulates
// every prior transformer output in compute order and, for estimator nodes,
// every prior estimator's predictions as a named column — this is how a
// stacked final estimator receives engineered features plus upstream
// predictions. With nothing produced yet, the caller falls back to the
// original X.
func (p *pass) resolveXParts(n *node) ([]*frame.Frame, error) {
	var parts []*frame.Frame
	for _, ref := range n.inputs {
		if isYRef(ref) {
			continue
		}
		if ref == RootX {
			parts = append(parts, p.X)
			continue
		}
		parent := refNode(ref)
		out, ok := p.outputs[parent]
		if !ok {
			return nil, fmt.Errorf("input %q of node %q was not computed before use", parent, n.name)
		}
		parts = append(parts, parentFeatures(parent, out))
	}
	if parts != nil {
		return parts, nil
	}

	for _, prior := range p.computed {
		out := p.outputs[prior]
		if out.isEstimator() {
			if n.def.Kind == component.KindEstimator && out.pred != nil {
				parts = append(parts, frame.FromColumn(out.pred.Renamed(prior)))
			}
			continue
		}
		if out.x != nil {
			parts = append(parts, out.x)
		}
	}
	return parts, nil
}

// parentFeatures maps a cached node output to its feature-channel view. An
// estimator's predictions become a single column named after the node, so
// downstream consumers see them as a regular named feature.
func parentFeatures(parent string, out *nodeOutput) *frame.Frame {
	if out.isEstimator() {
		if out.pred == nil {
			return frame.Empty()
		}
		return frame.FromColumn(out.pred.Renamed(parent))
	}
	return out.x
}

// resolveY returns the explicit target input, if the node declares one that
// produced a value this pass. The boolean reports whether to override the
// running target.
func (p *pass) resolveY(n *node) (*frame.Column, bool) {
	for _, ref := range n.inputs {
		if ref == RootY {
			return p.y, true
		}
		if !isYRef(ref) {
			continue
		}
		out, ok := p.outputs[refNode(ref)]
		if ok && out.y != nil {
			return out.y, true
		}
	}
	return nil, false
}
