package graph

import (
	"context"
	"fmt"
	"math"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

// recorder collects component lifecycle events in call order so tests can
// assert on scheduling and plumbing.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

// stampTransformer passes its input through and appends one zero column
// named after its label, so downstream nodes reveal which transformers fed
// them.
type stampTransformer struct {
	component.Base
	label string
	rec   *recorder
}

func (t *stampTransformer) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	t.rec.add("fit:%s", t.label)
	return nil
}

func (t *stampTransformer) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	t.rec.add("transform:%s", t.label)
	stamp := frame.NewNumeric(t.label, frame.Double, make([]float64, X.NumRows()))
	out, err := frame.ConcatColumns(X, frame.FromColumn(stamp))
	if err != nil {
		return nil, nil, err
	}
	return out, nil, nil
}

// halveTarget is a target transformer that halves y and doubles it back on
// inverse. Features pass through untouched.
type halveTarget struct {
	component.Base
	rec *recorder
}

func (h *halveTarget) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	h.rec.add("fit:%s", h.Name())
	return nil
}

func (h *halveTarget) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	h.rec.add("transform:%s", h.Name())
	if y == nil {
		return X, nil, nil
	}
	values := y.Floats()
	halved := make([]float64, len(values))
	for i, v := range values {
		halved[i] = v / 2
	}
	out := frame.NewNumeric(y.Name(), frame.Double, halved)
	return X, &out, nil
}

func (h *halveTarget) InverseTransform(ctx context.Context, y *frame.Column) (*frame.Column, error) {
	values := y.Floats()
	doubled := make([]float64, len(values))
	for i, v := range values {
		doubled[i] = v * 2
	}
	out := frame.NewNumeric(y.Name(), frame.Double, doubled)
	return &out, nil
}

// shiftTarget is a target transformer that adds three to y and subtracts
// it back on inverse. Combined with halveTarget it makes the inverse chain
// order observable, since shift and scale do not commute.
type shiftTarget struct {
	component.Base
	rec *recorder
}

func (s *shiftTarget) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	s.rec.add("fit:%s", s.Name())
	return nil
}

func (s *shiftTarget) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	s.rec.add("transform:%s", s.Name())
	if y == nil {
		return X, nil, nil
	}
	values := y.Floats()
	shifted := make([]float64, len(values))
	for i, v := range values {
		shifted[i] = v + 3
	}
	out := frame.NewNumeric(y.Name(), frame.Double, shifted)
	return X, &out, nil
}

func (s *shiftTarget) InverseTransform(ctx context.Context, y *frame.Column) (*frame.Column, error) {
	values := y.Floats()
	unshifted := make([]float64, len(values))
	for i, v := range values {
		unshifted[i] = v - 3
	}
	out := frame.NewNumeric(y.Name(), frame.Double, unshifted)
	return &out, nil
}

// meanEstimator learns the mean of its target and predicts it for every
// row. It records the feature names it was fit on.
type meanEstimator struct {
	component.Base
	rec *recorder

	fitNames     []string
	mean         float64
	predictCalls int
}

func (e *meanEstimator) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	e.rec.add("fit:%s", e.Name())
	e.fitNames = X.Names()
	var sum float64
	var n int
	for _, v := range y.Floats() {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n > 0 {
		e.mean = sum / float64(n)
	}
	return nil
}

func (e *meanEstimator) Predict(ctx context.Context, X *frame.Frame) (*frame.Column, error) {
	e.rec.add("predict:%s", e.Name())
	e.predictCalls++
	values := make([]float64, X.NumRows())
	for i := range values {
		values[i] = e.mean
	}
	out := frame.NewNumeric("prediction", frame.Double, values)
	return &out, nil
}

// resampler keeps every other row during fit and passes through at
// transform time, mimicking a sampler's asymmetric behavior.
type resampler struct {
	component.Base
	rec *recorder
}

func (s *resampler) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	return nil
}

func (s *resampler) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	s.rec.add("transform:%s", s.Name())
	if y == nil {
		return X, nil, nil
	}
	out := *y
	return X, &out, nil
}

func (s *resampler) FitTransform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	s.rec.add("fittransform:%s", s.Name())
	var keep []int
	for i := 0; i < X.NumRows(); i += 2 {
		keep = append(keep, i)
	}
	sampledY := y.SelectRows(keep)
	return X.SelectRows(keep), &sampledY, nil
}

// splitTransformer replaces column "a" with derived columns "a_lo" and
// "a_hi" and reports that lineage.
type splitTransformer struct {
	component.Base
}

func (s *splitTransformer) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	return nil
}

func (s *splitTransformer) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	a, ok := X.Column("a")
	if !ok {
		return X, nil, nil
	}
	derived, err := frame.New(
		a.Renamed("a_lo"),
		a.Renamed("a_hi"),
	)
	if err != nil {
		return nil, nil, err
	}
	out, err := frame.ConcatColumns(X.Drop("a"), derived)
	if err != nil {
		return nil, nil, err
	}
	return out, nil, nil
}

func (s *splitTransformer) FeatureProvenance() map[string][]string {
	return map[string][]string{"a": {"a_lo", "a_hi"}}
}

// testRegistry registers the fake components used across the graph tests.
// The "Picky" component rejects any parameter value other than "ok", which
// exercises the instantiation failure path.
func testRegistry(rec *recorder) *component.Registry {
	reg := component.NewRegistry()
	reg.Register(&component.Definition{
		Name:     "Stamp",
		Kind:     component.KindTransformer,
		Defaults: map[string]any{"label": "stamp"},
		New: func(parameters map[string]any, seed int64) (component.Component, error) {
			label, _ := component.Params(parameters).String("label")
			return &stampTransformer{
				Base:  component.NewBase("Stamp", parameters, seed),
				label: label,
				rec:   rec,
			}, nil
		},
	})
	reg.Register(&component.Definition{
		Name:     "Halve Target",
		Kind:     component.KindTargetTransformer,
		Defaults: map[string]any{},
		New: func(parameters map[string]any, seed int64) (component.Component, error) {
			return &halveTarget{Base: component.NewBase("Halve Target", parameters, seed), rec: rec}, nil
		},
	})
	reg.Register(&component.Definition{
		Name:     "Shift Target",
		Kind:     component.KindTargetTransformer,
		Defaults: map[string]any{},
		New: func(parameters map[string]any, seed int64) (component.Component, error) {
			return &shiftTarget{Base: component.NewBase("Shift Target", parameters, seed), rec: rec}, nil
		},
	})
	reg.Register(&component.Definition{
		Name:     "Mean Estimator",
		Kind:     component.KindEstimator,
		Defaults: map[string]any{},
		New: func(parameters map[string]any, seed int64) (component.Component, error) {
			return &meanEstimator{Base: component.NewBase("Mean Estimator", parameters, seed), rec: rec}, nil
		},
	})
	reg.Register(&component.Definition{
		Name:     "Resampler",
		Kind:     component.KindTransformer,
		Defaults: map[string]any{},
		New: func(parameters map[string]any, seed int64) (component.Component, error) {
			return &resampler{Base: component.NewBase("Resampler", parameters, seed), rec: rec}, nil
		},
	})
	reg.Register(&component.Definition{
		Name:     "Split",
		Kind:     component.KindTransformer,
		Defaults: map[string]any{},
		New: func(parameters map[string]any, seed int64) (component.Component, error) {
			return &splitTransformer{Base: component.NewBase("Split", parameters, seed)}, nil
		},
	})
	reg.Register(&component.Definition{
		Name:     "Picky",
		Kind:     component.KindTransformer,
		Defaults: map[string]any{"mode": "ok"},
		New: func(parameters map[string]any, seed int64) (component.Component, error) {
			mode, _ := component.Params(parameters).String("mode")
			if mode != "ok" {
				return nil, fmt.Errorf("%s is an invalid mode", mode)
			}
			return &stampTransformer{
				Base:  component.NewBase("Picky", parameters, seed),
				label: "picky",
				rec:   rec,
			}, nil
		},
	})
	return reg
}

// trainingData builds a small two-feature numeric table and matching target.
func trainingData() (*frame.Frame, *frame.Column) {
	X, err := frame.New(
		frame.NewNumeric("a", frame.Double, []float64{1, 2, 3, 4}),
		frame.NewNumeric("b", frame.Double, []float64{10, 20, 30, 40}),
	)
	if err != nil {
		panic(err)
	}
	y := frame.NewNumeric("target", frame.Double, []float64{2, 4, 6, 8})
	return X, &y
}
