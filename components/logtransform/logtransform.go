// Package logtransform provides the built-in log target transformation
// component.
package logtransform

import (
	"context"
	"fmt"
	"math"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

// Transformer applies the natural logarithm to the target and exponentiates
// on inverse. Targets at or below zero are shifted so the smallest value
// maps to one before taking the log; the shift is undone on inverse.
type Transformer struct {
	component.Base

	shift  float64
	fitted bool
}

// New constructs a Transformer from merged parameters.
func New(parameters map[string]any, seed int64) (component.Component, error) {
	p := component.Params(parameters)
	if err := p.CheckAllowed(); err != nil {
		return nil, err
	}
	return &Transformer{Base: component.NewBase("Log Transformer", parameters, seed)}, nil
}

// Fit learns the shift that makes the target strictly positive.
func (t *Transformer) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	if y == nil {
		return fmt.Errorf("log transformer requires a target to fit")
	}
	if !y.Type().Numeric() {
		return fmt.Errorf("log transformer requires a numeric target, got %s", y.Type())
	}
	min := math.Inf(1)
	for _, v := range y.Floats() {
		if !math.IsNaN(v) && v < min {
			min = v
		}
	}
	t.shift = 0
	if min <= 0 {
		t.shift = 1 - min
	}
	t.fitted = true
	return nil
}

// Transform replaces the target with its (shifted) natural log. Features
// pass through unchanged.
func (t *Transformer) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	if !t.fitted {
		return nil, nil, fmt.Errorf("log transformer must be fitted before transforming")
	}
	if y == nil {
		return X, nil, nil
	}
	values := y.Floats()
	logged := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			logged[i] = v
			continue
		}
		logged[i] = math.Log(v + t.shift)
	}
	out := frame.NewNumeric(y.Name(), frame.Double, logged)
	return X, &out, nil
}

// InverseTransform exponentiates and removes the fitted shift, recovering
// the original target scale.
func (t *Transformer) InverseTransform(ctx context.Context, y *frame.Column) (*frame.Column, error) {
	if !t.fitted {
		return nil, fmt.Errorf("log transformer must be fitted before inverse transforming")
	}
	values := y.Floats()
	restored := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			restored[i] = v
			continue
		}
		restored[i] = math.Exp(v) - t.shift
	}
	out := frame.NewNumeric(y.Name(), frame.Double, restored)
	return &out, nil
}
