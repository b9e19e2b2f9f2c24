// Package baseline provides the built-in baseline estimators. They predict
// a constant learned from the training target and exist as the floor every
// real model has to beat.
package baseline

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

var validRegressorStrategies = map[string]bool{
	"mean":   true,
	"median": true,
}

// Regressor predicts the mean or median of the training target for every
// row.
type Regressor struct {
	component.Base
	strategy string

	constant float64
	fitted   bool
}

// Classifier predicts the most frequent training class for every row.
type Classifier struct {
	component.Base

	mode   string
	fitted bool
}

// NewRegressor constructs a Regressor from merged parameters.
func NewRegressor(parameters map[string]any, seed int64) (component.Component, error) {
	p := component.Params(parameters)
	if err := p.CheckAllowed("strategy"); err != nil {
		return nil, err
	}
	strategy, err := p.String("strategy")
	if err != nil {
		return nil, err
	}
	if !validRegressorStrategies[strategy] {
		return nil, fmt.Errorf("%s is an invalid baseline regressor strategy", strategy)
	}
	return &Regressor{
		Base:     component.NewBase("Baseline Regressor", parameters, seed),
		strategy: strategy,
	}, nil
}

// NewClassifier constructs a Classifier from merged parameters.
func NewClassifier(parameters map[string]any, seed int64) (component.Component, error) {
	p := component.Params(parameters)
	if err := p.CheckAllowed(); err != nil {
		return nil, err
	}
	return &Classifier{Base: component.NewBase("Baseline Classifier", parameters, seed)}, nil
}

// Fit learns the constant prediction from the target.
func (r *Regressor) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	if y == nil {
		return fmt.Errorf("baseline regressor requires a target to fit")
	}
	if !y.Type().Numeric() {
		return fmt.Errorf("baseline regressor requires a numeric target, got %s", y.Type())
	}
	present := make([]float64, 0, y.Len())
	for _, v := range y.Floats() {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return fmt.Errorf("baseline regressor cannot fit on an all-missing target")
	}
	switch r.strategy {
	case "mean":
		var sum float64
		for _, v := range present {
			sum += v
		}
		r.constant = sum / float64(len(present))
	case "median":
		sort.Float64s(present)
		n := len(present)
		if n%2 == 1 {
			r.constant = present[n/2]
		} else {
			r.constant = (present[n/2-1] + present[n/2]) / 2
		}
	}
	r.fitted = true
	return nil
}

// Predict returns the learned constant for every input row.
func (r *Regressor) Predict(ctx context.Context, X *frame.Frame) (*frame.Column, error) {
	if !r.fitted {
		return nil, fmt.Errorf("baseline regressor must be fitted before predicting")
	}
	values := make([]float64, X.NumRows())
	for i := range values {
		values[i] = r.constant
	}
	out := frame.NewNumeric("prediction", frame.Double, values)
	return &out, nil
}

// Fit learns the most frequent class, alphabetical on ties.
func (c *Classifier) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	if y == nil {
		return fmt.Errorf("baseline classifier requires a target to fit")
	}
	if y.Type().Numeric() {
		return fmt.Errorf("baseline classifier requires a categorical target, got %s", y.Type())
	}
	counts := make(map[string]int)
	for _, v := range y.Strings() {
		if v != "" {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return fmt.Errorf("baseline classifier cannot fit on an all-missing target")
	}
	for v, n := range counts {
		if c.mode == "" || n > counts[c.mode] || (n == counts[c.mode] && v < c.mode) {
			c.mode = v
		}
	}
	c.fitted = true
	return nil
}

// Predict returns the learned mode for every input row.
func (c *Classifier) Predict(ctx context.Context, X *frame.Frame) (*frame.Column, error) {
	if !c.fitted {
		return nil, fmt.Errorf("baseline classifier must be fitted before predicting")
	}
	values := make([]string, X.NumRows())
	for i := range values {
		values[i] = c.mode
	}
	out := frame.NewCategorical("prediction", frame.Categorical, values)
	return &out, nil
}
