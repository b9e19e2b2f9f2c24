// Package targetimputer provides the built-in target imputation component.
package targetimputer

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

var validStrategies = map[string]bool{
	"mean":          true,
	"median":        true,
	"most_frequent": true,
}

// Imputer fills missing values in the target and passes features through
// unchanged. Its inverse is the identity, since imputation cannot be
// undone on predictions.
type Imputer struct {
	component.Base
	strategy string

	fill   float64
	fitted bool
}

// New constructs an Imputer from merged parameters.
func New(parameters map[string]any, seed int64) (component.Component, error) {
	p := component.Params(parameters)
	if err := p.CheckAllowed("impute_strategy"); err != nil {
		return nil, err
	}
	strategy, err := p.String("impute_strategy")
	if err != nil {
		return nil, err
	}
	if !validStrategies[strategy] {
		return nil, fmt.Errorf("%s is an invalid target impute strategy", strategy)
	}
	return &Imputer{
		Base:     component.NewBase("Target Imputer", parameters, seed),
		strategy: strategy,
	}, nil
}

// Fit learns the fill value from the non-missing target entries.
func (t *Imputer) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	if y == nil {
		return fmt.Errorf("target imputer requires a target to fit")
	}
	if !y.Type().Numeric() {
		return fmt.Errorf("target imputer requires a numeric target, got %s", y.Type())
	}
	present := make([]float64, 0, y.Len())
	for _, v := range y.Floats() {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return fmt.Errorf("target imputer cannot fit on an all-missing target")
	}
	switch t.strategy {
	case "mean":
		t.fill = mean(present)
	case "median":
		t.fill = median(present)
	case "most_frequent":
		t.fill = mostFrequent(present)
	}
	t.fitted = true
	return nil
}

// Transform fills missing target values and leaves the features untouched.
func (t *Imputer) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	if !t.fitted {
		return nil, nil, fmt.Errorf("target imputer must be fitted before transforming")
	}
	if y == nil {
		return X, nil, nil
	}
	values := y.Floats()
	filled := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			filled[i] = t.fill
		} else {
			filled[i] = v
		}
	}
	out := frame.NewNumeric(y.Name(), y.Type(), filled)
	return X, &out, nil
}

// InverseTransform is the identity: filled targets stay filled.
func (t *Imputer) InverseTransform(ctx context.Context, y *frame.Column) (*frame.Column, error) {
	return y, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func mostFrequent(values []float64) float64 {
	counts := make(map[float64]int)
	for _, v := range values {
		counts[v]++
	}
	best := values[0]
	for v, c := range counts {
		if c > counts[best] || (c == counts[best] && v < best) {
			best = v
		}
	}
	return best
}
