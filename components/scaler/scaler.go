// Package scaler provides the built-in standard scaler component.
package scaler

import (
	"context"
	"fmt"
	"math"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

// Scaler standardizes numeric columns to zero mean and unit variance.
// Non-numeric columns pass through unchanged.
type Scaler struct {
	component.Base

	means map[string]float64
	stds  map[string]float64
}

// New constructs a Scaler from merged parameters.
func New(parameters map[string]any, seed int64) (component.Component, error) {
	p := component.Params(parameters)
	if err := p.CheckAllowed(); err != nil {
		return nil, err
	}
	return &Scaler{Base: component.NewBase("Standard Scaler", parameters, seed)}, nil
}

// Fit learns the mean and standard deviation of each numeric column,
// ignoring missing values.
func (s *Scaler) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	s.means = make(map[string]float64)
	s.stds = make(map[string]float64)
	for _, col := range X.Columns() {
		if !col.Type().Numeric() {
			continue
		}
		mean, std := meanStd(col.Floats())
		s.means[col.Name()] = mean
		s.stds[col.Name()] = std
	}
	return nil
}

// Transform standardizes the fitted numeric columns. Scaled columns
// become Double regardless of their input type.
func (s *Scaler) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	if s.means == nil {
		return nil, nil, fmt.Errorf("standard scaler must be fitted before transforming")
	}
	out := make([]frame.Column, 0, X.NumCols())
	for _, col := range X.Columns() {
		mean, fitted := s.means[col.Name()]
		if !fitted {
			out = append(out, col)
			continue
		}
		std := s.stds[col.Name()]
		values := col.Floats()
		scaled := make([]float64, len(values))
		for i, v := range values {
			if math.IsNaN(v) {
				scaled[i] = v
				continue
			}
			if std == 0 {
				scaled[i] = 0
				continue
			}
			scaled[i] = (v - mean) / std
		}
		out = append(out, frame.NewNumeric(col.Name(), frame.Double, scaled))
	}
	scaled, err := frame.New(out...)
	if err != nil {
		return nil, nil, err
	}
	return scaled, nil, nil
}

func meanStd(values []float64) (float64, float64) {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, 0
	}
	mean := sum / float64(n)
	var sq float64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(n))
}
