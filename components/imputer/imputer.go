// Package imputer provides the built-in missing-value imputer component.
package imputer

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

var validCategoricalStrategies = map[string]bool{"most_frequent": true, "constant": true}
var validNumericStrategies = map[string]bool{"mean": true, "median": true, "most_frequent": true, "constant": true}

// Imputer fills missing values per column: numeric columns by mean, median,
// most-frequent or a constant; string-backed columns by most-frequent or a
// constant.
type Imputer struct {
	component.Base
	categoricalStrategy string
	numericStrategy     string
	fillValue           any

	numericFill     map[string]float64
	categoricalFill map[string]string
}

// New constructs an Imputer from merged parameters.
func New(parameters map[string]any, seed int64) (component.Component, error) {
	p := component.Params(parameters)
	if err := p.CheckAllowed("categorical_impute_strategy", "numeric_impute_strategy", "fill_value"); err != nil {
		return nil, err
	}
	categorical, err := p.String("categorical_impute_strategy")
	if err != nil {
		return nil, err
	}
	numeric, err := p.String("numeric_impute_strategy")
	if err != nil {
		return nil, err
	}
	if !validCategoricalStrategies[categorical] {
		return nil, fmt.Errorf("%s is an invalid categorical impute strategy", categorical)
	}
	if !validNumericStrategies[numeric] {
		return nil, fmt.Errorf("%s is an invalid numeric impute strategy", numeric)
	}
	return &Imputer{
		Base:                component.NewBase("Imputer", parameters, seed),
		categoricalStrategy: categorical,
		numericStrategy:     numeric,
		fillValue:           parameters["fill_value"],
	}, nil
}

// Fit learns the per-column fill values.
func (im *Imputer) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	im.numericFill = make(map[string]float64)
	im.categoricalFill = make(map[string]string)
	for _, col := range X.Columns() {
		if col.Type().Numeric() {
			fill, err := im.numericFillValue(col)
			if err != nil {
				return err
			}
			im.numericFill[col.Name()] = fill
			continue
		}
		fill, err := im.categoricalFillValue(col)
		if err != nil {
			return err
		}
		im.categoricalFill[col.Name()] = fill
	}
	return nil
}

// Transform replaces missing values with the fitted fill values. Columns the
// imputer never saw during fit pass through unchanged.
func (im *Imputer) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	if im.numericFill == nil {
		return nil, nil, fmt.Errorf("imputer must be fitted before transforming")
	}
	cols := X.Columns()
	out := make([]frame.Column, 0, len(cols))
	for _, col := range cols {
		if col.Type().Numeric() {
			if fill, ok := im.numericFill[col.Name()]; ok {
				col = fillNumeric(col, fill)
			}
		} else if fill, ok := im.categoricalFill[col.Name()]; ok {
			col = fillCategorical(col, fill)
		}
		out = append(out, col)
	}
	filled, err := frame.New(out...)
	if err != nil {
		return nil, nil, err
	}
	return filled, nil, nil
}

func (im *Imputer) numericFillValue(col frame.Column) (float64, error) {
	if im.numericStrategy == "constant" {
		f, err := component.Params{"fill_value": im.fillValue}.Float("fill_value")
		if err != nil {
			return 0, err
		}
		return f, nil
	}

	var present []float64
	for _, v := range col.Floats() {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return 0, nil
	}
	switch im.numericStrategy {
	case "mean":
		sum := 0.0
		for _, v := range present {
			sum += v
		}
		return sum / float64(len(present)), nil
	case "median":
		sort.Float64s(present)
		mid := len(present) / 2
		if len(present)%2 == 0 {
			return (present[mid-1] + present[mid]) / 2, nil
		}
		return present[mid], nil
	default: // most_frequent
		return mostFrequentFloat(present), nil
	}
}

func (im *Imputer) categoricalFillValue(col frame.Column) (string, error) {
	if im.categoricalStrategy == "constant" {
		s, err := component.Params{"fill_value": im.fillValue}.String("fill_value")
		if err != nil {
			return "", err
		}
		if s == "" {
			s = "missing_value"
		}
		return s, nil
	}
	return mostFrequentString(col.Strings()), nil
}

func fillNumeric(col frame.Column, fill float64) frame.Column {
	values := col.Floats()
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return frame.NewNumeric(col.Name(), col.Type(), out)
}

func fillCategorical(col frame.Column, fill string) frame.Column {
	values := col.Strings()
	out := make([]string, len(values))
	for i, v := range values {
		if v == "" {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return frame.NewCategorical(col.Name(), col.Type(), out)
}

// mostFrequentFloat returns the modal value, smallest first on ties.
func mostFrequentFloat(values []float64) float64 {
	counts := make(map[float64]int)
	for _, v := range values {
		counts[v]++
	}
	best, bestCount := 0.0, -1
	keys := make([]float64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

// mostFrequentString returns the modal non-missing value, alphabetically
// first on ties.
func mostFrequentString(values []string) string {
	counts := make(map[string]int)
	for _, v := range values {
		if v != "" {
			counts[v]++
		}
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best, bestCount := "", -1
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}
