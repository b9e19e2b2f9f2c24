// Package undersampler provides the built-in balanced undersampling
// component.
package undersampler

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

// Undersampler drops rows of majority target classes during fit so that no
// class exceeds sampling_ratio times the minority class count. At transform
// time it passes data through untouched, so prediction rows are never
// discarded.
type Undersampler struct {
	component.Base
	ratio float64
}

// New constructs an Undersampler from merged parameters.
func New(parameters map[string]any, seed int64) (component.Component, error) {
	p := component.Params(parameters)
	if err := p.CheckAllowed("sampling_ratio"); err != nil {
		return nil, err
	}
	ratio, err := p.Float("sampling_ratio")
	if err != nil {
		return nil, err
	}
	if ratio <= 0 || ratio > 1 {
		return nil, fmt.Errorf("sampling_ratio must be in (0, 1], got %v", ratio)
	}
	return &Undersampler{
		Base:  component.NewBase("Undersampler", parameters, seed),
		ratio: ratio,
	}, nil
}

// Fit is a no-op; resampling happens in FitTransform.
func (u *Undersampler) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	return nil
}

// Transform passes both features and target through unchanged.
func (u *Undersampler) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	if y == nil {
		return X, nil, nil
	}
	out := *y
	return X, &out, nil
}

// FitTransform resamples the training rows. The minority class defines the
// floor; each other class keeps at most ceil(minority / sampling_ratio)
// rows, chosen with the component's seed.
func (u *Undersampler) FitTransform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	if y == nil {
		return nil, nil, fmt.Errorf("undersampler requires a target to resample")
	}
	byClass := groupRows(y)
	if len(byClass) < 2 {
		out := *y
		return X, &out, nil
	}
	minority := math.MaxInt
	for _, rows := range byClass {
		if len(rows) < minority {
			minority = len(rows)
		}
	}
	limit := int(math.Ceil(float64(minority) / u.ratio))

	labels := make([]string, 0, len(byClass))
	for label := range byClass {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rng := rand.New(rand.NewSource(u.Seed()))
	var keep []int
	for _, label := range labels {
		rows := byClass[label]
		if len(rows) > limit {
			rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
			rows = rows[:limit]
		}
		keep = append(keep, rows...)
	}
	sort.Ints(keep)

	sampledY := y.SelectRows(keep)
	return X.SelectRows(keep), &sampledY, nil
}

// groupRows indexes row positions by target value.
func groupRows(y *frame.Column) map[string][]int {
	byClass := make(map[string][]int)
	if y.Type().Numeric() {
		for i, v := range y.Floats() {
			key := fmt.Sprintf("%v", v)
			byClass[key] = append(byClass[key], i)
		}
		return byClass
	}
	for i, v := range y.Strings() {
		byClass[v] = append(byClass[v], i)
	}
	return byClass
}
