// Package onehot provides the built-in one-hot encoder component.
package onehot

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

// Encoder expands each categorical column into indicator columns, one per
// category observed during fit, named "<column>_<category>". Categories
// beyond the top_n most frequent are dropped; unseen values at transform
// time encode as all zeros.
type Encoder struct {
	component.Base
	topN int

	categories map[string][]string
	colOrder   []string
}

// New constructs an Encoder from merged parameters.
func New(parameters map[string]any, seed int64) (component.Component, error) {
	p := component.Params(parameters)
	if err := p.CheckAllowed("top_n"); err != nil {
		return nil, err
	}
	topN, err := p.Int("top_n")
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		return nil, fmt.Errorf("top_n must be positive, got %d", topN)
	}
	return &Encoder{
		Base: component.NewBase("One Hot Encoder", parameters, seed),
		topN: topN,
	}, nil
}

// Fit records the categories of every categorical column.
func (e *Encoder) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	e.categories = make(map[string][]string)
	e.colOrder = nil
	for _, col := range X.Columns() {
		if col.Type() != frame.Categorical {
			continue
		}
		e.colOrder = append(e.colOrder, col.Name())
		e.categories[col.Name()] = topCategories(col.Strings(), e.topN)
	}
	return nil
}

// Transform replaces each fitted categorical column with its indicator
// columns, preserving the positions of all other columns.
func (e *Encoder) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	if e.categories == nil {
		return nil, nil, fmt.Errorf("one hot encoder must be fitted before transforming")
	}
	var out []frame.Column
	for _, col := range X.Columns() {
		cats, encoded := e.categories[col.Name()]
		if !encoded {
			out = append(out, col)
			continue
		}
		values := col.Strings()
		for _, cat := range cats {
			indicator := make([]float64, len(values))
			for i, v := range values {
				if v == cat {
					indicator[i] = 1
				}
			}
			out = append(out, frame.NewNumeric(col.Name()+"_"+cat, frame.Double, indicator))
		}
	}
	encoded, err := frame.New(out...)
	if err != nil {
		return nil, nil, err
	}
	return encoded, nil, nil
}

// FeatureProvenance reports which indicator columns each input column
// produced.
func (e *Encoder) FeatureProvenance() map[string][]string {
	out := make(map[string][]string, len(e.categories))
	for _, col := range e.colOrder {
		derived := make([]string, 0, len(e.categories[col]))
		for _, cat := range e.categories[col] {
			derived = append(derived, col+"_"+cat)
		}
		out[col] = derived
	}
	return out
}

// topCategories returns up to n categories ordered most frequent first,
// alphabetical on ties. Missing values do not form a category.
func topCategories(values []string, n int) []string {
	counts := make(map[string]int)
	for _, v := range values {
		if v != "" {
			counts[v]++
		}
	}
	cats := make([]string, 0, len(counts))
	for c := range counts {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if counts[cats[i]] != counts[cats[j]] {
			return counts[cats[i]] > counts[cats[j]]
		}
		return cats[i] < cats[j]
	})
	if len(cats) > n {
		cats = cats[:n]
	}
	// Stable output order for indicator columns.
	sort.Strings(cats)
	return cats
}
