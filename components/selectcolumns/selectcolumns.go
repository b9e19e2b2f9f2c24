// Package selectcolumns provides the built-in column selection component.
package selectcolumns

import (
	"context"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

// Selector keeps only the configured columns. Configured names absent from
// the input are ignored, so the same selector works across feature sets.
type Selector struct {
	component.Base
	columns []string
}

// New constructs a Selector from merged parameters.
func New(parameters map[string]any, seed int64) (component.Component, error) {
	p := component.Params(parameters)
	if err := p.CheckAllowed("columns"); err != nil {
		return nil, err
	}
	columns, err := p.Strings("columns")
	if err != nil {
		return nil, err
	}
	return &Selector{
		Base:    component.NewBase("Select Columns Transformer", parameters, seed),
		columns: columns,
	}, nil
}

// Fit is a no-op; selection depends only on parameters.
func (s *Selector) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	return nil
}

// Transform returns a frame holding only the configured columns, in
// configured order. Missing names are skipped.
func (s *Selector) Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error) {
	var cols []frame.Column
	for _, name := range s.columns {
		if c, ok := X.Column(name); ok {
			cols = append(cols, c)
		}
	}
	out, err := frame.New(cols...)
	if err != nil {
		return nil, nil, err
	}
	return out, nil, nil
}
