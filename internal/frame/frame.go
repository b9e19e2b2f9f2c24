// Package frame provides the column-typed table that carries tabular data
// through a component graph. A Frame is an ordered collection of logically
// typed columns; every operation preserves column order and type tags so that
// a component downstream of a transformer observes exactly the types the
// transformer produced.
package frame

import (
	"fmt"
)

// Frame is an ordered, name-indexed collection of columns. All columns in a
// frame have the same number of rows. The zero value is not usable; construct
// frames with New or Empty.
type Frame struct {
	cols  []Column
	index map[string]int
}

// Empty returns a frame with no columns and no rows.
func Empty() *Frame {
	return &Frame{index: make(map[string]int)}
}

// New builds a frame from the given columns, in order. It returns an error if
// two columns share a name or if the columns have ragged lengths.
func New(cols ...Column) (*Frame, error) {
	f := Empty()
	for _, c := range cols {
		if _, exists := f.index[c.Name()]; exists {
			return nil, fmt.Errorf("duplicate column name %q", c.Name())
		}
		if len(f.cols) > 0 && c.Len() != f.cols[0].Len() {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name(), c.Len(), f.cols[0].Len())
		}
		f.index[c.Name()] = len(f.cols)
		f.cols = append(f.cols, c)
	}
	return f, nil
}

// FromColumn wraps a single column in a frame.
func FromColumn(c Column) *Frame {
	f, err := New(c)
	if err != nil {
		// A single column cannot be ragged or duplicated.
		panic(err)
	}
	return f
}

// NumRows returns the number of rows, zero for an empty frame.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name()
	}
	return names
}

// Column returns the named column and whether it exists.
func (f *Frame) Column(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, false
	}
	return f.cols[i], true
}

// Columns returns a copy of the column slice in frame order.
func (f *Frame) Columns() []Column {
	out := make([]Column, len(f.cols))
	copy(out, f.cols)
	return out
}

// Select returns a new frame containing only the named columns, in the order
// given. It returns an error if any name is absent.
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		c, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("column %q not found", name)
		}
		cols = append(cols, c)
	}
	return New(cols...)
}

// Drop returns a new frame without the named columns. Names that are not
// present are ignored, matching the tolerant drop the engine needs when
// stripping target columns that may or may not exist.
func (f *Frame) Drop(names ...string) *Frame {
	dropped := make(map[string]struct{}, len(names))
	for _, n := range names {
		dropped[n] = struct{}{}
	}
	out := Empty()
	for _, c := range f.cols {
		if _, skip := dropped[c.Name()]; skip {
			continue
		}
		out.index[c.Name()] = len(out.cols)
		out.cols = append(out.cols, c)
	}
	return out
}

// SelectRows returns a new frame containing only the given rows, in order.
func (f *Frame) SelectRows(rows []int) *Frame {
	out := Empty()
	for _, c := range f.cols {
		out.index[c.Name()] = len(out.cols)
		out.cols = append(out.cols, c.SelectRows(rows))
	}
	return out
}

// Equal reports whether two frames have identical columns in identical order.
func (f *Frame) Equal(o *Frame) bool {
	if len(f.cols) != len(o.cols) {
		return false
	}
	for i, c := range f.cols {
		if !c.Equal(o.cols[i]) {
			return false
		}
	}
	return true
}

// ConcatColumns merges frames column-wise, preserving each column's logical
// type. When a later frame carries a column whose name already appeared, the
// later column replaces the earlier one in place, keeping the earlier
// position. All non-empty frames must agree on row count.
func ConcatColumns(frames ...*Frame) (*Frame, error) {
	out := Empty()
	rows := -1
	for _, f := range frames {
		if f == nil || f.NumCols() == 0 {
			continue
		}
		if rows == -1 {
			rows = f.NumRows()
		} else if f.NumRows() != rows {
			return nil, fmt.Errorf("cannot concatenate frames with %d and %d rows", rows, f.NumRows())
		}
		for _, c := range f.cols {
			if i, exists := out.index[c.Name()]; exists {
				out.cols[i] = c
				continue
			}
			out.index[c.Name()] = len(out.cols)
			out.cols = append(out.cols, c)
		}
	}
	return out, nil
}
