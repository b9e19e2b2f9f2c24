// Package linear provides the built-in ordinary least squares regressor.
package linear

import (
	"context"
	"fmt"
	"math"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

// Regressor fits ordinary least squares over the numeric input columns. It
// solves the normal equations with Gaussian elimination and keeps the
// fitted column order so prediction selects the same features regardless
// of how the incoming frame is arranged.
type Regressor struct {
	component.Base

	features  []string
	weights   []float64
	intercept float64
	fitted    bool
}

// New constructs a Regressor from merged parameters.
func New(parameters map[string]any, seed int64) (component.Component, error) {
	p := component.Params(parameters)
	if err := p.CheckAllowed(); err != nil {
		return nil, err
	}
	return &Regressor{Base: component.NewBase("Linear Regressor", parameters, seed)}, nil
}

// Fit solves the normal equations X'Xw = X'y over the numeric columns.
// Rows containing a missing feature or target are skipped.
func (r *Regressor) Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error {
	if y == nil {
		return fmt.Errorf("linear regressor requires a target to fit")
	}
	if !y.Type().Numeric() {
		return fmt.Errorf("linear regressor requires a numeric target, got %s", y.Type())
	}
	r.features = nil
	for _, col := range X.Columns() {
		if col.Type().Numeric() {
			r.features = append(r.features, col.Name())
		}
	}
	if len(r.features) == 0 {
		return fmt.Errorf("linear regressor requires at least one numeric feature")
	}

	rows, target := r.designMatrix(X, y.Floats())
	if len(rows) == 0 {
		return fmt.Errorf("linear regressor has no complete rows to fit on")
	}
	d := len(r.features) + 1
	if len(rows) < d {
		return fmt.Errorf("linear regressor needs at least %d complete rows, got %d", d, len(rows))
	}

	// Accumulate X'X and X'y.
	ata := make([][]float64, d)
	for i := range ata {
		ata[i] = make([]float64, d)
	}
	atb := make([]float64, d)
	for k, row := range rows {
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				ata[i][j] += row[i] * row[j]
			}
			atb[i] += row[i] * target[k]
		}
	}

	solution, err := solve(ata, atb)
	if err != nil {
		return fmt.Errorf("fitting linear regressor: %w", err)
	}
	r.intercept = solution[0]
	r.weights = solution[1:]
	r.fitted = true
	return nil
}

// Predict applies the fitted weights. Missing features predict NaN for the
// affected row; columns absent from the input are an error.
func (r *Regressor) Predict(ctx context.Context, X *frame.Frame) (*frame.Column, error) {
	if !r.fitted {
		return nil, fmt.Errorf("linear regressor must be fitted before predicting")
	}
	cols := make([][]float64, len(r.features))
	for i, name := range r.features {
		c, ok := X.Column(name)
		if !ok {
			return nil, fmt.Errorf("linear regressor input is missing fitted column %q", name)
		}
		cols[i] = c.Floats()
	}
	n := X.NumRows()
	preds := make([]float64, n)
	for row := 0; row < n; row++ {
		v := r.intercept
		for i, w := range r.weights {
			v += w * cols[i][row]
		}
		preds[row] = v
	}
	out := frame.NewNumeric("prediction", frame.Double, preds)
	return &out, nil
}

// designMatrix builds complete rows of [1, features...] and the matching
// target values.
func (r *Regressor) designMatrix(X *frame.Frame, target []float64) ([][]float64, []float64) {
	cols := make([][]float64, len(r.features))
	for i, name := range r.features {
		c, _ := X.Column(name)
		cols[i] = c.Floats()
	}
	var rows [][]float64
	var ys []float64
	for row := 0; row < X.NumRows(); row++ {
		if math.IsNaN(target[row]) {
			continue
		}
		complete := true
		vec := make([]float64, len(r.features)+1)
		vec[0] = 1
		for i := range cols {
			v := cols[i][row]
			if math.IsNaN(v) {
				complete = false
				break
			}
			vec[i+1] = v
		}
		if !complete {
			continue
		}
		rows = append(rows, vec)
		ys = append(ys, target[row])
	}
	return rows, ys
}

// solve runs Gaussian elimination with partial pivoting on the system
// a*x = b. It mutates its arguments.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("singular system, features may be collinear")
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}
	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		v := b[row]
		for col := row + 1; col < n; col++ {
			v -= a[row][col] * x[col]
		}
		x[row] = v / a[row][row]
	}
	return x, nil
}
