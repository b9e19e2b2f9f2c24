// Package dataset reads delimited data files into typed frames. Column
// types are inferred from the values: columns whose non-missing entries all
// parse as numbers become Integer or Double, columns of true/false become
// Boolean, everything else is Categorical. Empty cells are missing values.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vk/pipegridgo/internal/ctxlog"
	"github.com/vk/pipegridgo/internal/frame"
)

// Dataset is a loaded data file split into features and an optional target.
type Dataset struct {
	X *frame.Frame
	Y *frame.Column
}

// Load reads the CSV file at path. When target is non-empty, that column
// is split out as Y and excluded from X.
func Load(ctx context.Context, path, target string) (*Dataset, error) {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("data file %s is empty", path)
	}

	header := records[0]
	rows := records[1:]

	cols := make([]frame.Column, 0, len(header))
	var y *frame.Column
	targetFound := false
	for i, name := range header {
		raw := make([]string, len(rows))
		for r, rec := range rows {
			raw[r] = strings.TrimSpace(rec[i])
		}
		col := inferColumn(name, raw)
		if target != "" && name == target {
			y = &col
			targetFound = true
			continue
		}
		cols = append(cols, col)
	}
	if target != "" && !targetFound {
		return nil, fmt.Errorf("target column %q not found in %s", target, path)
	}

	X, err := frame.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("building frame from %s: %w", path, err)
	}
	logger.Debug("Dataset loaded.", "path", path, "rows", X.NumRows(), "columns", X.NumCols(), "target", target)
	return &Dataset{X: X, Y: y}, nil
}

// inferColumn picks the narrowest logical type that fits every non-missing
// value of the column.
func inferColumn(name string, raw []string) frame.Column {
	numeric := true
	integer := true
	boolean := true
	seen := false
	for _, v := range raw {
		if v == "" {
			continue
		}
		seen = true
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			numeric = false
			integer = false
		} else if f != math.Trunc(f) {
			integer = false
		}
		switch strings.ToLower(v) {
		case "true", "false":
		default:
			boolean = false
		}
	}

	switch {
	case seen && boolean:
		values := make([]float64, len(raw))
		for i, v := range raw {
			switch strings.ToLower(v) {
			case "true":
				values[i] = 1
			case "false":
				values[i] = 0
			default:
				values[i] = math.NaN()
			}
		}
		return frame.NewNumeric(name, frame.Boolean, values)

	case seen && numeric:
		values := make([]float64, len(raw))
		for i, v := range raw {
			if v == "" {
				values[i] = math.NaN()
				continue
			}
			values[i], _ = strconv.ParseFloat(v, 64)
		}
		typ := frame.Double
		if integer {
			typ = frame.Integer
		}
		return frame.NewNumeric(name, typ, values)

	default:
		return frame.NewCategorical(name, frame.Categorical, raw)
	}
}
