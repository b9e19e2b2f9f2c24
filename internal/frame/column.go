package frame

import "math"

// Type is the logical type tag carried by a column. It survives selection,
// renaming and concatenation so that components downstream of a transformer
// see the types the transformer assigned, not re-inferred ones.
type Type int

const (
	Unknown Type = iota
	Double
	Integer
	Boolean
	Categorical
	NaturalLanguage
)

// String returns the display name of the logical type.
func (t Type) String() string {
	switch t {
	case Double:
		return "Double"
	case Integer:
		return "Integer"
	case Boolean:
		return "Boolean"
	case Categorical:
		return "Categorical"
	case NaturalLanguage:
		return "NaturalLanguage"
	default:
		return "Unknown"
	}
}

// Numeric reports whether values of this type are stored as floats.
func (t Type) Numeric() bool {
	return t == Double || t == Integer || t == Boolean
}

// Column is a single named, logically typed column of data. Numeric types
// (Double, Integer, Boolean) are stored as float64 with NaN marking missing
// values; Categorical and NaturalLanguage are stored as strings with ""
// marking missing values.
type Column struct {
	name    string
	typ     Type
	floats  []float64
	strings []string
}

// NewNumeric builds a column of a numeric logical type. It panics if typ is
// not numeric; that is a programmer error at the call site.
func NewNumeric(name string, typ Type, values []float64) Column {
	if !typ.Numeric() {
		panic("frame: NewNumeric called with non-numeric type " + typ.String())
	}
	return Column{name: name, typ: typ, floats: values}
}

// NewCategorical builds a column of a string-backed logical type. It panics
// if typ is numeric.
func NewCategorical(name string, typ Type, values []string) Column {
	if typ.Numeric() {
		panic("frame: NewCategorical called with numeric type " + typ.String())
	}
	return Column{name: name, typ: typ, strings: values}
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Type returns the column's logical type.
func (c Column) Type() Type { return c.typ }

// Len returns the number of rows in the column.
func (c Column) Len() int {
	if c.typ.Numeric() {
		return len(c.floats)
	}
	return len(c.strings)
}

// Floats returns the numeric payload, or nil for string-backed columns.
// The slice is shared; callers must not mutate it.
func (c Column) Floats() []float64 { return c.floats }

// Strings returns the string payload, or nil for numeric columns.
// The slice is shared; callers must not mutate it.
func (c Column) Strings() []string { return c.strings }

// Renamed returns a copy of the column under a new name.
func (c Column) Renamed(name string) Column {
	c.name = name
	return c
}

// Retyped returns a copy of the column tagged with a different logical type.
// The new type must have the same storage class as the old one.
func (c Column) Retyped(typ Type) Column {
	if typ.Numeric() != c.typ.Numeric() {
		panic("frame: Retyped cannot change storage class of column " + c.name)
	}
	c.typ = typ
	return c
}

// IsMissing reports whether the value at row i is missing.
func (c Column) IsMissing(i int) bool {
	if c.typ.Numeric() {
		return math.IsNaN(c.floats[i])
	}
	return c.strings[i] == ""
}

// SelectRows returns a copy of the column containing only the given rows,
// in the given order.
func (c Column) SelectRows(rows []int) Column {
	if c.typ.Numeric() {
		out := make([]float64, len(rows))
		for i, r := range rows {
			out[i] = c.floats[r]
		}
		c.floats = out
		return c
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = c.strings[r]
	}
	c.strings = out
	return c
}

// Equal reports whether two columns have the same name, type and values.
// NaNs compare equal so that missing values do not break equality.
func (c Column) Equal(o Column) bool {
	if c.name != o.name || c.typ != o.typ || c.Len() != o.Len() {
		return false
	}
	if c.typ.Numeric() {
		for i, v := range c.floats {
			if v != o.floats[i] && !(math.IsNaN(v) && math.IsNaN(o.floats[i])) {
				return false
			}
		}
		return true
	}
	for i, v := range c.strings {
		if v != o.strings[i] {
			return false
		}
	}
	return true
}
