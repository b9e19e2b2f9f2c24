package component

// Base carries the identity and bound configuration shared by every
// component implementation. Embed it and implement the capability methods.
type Base struct {
	name       string
	parameters map[string]any
	seed       int64
}

// NewBase builds the shared component state. The parameters map is stored as
// given; factories pass the merged defaults-plus-overrides map.
func NewBase(name string, parameters map[string]any, seed int64) Base {
	if parameters == nil {
		parameters = map[string]any{}
	}
	return Base{name: name, parameters: parameters, seed: seed}
}

// Name returns the component's display name.
func (b Base) Name() string { return b.name }

// Parameters returns a copy of the bound configuration.
func (b Base) Parameters() map[string]any {
	out := make(map[string]any, len(b.parameters))
	for k, v := range b.parameters {
		out[k] = v
	}
	return out
}

// Seed returns the random seed the component was constructed with.
func (b Base) Seed() int64 { return b.seed }
