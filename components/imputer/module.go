package imputer

import "github.com/vk/pipegridgo/internal/component"

// Module implements the component.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *component.Registry) {
	r.Register(&component.Definition{
		Name: "Imputer",
		Kind: component.KindTransformer,
		Defaults: map[string]any{
			"categorical_impute_strategy": "most_frequent",
			"numeric_impute_strategy":     "mean",
			"fill_value":                  nil,
		},
		New: New,
	})
}
