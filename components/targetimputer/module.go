package targetimputer

import "github.com/vk/pipegridgo/internal/component"

// Module implements the component.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *component.Registry) {
	r.Register(&component.Definition{
		Name:     "Target Imputer",
		Kind:     component.KindTargetTransformer,
		Defaults: map[string]any{"impute_strategy": "mean"},
		New:      New,
	})
}
