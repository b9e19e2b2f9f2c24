package linear

import "github.com/vk/pipegridgo/internal/component"

// Module implements the component.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *component.Registry) {
	r.Register(&component.Definition{
		Name:     "Linear Regressor",
		Kind:     component.KindEstimator,
		Defaults: map[string]any{},
		New:      New,
	})
}
