package undersampler

import "github.com/vk/pipegridgo/internal/component"

// Module implements the component.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *component.Registry) {
	r.Register(&component.Definition{
		Name:     "Undersampler",
		Kind:     component.KindTransformer,
		Defaults: map[string]any{"sampling_ratio": 0.25},
		New:      New,
	})
}
