package onehot

import "github.com/vk/pipegridgo/internal/component"

// Module implements the component.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *component.Registry) {
	r.Register(&component.Definition{
		Name:     "One Hot Encoder",
		Kind:     component.KindTransformer,
		Defaults: map[string]any{"top_n": 10},
		New:      New,
	})
}
