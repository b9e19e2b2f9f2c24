package baseline

import "github.com/vk/pipegridgo/internal/component"

// Module implements the component.Module interface for this package.
type Module struct{}

// Register registers both baseline estimators with the registry.
func (m *Module) Register(r *component.Registry) {
	r.Register(&component.Definition{
		Name:     "Baseline Regressor",
		Kind:     component.KindEstimator,
		Defaults: map[string]any{"strategy": "mean"},
		New:      NewRegressor,
	})
	r.Register(&component.Definition{
		Name:     "Baseline Classifier",
		Kind:     component.KindEstimator,
		Defaults: map[string]any{},
		New:      NewClassifier,
	})
}
