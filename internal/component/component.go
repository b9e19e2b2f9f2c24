// Package component defines the capability contract that pipeline components
// implement and the registration table that resolves component names to
// factories. The engine never inspects a component beyond this contract: a
// component is a black box with fit/transform/predict behavior, tagged with
// one of a closed set of kinds.
package component

import (
	"context"

	"github.com/vk/pipegridgo/internal/frame"
)

// Kind is the closed capability tag of a component. The engine dispatches on
// Kind rather than on dynamic type discovery.
type Kind int

const (
	KindTransformer Kind = iota + 1
	KindEstimator
	KindTargetTransformer
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTransformer:
		return "Transformer"
	case KindEstimator:
		return "Estimator"
	case KindTargetTransformer:
		return "TargetTransformer"
	default:
		return "Unknown"
	}
}

// Component is the minimal surface shared by every node in a graph.
type Component interface {
	// Name returns the component's display name, e.g. "Imputer".
	Name() string
	// Parameters returns the configuration the component was constructed
	// with, defaults included.
	Parameters() map[string]any
}

// Transformer consumes a feature table and produces a transformed feature
// table, optionally with a transformed target. A nil target output means the
// transformer left the target untouched.
type Transformer interface {
	Component
	Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error
	Transform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error)
}

// FitTransformer is an optional capability for transformers whose fit-time
// output differs from their transform-time output, such as samplers that
// resample rows during fit but pass data through unchanged at predict time.
// When a transformer implements it, the engine calls FitTransform on the fit
// pass instead of Fit followed by Transform.
type FitTransformer interface {
	Transformer
	FitTransform(ctx context.Context, X *frame.Frame, y *frame.Column) (*frame.Frame, *frame.Column, error)
}

// Estimator consumes features and a target during fit and produces a
// prediction series at predict time.
type Estimator interface {
	Component
	Fit(ctx context.Context, X *frame.Frame, y *frame.Column) error
	Predict(ctx context.Context, X *frame.Frame) (*frame.Column, error)
}

// TargetTransformer is a transformer that modifies the target and can map
// predictions back into the original target space.
type TargetTransformer interface {
	Transformer
	InverseTransform(ctx context.Context, y *frame.Column) (*frame.Column, error)
}

// ProvenanceReporter is an optional capability for transformers that create
// features from other features. The returned map relates each input column
// name to the output column names derived from it.
type ProvenanceReporter interface {
	FeatureProvenance() map[string][]string
}
