package graph

import (
	"fmt"

	"github.com/vk/pipegridgo/internal/component"
)

// ComputeOrder returns the validated topological execution sequence.
func (g *Graph) ComputeOrder() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Definition returns the registry definition behind the named node. It is
// available before instantiation.
func (g *Graph) Definition(name string) (*component.Definition, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return n.def, nil
}

// Component returns the live component instance of the named node.
func (g *Graph) Component(name string) (component.Component, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	if n.instance == nil {
		return nil, ErrNotInstantiated
	}
	return n.instance, nil
}

// Inputs returns the declared input references of the named node,
// order-preserving, identical before and after instantiation.
func (g *Graph) Inputs(name string) ([]string, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	out := make([]string, len(n.inputs))
	copy(out, n.inputs)
	return out, nil
}

// LastComponentName returns the name of the terminal node.
func (g *Graph) LastComponentName() (string, error) {
	if len(g.order) == 0 {
		return "", ErrEdgelessGraph
	}
	return g.order[len(g.order)-1], nil
}

// LastComponent returns the terminal node's live instance.
func (g *Graph) LastComponent() (component.Component, error) {
	name, err := g.LastComponentName()
	if err != nil {
		return nil, err
	}
	return g.Component(name)
}

// Estimators returns every estimator instance in the graph, in compute
// order. It fails before instantiation, since there are no instances yet.
func (g *Graph) Estimators() ([]component.Estimator, error) {
	if !g.instantiated {
		return nil, fmt.Errorf("cannot get estimators until the component graph is instantiated: %w", ErrNotInstantiated)
	}
	var out []component.Estimator
	for _, name := range g.order {
		if e, ok := g.nodes[name].instance.(component.Estimator); ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// Components returns every live component instance in compute order.
func (g *Graph) Components() ([]component.Component, error) {
	if !g.instantiated {
		return nil, ErrNotInstantiated
	}
	out := make([]component.Component, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.nodes[name].instance)
	}
	return out, nil
}

// InputFeatureNames returns, per node, the column names the node observed on
// its most recent fit or predict invocation. The map is empty before the
// first pass and entries are overwritten on every subsequent one.
func (g *Graph) InputFeatureNames() map[string][]string {
	out := make(map[string][]string, len(g.inputFeatureNames))
	for name, cols := range g.inputFeatureNames {
		c := make([]string, len(cols))
		copy(c, cols)
		out[name] = c
	}
	return out
}

// FeatureProvenance returns the mapping from original input columns to the
// feature names derived from them, established during the last fit.
func (g *Graph) FeatureProvenance() map[string][]string {
	out := make(map[string][]string, len(g.provenance))
	for col, children := range g.provenance {
		c := make([]string, len(children))
		copy(c, children)
		out[col] = c
	}
	return out
}

// DefaultParameters aggregates the declared default parameters of every
// node's component, keyed by node name. Nodes whose component declares no
// defaults are omitted.
func (g *Graph) DefaultParameters() map[string]map[string]any {
	out := make(map[string]map[string]any)
	for _, def := range g.defs {
		defaults := g.nodes[def.Name].def.Defaults
		if len(defaults) == 0 {
			continue
		}
		params := make(map[string]any, len(defaults))
		for k, v := range defaults {
			params[k] = v
		}
		out[def.Name] = params
	}
	return out
}

// NodeDescription is one entry of a graph summary.
type NodeDescription struct {
	Name       string
	Component  string
	Kind       component.Kind
	Parameters map[string]any
}

// Describe summarizes every node in compute order: its name, component,
// kind, and parameters. Before instantiation the parameters are the
// component's declared defaults; afterwards they are the bound values.
func (g *Graph) Describe() []NodeDescription {
	out := make([]NodeDescription, 0, len(g.order))
	for _, name := range g.order {
		n := g.nodes[name]
		desc := NodeDescription{
			Name:      name,
			Component: n.def.Name,
			Kind:      n.def.Kind,
		}
		if n.instance != nil {
			desc.Parameters = n.instance.Parameters()
		} else {
			desc.Parameters = mergeParameters(n.def.Defaults, nil)
		}
		out = append(out, desc)
	}
	return out
}
