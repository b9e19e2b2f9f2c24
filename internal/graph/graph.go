// Package graph implements the component graph: a directed acyclic graph of
// named pipeline components (transformers, estimators and target
// transformers) with a validated topological compute order, instantiate-once
// lifecycle, and fit/transform/predict execution over typed feature tables.
//
// A graph is built from an ordered list of node definitions. Each node names
// a registered component and declares input references: the reserved root
// tokens "X" and "y" for the call-level feature table and target, or
// "<Node>", "<Node>.x", "<Node>.y" for another node's output channels.
package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/ctxlog"
)

// Reserved root tokens referring to the original call-level inputs rather
// than to any node's output.
const (
	RootX = "X"
	RootY = "y"
)

// NodeDef declares one node of a component graph: its unique name, the
// registered component it runs, and its input references. Definitions are
// ordered; declaration order is the deterministic tie-break for scheduling
// independent branches.
type NodeDef struct {
	Name      string
	Component string
	Inputs    []string
}

// node is the internal per-node state: the resolved registry definition, the
// declared inputs, and the live instance bound at instantiation time.
type node struct {
	name     string
	def      *component.Definition
	inputs   []string
	instance component.Component
}

// Graph is a component graph. It owns its nodes exclusively; a node or
// component instance is never shared across two graphs. Fit, Predict and the
// feature helpers run single-threaded passes over the compute order and keep
// per-pass state on the stack, but input-feature bookkeeping is graph state,
// so concurrent calls against one graph must be serialized by the caller.
type Graph struct {
	registry *component.Registry
	defs     []NodeDef
	nodes    map[string]*node
	order    []string
	seed     int64

	instantiated      bool
	inputFeatureNames map[string][]string
	provenance        map[string][]string
}

// Option configures a graph at construction time.
type Option func(*Graph)

// WithSeed sets the random seed passed to every component factory at
// instantiation. The default seed is 0.
func WithSeed(seed int64) Option {
	return func(g *Graph) { g.seed = seed }
}

// New validates the definition and constructs a component graph. Validation
// happens in a fixed sequence, each failure surfacing its own error kind:
// structural checks, component resolution, input-reference resolution, cycle
// detection, connectivity, and the single-terminal check.
func New(ctx context.Context, reg *component.Registry, defs []NodeDef, opts ...Option) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building component graph.", "node_count", len(defs))

	g := &Graph{
		registry:          reg,
		defs:              append([]NodeDef(nil), defs...),
		nodes:             make(map[string]*node, len(defs)),
		inputFeatureNames: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	for _, def := range g.defs {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: node with empty name", ErrInvalidDefinition)
		}
		if def.Name == RootX || def.Name == RootY {
			return nil, fmt.Errorf("%w: node name %q is a reserved root token", ErrInvalidDefinition, def.Name)
		}
		if def.Component == "" {
			return nil, fmt.Errorf("%w: node %q has no component reference", ErrInvalidDefinition, def.Name)
		}
		if _, exists := g.nodes[def.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, def.Name)
		}
		compDef, err := reg.Lookup(def.Component)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", def.Name, err)
		}
		g.nodes[def.Name] = &node{
			name:   def.Name,
			def:    compDef,
			inputs: append([]string(nil), def.Inputs...),
		}
	}

	if err := g.validateReferences(); err != nil {
		return nil, err
	}

	order, err := g.generateOrder()
	if err != nil {
		return nil, err
	}
	g.order = order
	logger.Debug("Component graph built.", "compute_order", g.order)
	return g, nil
}

// validateReferences checks every input reference against the node set and
// enforces the single-y-parent invariant.
func (g *Graph) validateReferences() error {
	for _, def := range g.defs {
		yParents := 0
		for _, ref := range def.Inputs {
			if ref == RootX {
				continue
			}
			if isYRef(ref) {
				yParents++
				if yParents > 1 {
					return fmt.Errorf("%w: %q", ErrMultipleYParents, def.Name)
				}
			}
			if ref == RootY {
				continue
			}
			parent := refNode(ref)
			if parent == "" {
				return fmt.Errorf("%w: node %q has empty input reference", ErrInvalidDefinition, def.Name)
			}
			if _, ok := g.nodes[parent]; !ok {
				return fmt.Errorf("%w: %q referenced by %q", ErrUnknownReference, parent, def.Name)
			}
		}
	}
	return nil
}

// isYRef reports whether an input reference carries the target channel:
// either the root token "y" or a "<Node>.y" channel reference.
func isYRef(ref string) bool {
	return ref == RootY || strings.HasSuffix(ref, ".y")
}

// refNode strips the channel suffix from an input reference, returning the
// bare node name. Root tokens are not valid arguments.
func refNode(ref string) string {
	if s, ok := strings.CutSuffix(ref, ".x"); ok {
		return s
	}
	if s, ok := strings.CutSuffix(ref, ".y"); ok {
		return s
	}
	return ref
}

// edges returns the dependency edge list (parent, child) derived from input
// references, excluding root tokens, in declaration order.
func (g *Graph) edges() [][2]string {
	var out [][2]string
	for _, def := range g.defs {
		for _, ref := range def.Inputs {
			if ref == RootX || ref == RootY {
				continue
			}
			out = append(out, [2]string{refNode(ref), def.Name})
		}
	}
	return out
}

// Seed returns the graph's random seed.
func (g *Graph) Seed() int64 { return g.seed }

// IsInstantiated reports whether Instantiate completed successfully.
func (g *Graph) IsInstantiated() bool { return g.instantiated }
