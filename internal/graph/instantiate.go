package graph

import (
	"context"
	"fmt"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/ctxlog"
)

// Instantiate constructs the live component instance for every node, merging
// the supplied per-node parameters over each component's declared defaults.
// Parameter keys for nodes not present in the graph are ignored.
//
// Instantiation is all-or-nothing: if any factory rejects its parameters the
// graph keeps no instances and may be instantiated again with corrected
// parameters. After a successful call, calling Instantiate again returns
// ErrReinstantiate.
func (g *Graph) Instantiate(ctx context.Context, parameters map[string]map[string]any) error {
	logger := ctxlog.FromContext(ctx)
	if g.instantiated {
		return ErrReinstantiate
	}
	g.instantiated = true

	instances := make(map[string]component.Component, len(g.defs))
	for _, def := range g.defs {
		n := g.nodes[def.Name]
		merged := mergeParameters(n.def.Defaults, parameters[def.Name])
		logger.Debug("Instantiating component.", "node", def.Name, "component", n.def.Name)
		instance, err := n.def.New(merged, g.seed)
		if err != nil {
			g.instantiated = false
			return fmt.Errorf("%w %q with parameters %v: %w", ErrInstantiate, def.Name, merged, err)
		}
		instances[def.Name] = instance
	}

	for name, instance := range instances {
		g.nodes[name].instance = instance
	}
	logger.Debug("Component graph instantiated.", "node_count", len(instances))
	return nil
}

// mergeParameters overlays user-supplied options on the declared defaults.
func mergeParameters(defaults, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
