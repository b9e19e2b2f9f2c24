package graph

import (
	"reflect"
	"sort"
)

// Equal reports whether two graphs describe the same pipeline: identical
// node sets, identical edge sets, identical instantiation status and
// parameters, and identical random seed. The comparison is canonical, so the
// declaration order of the two definitions does not matter.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil {
		return false
	}
	if g.seed != other.seed || g.instantiated != other.instantiated {
		return false
	}
	if !reflect.DeepEqual(g.canonicalNodes(), other.canonicalNodes()) {
		return false
	}
	if !reflect.DeepEqual(g.canonicalEdges(), other.canonicalEdges()) {
		return false
	}
	return reflect.DeepEqual(g.canonicalParameters(), other.canonicalParameters())
}

// canonicalNodes maps node name to component name.
func (g *Graph) canonicalNodes() map[string]string {
	out := make(map[string]string, len(g.defs))
	for _, def := range g.defs {
		out[def.Name] = def.Component
	}
	return out
}

// canonicalEdges returns the sorted edge list, channel suffixes included, so
// "A.x" and "A.y" parents stay distinct.
func (g *Graph) canonicalEdges() []string {
	var out []string
	for _, def := range g.defs {
		for _, ref := range def.Inputs {
			if ref == RootX || ref == RootY {
				continue
			}
			out = append(out, ref+"->"+def.Name)
		}
	}
	sort.Strings(out)
	return out
}

// canonicalParameters maps node name to bound parameters after
// instantiation, or to declared defaults before it.
func (g *Graph) canonicalParameters() map[string]map[string]any {
	out := make(map[string]map[string]any, len(g.defs))
	for _, def := range g.defs {
		n := g.nodes[def.Name]
		if n.instance != nil {
			out[def.Name] = n.instance.Parameters()
			continue
		}
		out[def.Name] = mergeParameters(n.def.Defaults, nil)
	}
	return out
}
