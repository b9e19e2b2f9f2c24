package graph

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteDOT renders the graph as Graphviz DOT source. Nodes are labeled with
// their name, component and parameters; edges follow the declared input
// references with root tokens omitted. Output is deterministic: nodes appear
// in declaration order and parameters are sorted by key.
func (g *Graph) WriteDOT(w io.Writer, name string) error {
	if name == "" {
		name = "component_graph"
	}
	if _, err := fmt.Fprintf(w, "digraph %q {\n\trankdir=LR;\n\tnode [shape=record];\n", name); err != nil {
		return err
	}

	for _, desc := range g.Describe() {
		label := desc.Name
		if params := formatParameters(desc.Parameters); params != "" {
			label = desc.Name + "|" + params
		}
		if _, err := fmt.Fprintf(w, "\t%q [label=%q];\n", desc.Name, label); err != nil {
			return err
		}
	}

	for _, e := range g.edges() {
		if _, err := fmt.Fprintf(w, "\t%q -> %q;\n", e[0], e[1]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func formatParameters(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s : %v", k, params[k]))
	}
	return strings.Join(parts, `\l`)
}
