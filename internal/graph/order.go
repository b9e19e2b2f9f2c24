package graph

import "fmt"

// generateOrder computes the topological compute order over the node set.
//
// The algorithm is Kahn's: repeatedly emit a node whose unemitted parents are
// exhausted. Ties between independent branches are broken by declaration
// order, so the earliest-declared ready node always runs first. This is a
// deliberate, documented choice; any deterministic order satisfying the edge
// constraints is acceptable, and declaration order is the one a reader of the
// definition can predict.
//
// Validation performed here, in order: cycle detection (the sort cannot
// consume every node), connectivity (every node must connect into a single
// weakly connected chain when the graph has more than one node), and the
// single-terminal check (exactly one node with no outgoing edges).
func (g *Graph) generateOrder() ([]string, error) {
	n := len(g.defs)
	if n == 0 {
		return nil, nil
	}

	indegree := make(map[string]int, n)
	outdegree := make(map[string]int, n)
	children := make(map[string][]string, n)
	for _, def := range g.defs {
		indegree[def.Name] = 0
	}
	for _, e := range g.edges() {
		parent, child := e[0], e[1]
		if parent == child {
			return nil, fmt.Errorf("%w: %q depends on itself", ErrCycle, child)
		}
		indegree[child]++
		outdegree[parent]++
		children[parent] = append(children[parent], child)
	}

	order := make([]string, 0, n)
	emitted := make(map[string]bool, n)
	for len(order) < n {
		picked := ""
		for _, def := range g.defs {
			if !emitted[def.Name] && indegree[def.Name] == 0 {
				picked = def.Name
				break
			}
		}
		if picked == "" {
			return nil, ErrCycle
		}
		emitted[picked] = true
		order = append(order, picked)
		for _, child := range children[picked] {
			indegree[child]--
		}
	}

	if n > 1 {
		if err := g.checkConnected(); err != nil {
			return nil, err
		}
		terminals := 0
		for _, def := range g.defs {
			if outdegree[def.Name] == 0 {
				terminals++
			}
		}
		if terminals != 1 {
			return nil, ErrMultipleFinal
		}
	}

	return order, nil
}

// checkConnected verifies weak connectivity: treating every edge as
// undirected, all nodes must be reachable from the first declared node. An
// isolated node, or a subgraph floating beside the main chain, fails here.
func (g *Graph) checkConnected() error {
	neighbors := make(map[string][]string, len(g.defs))
	for _, e := range g.edges() {
		neighbors[e[0]] = append(neighbors[e[0]], e[1])
		neighbors[e[1]] = append(neighbors[e[1]], e[0])
	}

	seen := make(map[string]bool, len(g.defs))
	stack := []string{g.defs[0].Name}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		stack = append(stack, neighbors[cur]...)
	}

	if len(seen) != len(g.defs) {
		return ErrNotConnected
	}
	return nil
}
