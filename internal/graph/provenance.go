package graph

import (
	"sort"

	"github.com/vk/pipegridgo/internal/component"
)

// computeProvenance relates each original input column to the feature names
// that were ultimately created from it, as observed by the terminal node.
//
// Each fitted transformer that reports provenance contributes its own
// input-to-output mapping. An output created from an original column extends
// that column's ancestry directly; an output created from a derived column is
// folded into the ancestry of whichever original column produced it. Features
// the terminal node never saw are discarded, and original columns with no
// derived features are dropped entirely.
func (g *Graph) computeProvenance(inputNames []string) map[string][]string {
	if len(g.order) == 0 {
		return map[string][]string{}
	}

	ancestry := make(map[string]map[string]struct{}, len(inputNames))
	for _, col := range inputNames {
		ancestry[col] = make(map[string]struct{})
	}

	for _, name := range g.order {
		n := g.nodes[name]
		if n.def.Kind == component.KindEstimator {
			continue
		}
		reporter, ok := n.instance.(component.ProvenanceReporter)
		if !ok {
			continue
		}
		for in, outs := range reporter.FeatureProvenance() {
			if children, isOriginal := ancestry[in]; isOriginal {
				for _, out := range outs {
					children[out] = struct{}{}
				}
				continue
			}
			for _, children := range ancestry {
				if _, derived := children[in]; derived {
					for _, out := range outs {
						children[out] = struct{}{}
					}
				}
			}
		}
	}

	terminalFeatures := make(map[string]struct{})
	for _, f := range g.inputFeatureNames[g.order[len(g.order)-1]] {
		terminalFeatures[f] = struct{}{}
	}

	provenance := make(map[string][]string)
	for col, children := range ancestry {
		var kept []string
		for child := range children {
			if _, used := terminalFeatures[child]; used {
				kept = append(kept, child)
			}
		}
		if len(kept) == 0 {
			continue
		}
		sort.Strings(kept)
		provenance[col] = kept
	}
	return provenance
}
