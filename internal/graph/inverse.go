package graph

import (
	"context"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/frame"
)

// InverseTransform maps predictions back into the original target space by
// walking the target channel from the terminal node towards the roots and
// applying each target transformer's inverse along the way. Because the walk
// runs terminal-first, the inverses apply in strict reverse of the forward
// transform order. Nodes on the chain that mutate the target without being
// target transformers, such as samplers, are passed over.
func (g *Graph) InverseTransform(ctx context.Context, y *frame.Column) (*frame.Column, error) {
	if len(g.order) == 0 {
		return y, nil
	}

	out := y
	current := g.order[len(g.order)-1]
	for {
		parent, ok := g.yParent(current)
		if !ok {
			return out, nil
		}
		n := g.nodes[parent]
		if n.instance == nil {
			return nil, ErrNotInstantiated
		}
		if tt, isTarget := n.instance.(component.TargetTransformer); isTarget {
			var err error
			out, err = tt.InverseTransform(ctx, out)
			if err != nil {
				return nil, err
			}
		}
		current = parent
	}
}

// yParent returns the node feeding the target channel of the named node, if
// any. The root token "y" ends the chain.
func (g *Graph) yParent(name string) (string, bool) {
	for _, ref := range g.nodes[name].inputs {
		if ref != RootY && isYRef(ref) {
			return refNode(ref), true
		}
	}
	return "", false
}
