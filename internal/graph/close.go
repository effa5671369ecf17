package graph

import "github.com/smilemakc/reactive/internal/domain"

// Close cascades a close from node: every cell transitively reachable from
// node via observer edges (cells that read it, directly or indirectly)
// closes, and only those (I5, §8 "Cascade completeness"). If a pulse is
// currently in flight, the cascade is deferred until the outermost pulse
// completes (Open Question 3) rather than mutating the graph mid-walk.
func (g *Graph) Close(id domain.NodeID) {
	if g.pulseDepth > 0 {
		if n, ok := g.nodes[id]; ok && !n.pendingClose {
			n.pendingClose = true
			g.pending = append(g.pending, id)
		}
		return
	}
	g.closeNow(id)
}

func (g *Graph) closeNow(id domain.NodeID) {
	n, ok := g.nodes[id]
	if !ok || n.closed {
		return
	}

	// Collect the observer-transitive closure before mutating anything,
	// so the walk isn't confused by edges we remove as we go.
	var victims []domain.NodeID
	seen := map[domain.NodeID]bool{id: true}
	queue := []domain.NodeID{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		victims = append(victims, cur)
		cn, ok := g.nodes[cur]
		if !ok {
			continue
		}
		for _, obs := range cn.observers {
			if !seen[obs] {
				seen[obs] = true
				queue = append(queue, obs)
			}
		}
	}

	// Close leaves (observers) before their dependencies so that an
	// observer's Unbind doesn't try to touch an already-dropped node.
	for i := len(victims) - 1; i >= 0; i-- {
		v := victims[i]
		vn, ok := g.nodes[v]
		if !ok || vn.closed {
			continue
		}
		g.log.Info().Str("node", v.String()).Str("kind", vn.kind.String()).Msg("closing")
		g.Unbind(v)
		vn.closed = true
		delete(g.nodes, v)
	}
}

// Reset clears a Computed cell's bindings in place, leaving its identity,
// kind and policies untouched — the "first reset (edges cleared)" half of
// a rebind (§4.4).
func (g *Graph) Reset(id domain.NodeID) {
	g.Unbind(id)
}
