package graph

import "github.com/smilemakc/reactive/internal/domain"

// Bind installs edges source -> t for each t in targets, after running the
// pre-checks of §4.2. The self-dependency and cycle checks run against a
// tentative edge set and complete before any edge is committed; on
// failure, no observable state changes (I1) and the rejection is logged
// at warn level. Repeat-dependency detection never rejects a bind and
// runs once the new edges are in place.
//
// Targets are attached to source's dependent list, and source is attached
// to each target's observer list, in the order targets is given — this is
// the order a capture-style closure discovered its reads in, or the order
// an arguments-style bind listed them (§4.4).
func (g *Graph) Bind(source domain.NodeID, targets []domain.NodeID) error {
	sn, ok := g.nodes[source]
	if !ok {
		return &domain.NullHandleAccessError{Node: source, Op: "bind"}
	}

	// Pre-check (a): self-dependency.
	for _, t := range targets {
		if t == source {
			g.log.Warn().Str("source", source.String()).Msg("bind rejected: self-dependency")
			return &domain.CycleDependencyError{Source: source, Target: t}
		}
	}

	// Pre-check (b): cycle detection over the tentative edge set (source's
	// existing dependents plus the proposed new ones), via DFS from
	// source looking for a back-edge into the recursion stack.
	tentative := g.tentativeDependents(source, targets)
	if cyclePath, found := g.detectCycle(source, tentative); found {
		g.log.Warn().Str("source", source.String()).Str("target", cyclePath[1].String()).Msg("bind rejected: would create a cycle")
		return &domain.CycleDependencyError{Source: source, Target: cyclePath[1], Path: cyclePath}
	}

	// All checks passed: commit the edges, then run pre-check (c) —
	// repeat-dependency detection — for each target: ignoring the direct
	// edge source->t, does source still reach t through another path?
	// Checking once every edge is in place catches a diamond formed by two
	// targets of the same Bind call in whichever order they are listed.
	for _, t := range targets {
		g.addEdge(source, t)
	}
	for _, t := range targets {
		if g.reaches(source, t, &t) {
			sn.repeatDeps[t] = struct{}{}
			g.log.Info().Str("source", source.String()).Str("target", t.String()).Msg("repeat dependency detected, deferring notification")
		}
	}
	return nil
}

// tentativeDependents returns source's current dependent list plus
// targets, used only to build the graph view the cycle check walks; it
// does not mutate the graph.
func (g *Graph) tentativeDependents(source domain.NodeID, targets []domain.NodeID) func(domain.NodeID) []domain.NodeID {
	extra := map[domain.NodeID][]domain.NodeID{source: append(append([]domain.NodeID{}, g.nodes[source].dependents...), targets...)}
	return func(id domain.NodeID) []domain.NodeID {
		if id == source {
			return extra[source]
		}
		if n, ok := g.nodes[id]; ok {
			return n.dependents
		}
		return nil
	}
}

// detectCycle runs classic two-color DFS (visited / in-recursion-stack)
// from start over the dependents relation given by deps, reporting the
// first back-edge found as a path from start back to start.
func (g *Graph) detectCycle(start domain.NodeID, deps func(domain.NodeID) []domain.NodeID) ([]domain.NodeID, bool) {
	visited := make(map[domain.NodeID]bool)
	onStack := make(map[domain.NodeID]bool)
	var path []domain.NodeID

	var visit func(domain.NodeID) bool
	visit = func(id domain.NodeID) bool {
		visited[id] = true
		onStack[id] = true
		path = append(path, id)
		for _, dep := range deps(id) {
			if onStack[dep] {
				path = append(path, dep)
				return true
			}
			if !visited[dep] && visit(dep) {
				return true
			}
		}
		onStack[id] = false
		path = path[:len(path)-1]
		return false
	}

	if visit(start) {
		return path, true
	}
	return nil, false
}

// reaches reports whether source can already reach target by following
// committed dependent edges, optionally ignoring the single direct edge
// source->ignore (Bind passes each target here, so that the direct edge
// being checked does not count as a second path; nil means no edge is
// ignored).
func (g *Graph) reaches(source, target domain.NodeID, ignore *domain.NodeID) bool {
	visited := make(map[domain.NodeID]bool)
	var walk func(domain.NodeID) bool
	walk = func(id domain.NodeID) bool {
		if visited[id] {
			return false
		}
		visited[id] = true
		n, ok := g.nodes[id]
		if !ok {
			return false
		}
		for _, dep := range n.dependents {
			if ignore != nil && id == source && dep == *ignore {
				continue
			}
			if dep == target {
				return true
			}
			if walk(dep) {
				return true
			}
		}
		return false
	}
	return walk(source)
}

// addEdge commits a single source->target edge: the reverse-set update of
// I2, appended to both ordered lists.
func (g *Graph) addEdge(source, target domain.NodeID) {
	sn := g.nodes[source]
	tn := g.nodes[target]
	if _, ok := sn.depSet[target]; ok {
		return // already bound; re-binding the same pair is a no-op
	}
	sn.dependents = append(sn.dependents, target)
	sn.depSet[target] = struct{}{}
	tn.observers = append(tn.observers, source)
	tn.obsSet[source] = struct{}{}
}

// Unbind removes all edges source -> *, dropping source from each
// target's observer list (§4.2). Used before a Computed cell is rebound
// (§4.4: "reset, then re-bound").
func (g *Graph) Unbind(source domain.NodeID) {
	sn, ok := g.nodes[source]
	if !ok {
		return
	}
	for _, t := range sn.dependents {
		if tn, ok := g.nodes[t]; ok {
			removeID(&tn.observers, source)
			delete(tn.obsSet, source)
		}
	}
	sn.dependents = nil
	sn.depSet = make(map[domain.NodeID]struct{})
	sn.repeatDeps = make(map[domain.NodeID]struct{})
}

func removeID(list *[]domain.NodeID, id domain.NodeID) {
	s := *list
	for i, x := range s {
		if x == id {
			*list = append(s[:i], s[i+1:]...)
			return
		}
	}
}
