package graph

import "fmt"

// Stats is a point-in-time snapshot of the graph's size and activity,
// grounded on the teacher's monitoring.MetricsSummary idea and reduced
// to what a single-threaded in-process engine can report without a
// metrics backend.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	PulseCount uint64
}

// Stats reports the current node/edge counts and the number of pulses
// fired so far.
func (g *Graph) Stats() Stats {
	edges := 0
	for _, n := range g.nodes {
		edges += len(n.dependents)
	}
	return Stats{NodeCount: len(g.nodes), EdgeCount: edges, PulseCount: g.pulseCount}
}

// DebugDump renders the current node and edge set, one line per cell, in
// the teacher's structured-logging texture rather than as a diagram.
func (g *Graph) DebugDump() string {
	out := ""
	for id, n := range g.nodes {
		out += fmt.Sprintf("%s name=%q kind=%s dependents=%v observers=%v weak=%d\n",
			id, n.name, n.kind, n.dependents, n.observers, n.weakCount)
	}
	return out
}
