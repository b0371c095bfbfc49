// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/graphwalk/kpaths/graph"
	"github.com/graphwalk/kpaths/internal/set"
)

// GraphPath is an ordered edge sequence from a source vertex to a sink
// vertex, together with its total weight. The zero-length path
// (no edges) represents the trivial path from a vertex to itself.
type GraphPath struct {
	source graph.Node
	sink   graph.Node
	edges  []graph.WeightedEdge
	weight float64
}

// newGraphPath builds a GraphPath from an explicit source/sink pair and
// edge list. It does not validate the edges form a walk; callers within
// this package are required to have already established that invariant.
func newGraphPath(source, sink graph.Node, edges []graph.WeightedEdge, weight float64) GraphPath {
	return GraphPath{source: source, sink: sink, edges: edges, weight: weight}
}

// Source returns the start vertex of the path.
func (p GraphPath) Source() graph.Node { return p.source }

// Sink returns the end vertex of the path.
func (p GraphPath) Sink() graph.Node { return p.sink }

// Weight returns the total weight of the path, the sum of its edge
// weights.
func (p GraphPath) Weight() float64 { return p.weight }

// Len returns the number of edges on the path.
func (p GraphPath) Len() int { return len(p.edges) }

// Edges returns the edge sequence of the path. The caller must not
// mutate the returned slice.
func (p GraphPath) Edges() []graph.WeightedEdge { return p.edges }

// Vertices returns the vertex sequence visited by the path, source first
// and sink last. For the zero-length path it is the single-element slice
// [source] (== [sink]).
func (p GraphPath) Vertices() []graph.Node {
	if len(p.edges) == 0 {
		return []graph.Node{p.source}
	}
	out := make([]graph.Node, 0, len(p.edges)+1)
	out = append(out, p.edges[0].From())
	for _, e := range p.edges {
		out = append(out, e.To())
	}
	return out
}

// Simple reports whether the path visits no vertex more than once.
func (p GraphPath) Simple() bool {
	seen := make(set.Ints, len(p.edges)+1)
	for _, v := range p.Vertices() {
		if seen.Has(v.ID()) {
			return false
		}
		seen.Add(v.ID())
	}
	return true
}
