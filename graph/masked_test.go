// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph_test

import (
	"math"
	"testing"

	"github.com/graphwalk/kpaths/graph"
	"github.com/graphwalk/kpaths/graph/simple"
)

func newLine(t *testing.T) *simple.WeightedDirectedGraph {
	t.Helper()
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(3), W: 1})
	return g
}

func TestMaskedHidesVertex(t *testing.T) {
	t.Parallel()

	g := newLine(t)
	m := graph.Masked{G: g, VertexHidden: func(id int64) bool { return id == 2 }}

	if m.Node(2) != nil {
		t.Error("hidden vertex 2 should not be returned by Node")
	}
	if m.HasEdgeFromTo(1, 2) {
		t.Error("edge into a hidden vertex should not be visible")
	}
	if m.HasEdgeFromTo(2, 3) {
		t.Error("edge out of a hidden vertex should not be visible")
	}
	if got := len(graph.NodesOf(m.Nodes())); got != 3 {
		t.Errorf("visible node count = %d, want 3", got)
	}
	if got := len(graph.NodesOf(m.From(1))); got != 0 {
		t.Errorf("From(1) should be empty once 2 is hidden, got %d nodes", got)
	}
}

func TestMaskedHidesEdge(t *testing.T) {
	t.Parallel()

	g := newLine(t)
	m := graph.Masked{G: g, EdgeHidden: func(uid, vid int64) bool { return uid == 1 && vid == 2 }}

	if m.HasEdgeFromTo(1, 2) {
		t.Error("edge 1->2 should be hidden")
	}
	if !m.HasEdgeFromTo(0, 1) {
		t.Error("edge 0->1 should remain visible")
	}
	if m.WeightedEdge(1, 2) != nil {
		t.Error("WeightedEdge(1,2) should be nil once hidden")
	}
	if w, ok := m.Weight(1, 2); ok || w != 0 {
		t.Errorf("Weight(1,2) = %v,%v, want 0,false", w, ok)
	}
}

func TestMaskedNilPredicatesHideNothing(t *testing.T) {
	t.Parallel()

	g := newLine(t)
	m := graph.Masked{G: g}

	if !m.HasEdgeFromTo(0, 1) || !m.HasEdgeFromTo(1, 2) || !m.HasEdgeFromTo(2, 3) {
		t.Error("a Masked view with nil predicates must hide nothing")
	}
	if got := len(graph.NodesOf(m.Nodes())); got != 4 {
		t.Errorf("visible node count = %d, want 4", got)
	}
}

func TestMaskedPreservesUnderlyingGraph(t *testing.T) {
	t.Parallel()

	g := newLine(t)
	_ = graph.Masked{G: g, VertexHidden: func(id int64) bool { return id == 1 }}

	if !g.HasEdgeFromTo(0, 1) {
		t.Error("masking must not mutate the underlying graph")
	}
}
