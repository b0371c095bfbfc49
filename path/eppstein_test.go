// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/graphwalk/kpaths/graph/simple"
)

// weights returns the Weight() of each path in order.
func weights(paths []GraphPath) []float64 {
	w := make([]float64, len(paths))
	for i, p := range paths {
		w[i] = p.Weight()
	}
	return w
}

func assertNonDecreasing(t *testing.T, w []float64) {
	t.Helper()
	for i := 1; i < len(w); i++ {
		if w[i] < w[i-1] {
			t.Errorf("weights not non-decreasing at index %d: %v", i, w)
			return
		}
	}
}

// assertWeightMultiset checks that got matches want as a multiset of
// weights, within a 5e-8 tolerance, independent of the unspecified order
// among equal-cost ties.
func assertWeightMultiset(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d paths, want %d: got=%v want=%v", len(got), len(want), got, want)
	}
	g := append([]float64(nil), got...)
	w := append([]float64(nil), want...)
	sort.Float64s(g)
	sort.Float64s(w)
	for i := range g {
		if math.Abs(g[i]-w[i]) > 5e-8 {
			t.Errorf("weight multiset mismatch at sorted index %d: got %v, want %v (full: got=%v want=%v)", i, g[i], w[i], got, want)
			return
		}
	}
}

// assertWeightMatchesEdges checks that the sum of a path's edge weights
// equals its reported Weight(), within tolerance.
func assertWeightMatchesEdges(t *testing.T, p GraphPath) {
	t.Helper()
	var sum float64
	for _, e := range p.Edges() {
		sum += e.Weight()
	}
	if math.Abs(sum-p.Weight()) > 5e-8 {
		t.Errorf("path weight %v does not match edge sum %v", p.Weight(), sum)
	}
}

// assertValidWalk checks that p is a valid walk from s to sink: correct
// endpoints and consecutive edges joined end to end.
func assertValidWalk(t *testing.T, p GraphPath, s, sink int64) {
	t.Helper()
	verts := p.Vertices()
	if len(verts) == 0 {
		t.Fatal("path has no vertices")
	}
	if verts[0].ID() != s {
		t.Errorf("path starts at %v, want %v", verts[0].ID(), s)
	}
	if verts[len(verts)-1].ID() != sink {
		t.Errorf("path ends at %v, want %v", verts[len(verts)-1].ID(), sink)
	}
	edges := p.Edges()
	for i := 0; i+1 < len(edges); i++ {
		if edges[i].To().ID() != edges[i+1].From().ID() {
			t.Errorf("edge %d target %v does not match edge %d source %v", i, edges[i].To().ID(), i+1, edges[i+1].From().ID())
		}
	}
}

// TestEppsteinUniquePath covers the no-sidetracks boundary: the iterator
// yields exactly one path, then terminates.
func TestEppsteinUniquePath(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 1})

	e, err := NewEppstein(g, simple.Node(0), simple.Node(2))
	if err != nil {
		t.Fatalf("NewEppstein: %v", err)
	}
	it := e.Iterator()

	p, ok := it.Next()
	if !ok {
		t.Fatal("expected one path")
	}
	if p.Weight() != 2 {
		t.Errorf("weight = %v, want 2", p.Weight())
	}
	if _, ok := it.Next(); ok {
		t.Error("expected the iterator to terminate after the unique path")
	}
}

// TestEppsteinNoPath covers the unreachable-sink boundary: the iterator
// yields zero paths rather than an error.
func TestEppsteinNoPath(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.AddNode(simple.Node(0))
	g.AddNode(simple.Node(1))
	// No edge between them at all.

	e, err := NewEppstein(g, simple.Node(0), simple.Node(1))
	if err != nil {
		t.Fatalf("NewEppstein: %v", err)
	}
	paths, err := e.Paths(10)
	if err != nil {
		t.Fatalf("Paths: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("got %d paths, want 0 (t unreachable from s)", len(paths))
	}
}

// TestEppsteinSelfLoopPrefix runs a Graehl-style graph:
// a zero-weight-adjacent self-loop at the source composes with the unique
// tree path to yield a strictly increasing run of weights, one path per
// added self-loop repetition.
func TestEppsteinSelfLoopPrefix(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(5), W: 0.3})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(5), T: simple.Node(1), W: 0.3})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(0), W: 0.05})

	got, err := EppsteinKShortestPaths(g, simple.Node(0), simple.Node(1), 7)
	if err != nil {
		t.Fatalf("EppsteinKShortestPaths: %v", err)
	}
	want := []float64{0.60, 0.65, 0.70, 0.75, 0.80, 0.85, 0.90}
	got64 := weights(got)
	for i := range got64 {
		if math.Abs(got64[i]-want[i]) > 5e-8 {
			t.Errorf("weights[%d] = %v, want %v (full: got=%v want=%v)", i, got64[i], want[i], got64, want)
			break
		}
	}
	assertNonDecreasing(t, got64)
	for _, p := range got {
		assertValidWalk(t, p, 0, 1)
		assertWeightMatchesEdges(t, p)
	}
}

// TestEppsteinLoopMultiEdge enumerates a graph with two parallel
// self-loops at the source, enumerated by Eppstein with repeated
// vertices permitted, produce the weight multiset {1,3,4,5,6,6,7,7,8,8,8}
// — the combinatorics of choosing i copies of the δ=2 loop and j copies
// of the δ=3 loop in every order, C(i+j,i) paths per (i,j).
func TestEppsteinLoopMultiEdge(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(0), W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(0), W: 3})

	got, err := EppsteinKShortestPaths(g, simple.Node(0), simple.Node(1), 11)
	if err != nil {
		t.Fatalf("EppsteinKShortestPaths: %v", err)
	}
	want := []float64{1, 3, 4, 5, 6, 6, 7, 7, 8, 8, 8}
	assertWeightMultiset(t, weights(got), want)
	assertNonDecreasing(t, weights(got))
	for _, p := range got {
		assertValidWalk(t, p, 0, 1)
		assertWeightMatchesEdges(t, p)
		if len(p.Edges()) == 0 {
			t.Error("unexpected zero-length path")
		}
	}
}

// TestEppsteinNoLoopMultiEdge enumerates a graph with three parallel
// edges between the same pair, no cycles, so exactly three walks exist
// and Eppstein must tell the parallel edges apart via AllWeightedEdges.
func TestEppsteinNoLoopMultiEdge(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 3})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 1})

	got, err := EppsteinKShortestPaths(g, simple.Node(0), simple.Node(2), 20)
	if err != nil {
		t.Fatalf("EppsteinKShortestPaths: %v", err)
	}
	want := []float64{2, 3, 4}
	assertWeightMultiset(t, weights(got), want)
	assertNonDecreasing(t, weights(got))
	for _, p := range got {
		assertValidWalk(t, p, 0, 2)
		assertWeightMatchesEdges(t, p)
	}
}

// TestEppsteinReversedLoopMultiEdge reverses the loop-multi-edge graph
// and swaps (s,t); the weight multiset must be identical (the round-trip
// property).
func TestEppsteinReversedLoopMultiEdge(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(0), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(0), W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(0), W: 3})

	got, err := EppsteinKShortestPaths(g, simple.Node(1), simple.Node(0), 11)
	if err != nil {
		t.Fatalf("EppsteinKShortestPaths: %v", err)
	}
	want := []float64{1, 3, 4, 5, 6, 6, 7, 7, 8, 8, 8}
	assertWeightMultiset(t, weights(got), want)
}

// TestEppsteinBipartiteSample enumerates a bipartite-like graph: two
// equal-distance intermediates produce a zero-δ sidetrack (a genuine tie
// in the shortest-path tree), so the weight-2 path is reachable two ways;
// a costly direct edge is the most expensive path.
func TestEppsteinBipartiteSample(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	const S, T, v1, v2, v3, v4 = 100, 101, 1, 2, 3, 4
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(S), T: simple.Node(v1), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(v1), T: simple.Node(T), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(S), T: simple.Node(v2), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(v2), T: simple.Node(T), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(S), T: simple.Node(v3), W: 1.5})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(v3), T: simple.Node(T), W: 1.5})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(S), T: simple.Node(v4), W: 1.5})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(v4), T: simple.Node(T), W: 1.5})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(S), T: simple.Node(T), W: 1000})

	got, err := EppsteinKShortestPaths(g, simple.Node(S), simple.Node(T), 5)
	if err != nil {
		t.Fatalf("EppsteinKShortestPaths: %v", err)
	}
	want := []float64{2, 2, 3, 3, 1000}
	assertWeightMultiset(t, weights(got), want)
	for _, p := range got {
		assertValidWalk(t, p, S, T)
		assertWeightMatchesEdges(t, p)
	}
}

// TestEppsteinSelfLoopInfinite checks that a self-loop on
// an s-t walk makes the iterator infinite, and it must still produce the
// first N paths in the correct (non-decreasing) order for any N.
func TestEppsteinSelfLoopInfinite(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(0), W: 0})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1})

	e, err := NewEppstein(g, simple.Node(0), simple.Node(1))
	if err != nil {
		t.Fatalf("NewEppstein: %v", err)
	}
	it := e.Iterator()
	const n = 50
	got := make([]float64, n)
	for i := 0; i < n; i++ {
		p, ok := it.Next()
		if !ok {
			t.Fatalf("iterator exhausted after %d paths, want at least %d (graph has a reachable zero-weight cycle)", i, n)
		}
		got[i] = p.Weight()
	}
	assertNonDecreasing(t, got)
	// Every weight must be exactly 1 (the zero-weight self-loop never
	// changes total cost).
	for i, w := range got {
		if w != 1 {
			t.Errorf("got[%d] = %v, want 1", i, w)
		}
	}
}

// TestEppsteinRejectsNegativeWeight checks negative weights are rejected
// at construction time.
func TestEppsteinRejectsNegativeWeight(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: -1})

	_, err := NewEppstein(g, simple.Node(0), simple.Node(1))
	if err == nil {
		t.Fatal("expected an UnsupportedConfigurationError for a negative edge weight")
	}
	var uce *UnsupportedConfigurationError
	if !errors.As(err, &uce) {
		t.Errorf("err = %v (%T), want *UnsupportedConfigurationError", err, err)
	}
}

// TestEppsteinRejectsMissingVertex checks the constructor rejects
// vertices absent from the graph.
func TestEppsteinRejectsMissingVertex(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1})

	if _, err := NewEppstein(g, simple.Node(9), simple.Node(1)); err == nil {
		t.Error("expected InvalidInputError for a missing source vertex")
	}
}

// TestEppsteinSameSourceAndSink documents this module's convention for a
// coinciding source and sink: s == t yields a single zero-weight,
// zero-length path.
func TestEppsteinSameSourceAndSink(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.AddNode(simple.Node(0))

	got, err := EppsteinKShortestPaths(g, simple.Node(0), simple.Node(0), 3)
	if err != nil {
		t.Fatalf("EppsteinKShortestPaths: %v", err)
	}
	if len(got) != 1 || got[0].Weight() != 0 || got[0].Len() != 0 {
		t.Errorf("got %+v, want exactly one zero-length, zero-weight path", got)
	}
}

