// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"container/heap"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/graphwalk/kpaths/graph"
)

// Yen computes the k shortest loopless (simple) s–t paths of a directed
// weighted graph, using a pluggable single-source shortest-path oracle to
// resolve each spur search. A Yen value is immutable after construction
// except for the private state its Iterator owns.
type Yen struct {
	g       graph.WeightedDirected
	s, t    graph.Node
	factory OracleFactory

	// Rand, if non-nil, breaks ties between equal-weight candidates in B
	// randomly instead of leaving the order to heap internals.
	Rand *rand.Rand
}

// NewYen builds a Yen engine for source s and sink t over g, using
// factory to produce the baseline SSSP oracle. It returns
// *InvalidInputError if s or t is not a vertex of g or factory is nil.
func NewYen(g graph.WeightedDirected, s, t graph.Node, factory OracleFactory) (*Yen, error) {
	if g == nil || s == nil || t == nil {
		return nil, &InvalidInputError{Reason: "graph, source and sink must be non-nil"}
	}
	if factory == nil {
		return nil, &InvalidInputError{Reason: "oracle factory must be non-nil"}
	}
	if g.Node(s.ID()) == nil {
		return nil, &InvalidInputError{Reason: "source vertex not present in graph"}
	}
	if g.Node(t.ID()) == nil {
		return nil, &InvalidInputError{Reason: "sink vertex not present in graph"}
	}
	return &Yen{g: g, s: s, t: t, factory: factory}, nil
}

// yenCandidate is one entry of Yen's candidate min-heap B.
type yenCandidate struct {
	path GraphPath
}

type yenQueue struct {
	items []yenCandidate
	rnd   *rand.Rand
}

func (q *yenQueue) Len() int { return len(q.items) }
func (q *yenQueue) Less(i, j int) bool {
	wi, wj := q.items[i].path.Weight(), q.items[j].path.Weight()
	if wi != wj {
		return wi < wj
	}
	if q.rnd != nil {
		return q.rnd.Intn(2) == 0
	}
	return false
}
func (q *yenQueue) Swap(i, j int)         { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *yenQueue) Push(x interface{})    { q.items = append(q.items, x.(yenCandidate)) }
func (q *yenQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	c := old[n-1]
	q.items = old[:n-1]
	return c
}

// YenIterator is a lazy cursor over a Yen's simple s–t paths, in
// non-decreasing weight order. It is not safe for concurrent use.
type YenIterator struct {
	y *Yen

	a       []GraphPath
	b       yenQueue
	started bool
	done    bool
	err     error
}

// Iterator returns a new, independent cursor over y's enumeration.
func (y *Yen) Iterator() *YenIterator {
	return &YenIterator{y: y, b: yenQueue{rnd: y.Rand}}
}

// Next returns the next simple s–t path in the enumeration, or ok=false
// once no further simple path exists or the oracle has failed. After a
// failure, Err reports the cause; paths already yielded remain valid.
func (it *YenIterator) Next() (GraphPath, bool) {
	if it.done {
		return GraphPath{}, false
	}
	if !it.started {
		it.started = true
		oracle := it.y.factory(it.y.g)
		p, ok := it.consult(oracle, it.y.s, it.y.t)
		if !ok {
			it.done = true
			return GraphPath{}, false
		}
		it.a = append(it.a, p)
		return p, true
	}

	if !it.expand() {
		it.done = true
		return GraphPath{}, false
	}

	return it.a[len(it.a)-1], true
}

// Err returns the error that terminated iteration, or nil. The same error
// is reported by every call once iteration has failed.
func (it *YenIterator) Err() error { return it.err }

// consult queries the oracle, converting a panicking oracle into an
// iteration-terminating error: the negative-weight panic of a
// Dijkstra-style oracle becomes an UnsupportedConfigurationError, any
// other panic an OracleFailureError.
func (it *YenIterator) consult(o Oracle, u, v graph.Node) (p GraphPath, ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if s, isString := r.(string); isString && strings.Contains(s, "negative edge weight") {
			it.err = &UnsupportedConfigurationError{Reason: "negative edge weight supplied to a Dijkstra-style oracle"}
		} else if e, isErr := r.(error); isErr {
			it.err = &OracleFailureError{Err: e}
		} else {
			it.err = &OracleFailureError{Err: fmt.Errorf("%v", r)}
		}
		ok = false
	}()
	return o.Path(u, v)
}

// expand runs one round of Yen's deviation loop from the last accepted
// path, pushing candidates into B, then pops the first non-duplicate
// into A. It reports false if no further path could be produced.
func (it *YenIterator) expand() bool {
	p := it.a[len(it.a)-1]
	verts := p.Vertices()
	edges := p.Edges()

	for i := 0; i < len(verts)-1; i++ {
		spurNode := verts[i]
		mask := newSpurMask(verts, i, it.a)
		view := mask.view(it.y.g)

		oracle := it.y.factory(view)
		spurPath, ok := it.consult(oracle, spurNode, it.y.t)
		if it.err != nil {
			return false
		}
		if !ok || spurPath.Len() == 0 {
			continue
		}

		rootEdges := make([]graph.WeightedEdge, i)
		copy(rootEdges, edges[:i])
		totalEdges := append(rootEdges, spurPath.Edges()...)
		weight := sumWeights(edges[:i]) + spurPath.Weight()

		candidate := newGraphPath(it.y.s, it.y.t, totalEdges, weight)
		heap.Push(&it.b, yenCandidate{path: candidate})
	}

	for it.b.Len() != 0 {
		c := heap.Pop(&it.b).(yenCandidate)
		if sameEdgeList(c.path.Edges(), p.Edges()) {
			continue
		}
		it.a = append(it.a, c.path)
		return true
	}
	return false
}

func sumWeights(edges []graph.WeightedEdge) float64 {
	var w float64
	for _, e := range edges {
		w += e.Weight()
	}
	return w
}

func sameEdgeList(a, b []graph.WeightedEdge) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Paths returns up to the k shortest simple s–t paths in non-decreasing
// weight order, stopping early if fewer exist.
func (y *Yen) Paths(k int) ([]GraphPath, error) {
	if k <= 0 {
		return nil, &InvalidInputError{Reason: "k must be positive"}
	}
	it := y.Iterator()
	out := make([]GraphPath, 0, k)
	for i := 0; i < k; i++ {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	if err := it.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// YenKShortestPaths returns up to the k shortest simple s–t paths of g,
// using factory as the baseline SSSP oracle.
func YenKShortestPaths(g graph.WeightedDirected, s, t graph.Node, k int, factory OracleFactory) ([]GraphPath, error) {
	y, err := NewYen(g, s, t, factory)
	if err != nil {
		return nil, err
	}
	return y.Paths(k)
}

// YenKShortestPathsIterator returns a lazy sequence of g's simple s–t
// paths in non-decreasing weight order.
func YenKShortestPathsIterator(g graph.WeightedDirected, s, t graph.Node, factory OracleFactory) (*YenIterator, error) {
	y, err := NewYen(g, s, t, factory)
	if err != nil {
		return nil, err
	}
	return y.Iterator(), nil
}
