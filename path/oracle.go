// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/graphwalk/kpaths/graph"

// Oracle is the baseline single-source shortest-path collaborator Yen's
// deviation loop consults once per spur search. Path returns false when u
// cannot reach v in the oracle's (possibly masked) graph.
type Oracle interface {
	Path(u, v graph.Node) (GraphPath, bool)
}

// OracleFactory builds an Oracle bound to a specific (sub)graph view. Yen
// calls the factory once per spur node, so the returned Oracle need only
// be correct for the view it was given.
type OracleFactory func(g graph.WeightedDirected) Oracle

// pathFromVertices converts a shortest-path vertex list into a GraphPath,
// re-looking-up each edge on g. When g has parallel edges this uses g's
// representative WeightedEdge for each consecutive pair, so results are
// defined only up to that representative choice.
func pathFromVertices(g graph.WeightedDirected, verts []graph.Node, weight float64) (GraphPath, bool) {
	if verts == nil {
		return GraphPath{}, false
	}
	if len(verts) == 1 {
		return newGraphPath(verts[0], verts[0], nil, 0), true
	}
	edges := make([]graph.WeightedEdge, 0, len(verts)-1)
	for i := 0; i+1 < len(verts); i++ {
		e := g.WeightedEdge(verts[i].ID(), verts[i+1].ID())
		if e == nil {
			return GraphPath{}, false
		}
		edges = append(edges, e)
	}
	return newGraphPath(verts[0], verts[len(verts)-1], edges, weight), true
}

// oracleFunc adapts a plain query function to the Oracle interface.
type oracleFunc func(u, v graph.Node) (GraphPath, bool)

func (f oracleFunc) Path(u, v graph.Node) (GraphPath, bool) { return f(u, v) }

// DijkstraOracleFactory returns an OracleFactory backed by an
// early-terminating Dijkstra search; Yen asks each oracle about a single
// source/target pair, so there is no tree worth keeping. It requires
// non-negative edge weights on every graph it is handed; use
// BellmanFordOracleFactory when that cannot be guaranteed.
func DijkstraOracleFactory() OracleFactory {
	return func(g graph.WeightedDirected) Oracle {
		return oracleFunc(func(u, v graph.Node) (GraphPath, bool) {
			verts, weight := DijkstraFromTo(u, v, g)
			return pathFromVertices(g, verts, weight)
		})
	}
}

// BellmanFordOracleFactory returns an OracleFactory backed by
// BellmanFordFrom, tolerant of negative edge weights. When a negative
// cycle is reachable from the queried source, the oracle still answers
// from the tree BellmanFordFrom built with the cycle flagged, so the
// returned path can run around the cycle and carry a weight of -Inf.
func BellmanFordOracleFactory() OracleFactory {
	return func(g graph.WeightedDirected) Oracle {
		return &lazyTreeOracle{g: g, build: func(u graph.Node) Shortest {
			tree, _ := BellmanFordFrom(u, g)
			return tree
		}}
	}
}

// lazyTreeOracle defers running the SSSP tree build until the first Path
// call for a given source, since Yen only ever asks a spur's oracle about
// one source vertex (the spur node itself).
type lazyTreeOracle struct {
	g     graph.WeightedDirected
	build func(graph.Node) Shortest

	built bool
	from  int64
	tree  Shortest
}

func (o *lazyTreeOracle) Path(u, v graph.Node) (GraphPath, bool) {
	if !o.built || o.from != u.ID() {
		o.tree = o.build(u)
		o.from = u.ID()
		o.built = true
	}
	verts, weight := o.tree.To(v.ID())
	return pathFromVertices(o.g, verts, weight)
}
