// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/graphwalk/kpaths/graph"

// spurMask holds the vertex/edge predicates Yen's deviation loop builds
// for one spur index: maskedVertices is rootPath minus the
// spur node itself, and maskedEdges is the set of edges out of the spur
// node already used by every accepted path that shares the same vertices
// up to and including the spur node.
type spurMask struct {
	vertices map[int64]bool
	edges    map[edgeKey]bool
}

type edgeKey struct{ u, v int64 }

// newSpurMask builds the mask for spur index i along path p, given the
// accepted list A those edges are compared against.
func newSpurMask(p []graph.Node, i int, accepted []GraphPath) spurMask {
	m := spurMask{vertices: make(map[int64]bool, i), edges: make(map[edgeKey]bool)}
	for j := 0; j < i; j++ {
		m.vertices[p[j].ID()] = true
	}

	for _, a := range accepted {
		av := a.Vertices()
		if !sharesRootPath(av, p, i+1) {
			continue
		}
		if i+1 >= len(av) {
			continue
		}
		m.edges[edgeKey{av[i].ID(), av[i+1].ID()}] = true
	}
	return m
}

// sharesRootPath reports whether av's vertex-list prefix [0,i) equals
// p's, vertex ID for vertex ID.
func sharesRootPath(av, p []graph.Node, i int) bool {
	if len(av) < i {
		return false
	}
	for j := 0; j < i; j++ {
		if av[j].ID() != p[j].ID() {
			return false
		}
	}
	return true
}

func (m spurMask) vertexHidden(id int64) bool { return m.vertices[id] }

func (m spurMask) edgeHidden(uid, vid int64) bool { return m.edges[edgeKey{uid, vid}] }

// view builds the read-only masked subgraph g's spur search runs over.
func (m spurMask) view(g graph.WeightedDirected) graph.Masked {
	return graph.Masked{G: g, VertexHidden: m.vertexHidden, EdgeHidden: m.edgeHidden}
}
