// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/graphwalk/kpaths/graph"

// Weighted is a graph that can report the weight of the edge between any
// two node IDs, whether or not an edge exists.
type Weighted interface {
	graph.Graph
	Weight(xid, yid int64) (w float64, ok bool)
}

// Weighting is a mapping between two nodes and a weight. It follows the
// semantics of the Weighted interface.
type Weighting func(xid, yid int64) (w float64, ok bool)

// UniformCost returns a Weighting that returns an edge weight of 1 for
// any pair of nodes in g that are joined by an edge, and 0 when xid ==
// yid. For any other pair not joined by an edge it returns 0 and
// ok=false.
func UniformCost(g graph.Graph) Weighting {
	return func(xid, yid int64) (w float64, ok bool) {
		if xid == yid {
			return 0, true
		}
		if g.Edge(xid, yid) != nil {
			return 1, true
		}
		return 0, false
	}
}
