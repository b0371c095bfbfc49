// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"testing"

	"github.com/graphwalk/kpaths/graph"
	"github.com/graphwalk/kpaths/graph/simple"
)

func TestBuildHOut(t *testing.T) {
	t.Parallel()

	// Vertex 0 has distance-to-sink 5 via tree edge 0->1 (weight 2,
	// d(1)=3). Two sidetracks leave 0: 0->2 (weight 4, d(2)=4, δ=3) and
	// 0->3 (weight 1, d(3)=6, δ=2).
	tree := simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 2}
	side1 := simple.WeightedEdge{F: simple.Node(0), T: simple.Node(2), W: 4}
	side2 := simple.WeightedEdge{F: simple.Node(0), T: simple.Node(3), W: 1}

	dist := map[int64]float64{1: 3, 2: 4, 3: 6}
	out := buildHOut(0, []graph.WeightedEdge{tree, side1, side2}, tree, dist, 5)
	if out == nil {
		t.Fatal("buildHOut returned nil, want a non-empty H_out")
	}

	if out.root.edge != graph.WeightedEdge(side2) || out.root.delta != 2 {
		t.Errorf("root = {%v, %v}, want {%v, 2} (min-δ sidetrack)", out.root.edge, out.root.delta, side2)
	}
	if len(out.rest) != 1 || out.rest[0].edge != graph.WeightedEdge(side1) || out.rest[0].delta != 3 {
		t.Errorf("rest = %v, want [{%v, 3}]", out.rest, side1)
	}
}

func TestBuildHOutExcludesTreeEdgeAndUnreachable(t *testing.T) {
	t.Parallel()

	tree := simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 2}
	unreachable := simple.WeightedEdge{F: simple.Node(0), T: simple.Node(9), W: 1}

	dist := map[int64]float64{1: 3} // vertex 9 is absent: unreachable to sink
	out := buildHOut(0, []graph.WeightedEdge{tree, unreachable}, tree, dist, 5)
	if out != nil {
		t.Errorf("buildHOut = %+v, want nil (only candidate edges are the tree edge and an unreachable target)", out)
	}
}

func TestBuildHOutNoSidetracks(t *testing.T) {
	t.Parallel()

	out := buildHOut(0, nil, nil, nil, 0)
	if out != nil {
		t.Errorf("buildHOut with no outgoing edges = %+v, want nil", out)
	}
}
