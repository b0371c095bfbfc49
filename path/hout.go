// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"sort"

	"github.com/graphwalk/kpaths/graph"
)

// sidetrack is a single Eppstein sidetrack edge, paired with its
// sidetrack cost δ(e) = w(e) + d(target(e)) - d(source(e)).
type sidetrack struct {
	edge  graph.WeightedEdge
	delta float64
}

// hOut is the per-vertex H_out(v) structure: the minimum-δ
// outgoing sidetrack ("root"), separated from the rest, which are kept
// sorted by δ so H_T's construction can build its balanced "rest"
// subtree from them directly.
type hOut struct {
	root sidetrack
	rest []sidetrack // sorted ascending by delta
}

// buildHOut collects v's outgoing sidetracks: edges e=(v,·) that are not
// the shortest-path-tree edge π(v) and whose target has finite distance
// to the sink. It returns nil if v has no such edge.
func buildHOut(v int64, outEdges []graph.WeightedEdge, treeEdge graph.WeightedEdge, dist map[int64]float64, du float64) *hOut {
	var tracks []sidetrack
	for _, e := range outEdges {
		if treeEdge != nil && sameEdge(e, treeEdge) {
			continue
		}
		dv, ok := dist[e.To().ID()]
		if !ok {
			continue
		}
		delta := e.Weight() + dv - du
		tracks = append(tracks, sidetrack{edge: e, delta: delta})
	}
	if len(tracks) == 0 {
		return nil
	}
	sort.SliceStable(tracks, func(i, j int) bool { return tracks[i].delta < tracks[j].delta })
	return &hOut{root: tracks[0], rest: tracks[1:]}
}

// sameEdge reports whether a and b are the same edge instance by
// identity of endpoints and weight. Parallel edges of equal weight
// between the same pair are treated as distinct only when they are
// literally different edge values.
func sameEdge(a, b graph.WeightedEdge) bool {
	return a == b
}
