// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/graphwalk/kpaths/graph"
	"github.com/graphwalk/kpaths/internal/ordered"
)

// Shortest is a shortest-path tree created by DijkstraFrom or
// BellmanFordFrom, reused both for Eppstein's reverse preprocessing and
// as the result type behind Yen's pluggable SSSP oracle.
type Shortest struct {
	from graph.Node

	nodes   []graph.Node
	indexOf map[int64]int

	dist []float64
	next []int

	hasNegativeCycle bool
}

func newShortestFrom(u graph.Node, nodes []graph.Node) Shortest {
	indexOf := make(map[int64]int, len(nodes))
	uid := u.ID()
	for i, n := range nodes {
		indexOf[n.ID()] = i
		if n.ID() == uid {
			u = n
		}
	}

	p := Shortest{
		from: u,

		nodes:   nodes,
		indexOf: indexOf,

		dist: make([]float64, len(nodes)),
		next: make([]int, len(nodes)),
	}
	for i := range nodes {
		p.dist[i] = math.Inf(1)
		p.next[i] = -1
	}
	if idx, ok := indexOf[uid]; ok {
		p.dist[idx] = 0
	}

	return p
}

func (p *Shortest) add(u graph.Node) int {
	uid := u.ID()
	if _, exists := p.indexOf[uid]; exists {
		panic("path: adding existing node")
	}
	idx := len(p.nodes)
	p.indexOf[uid] = idx
	p.nodes = append(p.nodes, u)
	p.dist = append(p.dist, math.Inf(1))
	p.next = append(p.next, -1)
	return idx
}

func (p Shortest) set(to int, weight float64, mid int) {
	p.dist[to] = weight
	p.next[to] = mid
}

// From returns the starting node of the paths held by the Shortest.
func (p Shortest) From() graph.Node { return p.from }

// WeightTo returns the weight of the minimum path to v. If there is no
// path to v, the returned weight is +Inf.
func (p Shortest) WeightTo(vid int64) float64 {
	to, ok := p.indexOf[vid]
	if !ok {
		return math.Inf(1)
	}
	return p.dist[to]
}

// To returns a shortest path to v and the weight of the path. If v is
// unreachable, path is nil and weight is +Inf; the absence of a path is
// never signalled by an error. If the tree contains a negative cycle
// reachable on the path to v, weight is returned as -Inf.
func (p Shortest) To(vid int64) (path []graph.Node, weight float64) {
	to, ok := p.indexOf[vid]
	if !ok || math.IsInf(p.dist[to], 1) {
		return nil, math.Inf(1)
	}
	from := p.indexOf[p.from.ID()]
	path = []graph.Node{p.nodes[to]}
	weight = p.dist[to]
	if p.hasNegativeCycle {
		seen := make(map[int]bool)
		seen[from] = true
		for to != from {
			if seen[to] {
				weight = math.Inf(-1)
				break
			}
			seen[to] = true
			path = append(path, p.nodes[p.next[to]])
			to = p.next[to]
		}
	} else {
		n := len(p.nodes)
		for to != from {
			path = append(path, p.nodes[p.next[to]])
			to = p.next[to]
			n--
			if n < 0 {
				panic("path: unexpected negative cycle")
			}
		}
	}
	ordered.Reverse(path)
	return path, weight
}
