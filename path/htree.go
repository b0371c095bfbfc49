// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

// htNode is a node of the persistent H_T heap-ordered tree.
// Each node carries the sidetrack edge that is the
// root of some vertex's H_out, a "rest" subtree built from that same
// H_out's remaining sidetracks, and a left/right spine shared, via
// structural sharing, with every other vertex's H_T whose construction
// passed through this node unmodified.
type htNode struct {
	sidetrack   sidetrack
	left, right *htNode // spine, mutated (by cloning) on insert
	rest        *htNode // H_out(v)'s "rest" entries, built once, never mutated
	size        int     // 1 + size(left) + size(right); ignores rest
}

func htSize(n *htNode) int {
	if n == nil {
		return 0
	}
	return n.size
}

// buildRestTree builds the balanced, heap-ordered "rest" subtree for an
// H_out whose "rest" slice is already sorted ascending by δ:
// the root is the first entry of the range, the left child is built from
// the entries immediately after it up to the midpoint, and the right
// child from the remainder.
func buildRestTree(entries []sidetrack) *htNode {
	return buildRestRange(entries, 0, len(entries)-1)
}

func buildRestRange(entries []sidetrack, from, to int) *htNode {
	if from > to {
		return nil
	}
	n := &htNode{sidetrack: entries[from], size: 1}
	if from == to {
		return n
	}
	mid := (from + to) / 2
	n.left = buildRestRange(entries, from+1, mid)
	n.right = buildRestRange(entries, mid+1, to)
	n.size = 1 + htSize(n.left) + htSize(n.right)
	return n
}

// newOutroot builds the standalone H_T node representing outroot(v): the
// root sidetrack of H_out(v), together with its rest subtree. It has no
// left/right children yet; those are assigned when it is inserted into
// some H_T(u).
func newOutroot(h *hOut) *htNode {
	return &htNode{
		sidetrack: h.root,
		rest:      buildRestTree(h.rest),
		size:      1,
	}
}

// htInsert inserts node n (freshly built by newOutroot, with nil
// left/right) into the heap-ordered tree rooted at target, returning the
// new root. It copies only the nodes on the path from the root to n's
// resting place; every other subtree is shared by reference with target.
func htInsert(target, n *htNode) *htNode {
	if target == nil {
		return n
	}

	goLeft := target.left == nil || (target.right != nil && target.right.size > target.left.size)
	size := target.size + 1

	if n.sidetrack.delta < target.sidetrack.delta {
		promoted := &htNode{sidetrack: n.sidetrack, rest: n.rest, size: size}
		demoted := &htNode{sidetrack: target.sidetrack, rest: target.rest, size: 1}
		if goLeft {
			promoted.left = htInsert(target.left, demoted)
			promoted.right = target.right
		} else {
			promoted.left = target.left
			promoted.right = htInsert(target.right, demoted)
		}
		return promoted
	}

	clone := &htNode{sidetrack: target.sidetrack, rest: target.rest, size: size}
	if goLeft {
		clone.left = htInsert(target.left, n)
		clone.right = target.right
	} else {
		clone.left = target.left
		clone.right = htInsert(target.right, n)
	}
	return clone
}
