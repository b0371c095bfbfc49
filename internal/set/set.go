// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package set provides the small integer-set helper the path package uses
// to track visited/seen vertices during traversal and cycle checks.
package set

// Ints is a set of int64 identifiers.
type Ints map[int64]struct{}

// Add inserts an element into the set.
func (s Ints) Add(e int64) {
	s[e] = struct{}{}
}

// Has reports the existence of the element in the set.
func (s Ints) Has(e int64) bool {
	_, ok := s[e]
	return ok
}
