// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "fmt"

// InvalidInputError reports a violated precondition: a nil graph, source,
// sink or oracle factory, or a source or sink vertex missing from the
// graph (reported by the constructors), or a non-positive k (reported by
// Paths).
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("path: invalid input: %s", e.Reason)
}

// UnsupportedConfigurationError reports a negative edge weight supplied
// to an engine that cannot tolerate one: any Eppstein engine, or a Yen
// engine paired with a Dijkstra-style oracle.
type UnsupportedConfigurationError struct {
	Reason string
}

func (e *UnsupportedConfigurationError) Error() string {
	return fmt.Sprintf("path: unsupported configuration: %s", e.Reason)
}

// OracleFailureError wraps an error surfaced by the pluggable SSSP
// oracle, propagated unchanged. The original error is available via
// errors.Unwrap.
type OracleFailureError struct {
	Err error
}

func (e *OracleFailureError) Error() string {
	return fmt.Sprintf("path: oracle failure: %v", e.Err)
}

func (e *OracleFailureError) Unwrap() error { return e.Err }
