// Package consolidate turns an unordered bag of upgrade steps into a
// deduplicated, merged, deterministically ordered list of instructions for a
// requested version window.
//
// The pipeline has four ordered stages:
//
//  1. Range filter: keep only steps fully contained in the window.
//  2. Type consolidation: merge package-update steps into a single step and
//     drop duplicate dependency/configuration instructions.
//  3. File consolidation: merge steps that edit the same file into one
//     coherent step per file.
//  4. Ordering: stable sort by type priority, then version bounds.
//
// Every stage is a pure function over step slices; all grouping state is
// local to one invocation.
package consolidate

import (
	"github.com/stepmap/stepmap/pkg/upgrade"
)

// Consolidate runs the full pipeline over steps for the requested version
// window [from, to]. It returns a new slice; the input is never mutated.
// An empty result means there is no upgrade path for the window, which is a
// valid outcome rather than an error.
func Consolidate(steps []upgrade.Step, from, to float64) []upgrade.Step {
	filtered := filterRange(steps, from, to)
	merged := consolidateTypes(filtered, to)
	merged = consolidateFiles(merged)
	return order(merged)
}
