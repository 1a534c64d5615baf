// SPDX-License-Identifier: MIT

package aralev

import "strings"

// Status is a set of numerical warning flags attached to a Result.
// The zero value means a clean solution.
type Status int

const (
	// ConvergenceProblem: the selected solution came from an iteration that
	// hit its cap, or the input had a single inclination.
	ConvergenceProblem Status = 1
	// RobustnessProblem: a point next to the selected solution has a higher
	// likelihood.
	RobustnessProblem Status = 2
)

// Has reports whether all flags in f are set in s.
func (s Status) Has(f Status) bool { return s&f == f }

// OK reports whether no flag is set.
func (s Status) OK() bool { return s == 0 }

func (s Status) String() string {
	if s == 0 {
		return "ok"
	}
	var parts []string
	if s.Has(ConvergenceProblem) {
		parts = append(parts, "convergence")
	}
	if s.Has(RobustnessProblem) {
		parts = append(parts, "robustness")
	}

	return strings.Join(parts, "|")
}
