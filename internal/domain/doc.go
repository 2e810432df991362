// Package domain holds the value types shared by every puzzle solver:
// numbered input lines, answers, run results and the error taxonomy used
// to report bad input.
//
// This package has no dependencies on infrastructure packages.
package domain
