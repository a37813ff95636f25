// Package core contains the business logic of Foresight: the repository
// store, similarity matching, reference resolution, scenario normalization,
// branch expansion into chart-ready series, and cross-scenario aggregation.
package core

import (
	"errors"
	"fmt"
)

// RefKind names the repository collection a reference points into.
type RefKind string

const (
	RefParameter  RefKind = "parameter"
	RefMilestone  RefKind = "milestone"
	RefAssumption RefKind = "assumption"
)

// NotFoundError reports a reference to a repository ID that does not exist.
// A dangling reference means corrupted authored data; callers must surface it
// rather than render a partial chart.
type NotFoundError struct {
	Kind RefKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s definition not found in repository: %s", e.Kind, e.ID)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
