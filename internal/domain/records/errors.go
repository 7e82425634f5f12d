package records

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	// ErrInconsistentState marks a reconciliation whose primary mutation
	// succeeded but whose secondary write failed, leaving an aggregate and
	// its record set out of sync. Callers must surface it distinctly so a
	// corrective operation can be run.
	ErrInconsistentState = errors.New("aggregate and record set are inconsistent")
)
