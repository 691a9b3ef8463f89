package kinematics

import "errors"

// Domain errors for reaction solving and table queries.
var (
	// ErrForbidden indicates a mass/energy combination with no physical
	// solution (s <= 0 or a CM momentum squared below zero).
	ErrForbidden = errors.New("kinematics: reaction kinematically forbidden")

	// ErrDegenerate indicates a degenerate boost where the turning-point
	// ratio is undefined (zero or non-finite denominator).
	ErrDegenerate = errors.New("kinematics: degenerate turning-point ratio")

	// ErrUnknownColumn indicates a column name outside the observable set.
	ErrUnknownColumn = errors.New("kinematics: unknown observable column")

	// ErrOutOfRange indicates an inverse lookup target outside the
	// sampled range of its column.
	ErrOutOfRange = errors.New("kinematics: target outside physical range")
)
