package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Degenerate inputs are ordinary results and are returned as errors. Broken
// invariants (an unknown selection mode, a point set of the wrong size making
// it past validation) are programming errors. Those panic with a SnapError,
// and the command boundary recovers them into a cancelled result so that
// nothing escapes to the host.

type SnapError error

// Panic with a SnapError.
func fatalf(format string, args ...interface{}) {
	panic(SnapError(errors.Errorf(format, args...)))
}

func HandleSnapPanicRecover(r interface{}) error {
	if r != nil {
		if snapError, ok := r.(SnapError); ok {
			return snapError
		}
		panic(r)
	}
	return nil
}

type DegeneracyKind int

const (
	// Three points on a line. Recoverable: the mean is used instead.
	Collinear DegeneracyKind = iota
	// Four points on a plane. Recoverable: a three point fallback is used.
	Coplanar
	// Four points for which the fallback failed too.
	Singular
	// Origin and target coincide, so there is nothing to point at.
	ZeroDirection
	// The computation produced something non-finite.
	Undefined
)

func (k DegeneracyKind) String() string {
	switch k {
	case Collinear:
		return "collinear"
	case Coplanar:
		return "coplanar"
	case Singular:
		return "singular"
	case ZeroDirection:
		return "zero direction"
	case Undefined:
		return "undefined"
	}
	return "unknown"
}

type DegenerateError struct {
	Kind DegeneracyKind
	msg  string
}

func (e *DegenerateError) Error() string {
	return e.msg
}

// Is matches on kind, so wrapped errors compare equal to the sentinels below.
func (e *DegenerateError) Is(target error) bool {
	t, ok := target.(*DegenerateError)
	return ok && t.Kind == e.Kind
}

// Recoverable degeneracies still produce a usable point.
func (e *DegenerateError) Recoverable() bool {
	return e.Kind == Collinear || e.Kind == Coplanar
}

var (
	ErrCollinear     = &DegenerateError{Collinear, "points are collinear"}
	ErrCoplanar      = &DegenerateError{Coplanar, "points are coplanar"}
	ErrSingular      = &DegenerateError{Singular, "points do not determine a circle or sphere"}
	ErrZeroDirection = &DegenerateError{ZeroDirection, "origin and target coincide"}
	ErrUndefined     = &DegenerateError{Undefined, "circumcenter is undefined"}
)

func degeneratef(kind DegeneracyKind, format string, args ...interface{}) error {
	return &DegenerateError{kind, fmt.Sprintf(format, args...)}
}

// Kind of the degeneracy behind err, if there is one.
func DegeneracyOf(err error) (DegeneracyKind, bool) {
	var d *DegenerateError
	if errors.As(err, &d) {
		return d.Kind, true
	}
	return 0, false
}
