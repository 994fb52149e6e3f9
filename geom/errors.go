package geom

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies what went wrong in a geometry operation. Callers should
// branch on the kind (via errors.Is against the Err* values, or KindOf) rather
// than on message text.
type Kind int

const (
	KindUnknown Kind = iota
	InvalidGrid
	InvalidPosition
	AngleTooObtuse
	NoAngleFound
	NoTarget
	DegenerateTriangle
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	InvalidGrid:        "invalid grid",
	InvalidPosition:    "invalid position",
	AngleTooObtuse:     "angle too obtuse",
	NoAngleFound:       "no angle found",
	NoTarget:           "no target",
	DegenerateTriangle: "degenerate triangle",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the single error type returned by this package.
//
// For AngleTooObtuse, Angle, Row, Column and PrevColumn describe the candidate
// ray that skipped a column. For other kinds they are zero.
type Error struct {
	Kind   Kind
	Detail string

	Angle      float64
	Row        int
	Column     int
	PrevColumn int
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// Is reports whether target is an *Error of the same kind, so the sentinel
// values below work with errors.Is regardless of detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidGrid        = &Error{Kind: InvalidGrid}
	ErrInvalidPosition    = &Error{Kind: InvalidPosition}
	ErrAngleTooObtuse     = &Error{Kind: AngleTooObtuse}
	ErrNoAngleFound       = &Error{Kind: NoAngleFound}
	ErrNoTarget           = &Error{Kind: NoTarget}
	ErrDegenerateTriangle = &Error{Kind: DegenerateTriangle}
)

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func fail(kind Kind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}
