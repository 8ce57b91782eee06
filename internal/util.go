package internal

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

const Tolerance = 1e-6

// Relative threshold used when deciding whether a sum of weights or a
// determinant is "zero". Absolute thresholds don't work here, since both scale
// with the input coordinates.
const Epsilon = 1e-12

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func IsFinite(p Point) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Arithmetic mean of the points. Panics on an empty slice, which is a
// programming error rather than a degenerate input.
func Mean(points ...Point) Point {
	if len(points) == 0 {
		fatalf("mean of zero points")
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

func Distance(a, b Point) float64 {
	return a.Sub(b).Len()
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// Unit vector along the axis in world space.
func (a Axis) Vector() Point {
	switch a {
	case AxisX:
		return Point{1, 0, 0}
	case AxisY:
		return Point{0, 1, 0}
	case AxisZ:
		return Point{0, 0, 1}
	}
	fatalf("invalid axis %d", int(a))
	return Point{}
}

func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(s) {
	case "X":
		return AxisX, nil
	case "Y":
		return AxisY, nil
	case "Z":
		return AxisZ, nil
	}
	return AxisZ, errors.Errorf("invalid axis %q, expected X, Y or Z", s)
}

func (m Mode) String() string {
	switch m {
	case ObjectMode:
		return "object"
	case MeshEdit:
		return "mesh_edit"
	case PoseBone:
		return "pose"
	case ArmatureEdit:
		return "armature_edit"
	}
	return "unknown"
}

func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ObjectMode, MeshEdit, PoseBone, ArmatureEdit} {
		if m.String() == s {
			return m, nil
		}
	}
	return ObjectMode, errors.Errorf("invalid mode %q", s)
}
