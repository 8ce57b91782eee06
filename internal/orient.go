package internal

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// The axis whose world direction is used to fix the roll when tracking with
// the given axis. Tracking with X or Y keeps Z up, tracking with Z keeps Y up.
func referenceAxis(track Axis) Axis {
	if track == AxisZ {
		return AxisY
	}
	return AxisZ
}

// Rotation matrix turning the object's track axis onto direction. The
// reference axis (see referenceAxis) is kept as close to its world
// counterpart as the constraint allows. If direction is parallel to that
// world axis the roll is undetermined, and the next world axis is used as the
// reference instead.
//
// Returns ErrZeroDirection if direction has no length.
func TrackRotation(direction Point, track Axis) (mgl64.Mat3, error) {
	if direction.Len() < Tolerance {
		return mgl64.Ident3(), ErrZeroDirection
	}
	forward := direction.Normalize()

	ref := referenceAxis(track)
	refVector := ref.Vector()
	if math.Abs(forward.Dot(refVector)) > 1-Tolerance {
		refVector = Axis((int(ref) + 1) % 3).Vector()
	}
	// Gram-Schmidt the reference against forward
	up := refVector.Sub(forward.Mul(forward.Dot(refVector))).Normalize()

	other := Axis(3 - int(track) - int(ref))
	var side Point
	if (int(ref)-int(track)+3)%3 == 1 {
		// (track, ref, other) is cyclic, e.g. Y, Z, X
		side = forward.Cross(up)
	} else {
		side = up.Cross(forward)
	}

	var cols [3]Point
	cols[track] = forward
	cols[ref] = up
	cols[other] = side
	return mgl64.Mat3FromCols(cols[0], cols[1], cols[2]), nil
}

// Rotation that points the object's axis from origin at target, or away from
// it when reverse is set.
func OrientToTarget(origin, target Point, axis Axis, reverse bool) (Euler, error) {
	direction := target.Sub(origin)
	if reverse {
		direction = origin.Sub(target)
	}
	m, err := TrackRotation(direction, axis)
	if err != nil {
		return Euler{}, err
	}
	return EulerFromMatrix(m), nil
}

// Matrix for the rotation, Rz * Ry * Rx.
func (e Euler) Matrix() mgl64.Mat3 {
	return mgl64.Rotate3DZ(e.Z).Mul3(mgl64.Rotate3DY(e.Y)).Mul3(mgl64.Rotate3DX(e.X))
}

// Decompose a rotation matrix into XYZ Euler angles. At gimbal lock (Y at ±90°)
// the Z angle is taken to be zero.
func EulerFromMatrix(m mgl64.Mat3) Euler {
	cy := math.Hypot(m.At(0, 0), m.At(1, 0))
	if cy > Tolerance {
		return Euler{
			X: math.Atan2(m.At(2, 1), m.At(2, 2)),
			Y: math.Atan2(-m.At(2, 0), cy),
			Z: math.Atan2(m.At(1, 0), m.At(0, 0)),
		}
	}
	return Euler{
		X: math.Atan2(-m.At(1, 2), m.At(1, 1)),
		Y: math.Atan2(-m.At(2, 0), cy),
		Z: 0,
	}
}

// Full local-to-world transform of the object: translate * rotate * scale.
// A zero scale is read as unscaled, so objects built without one behave.
func (o *Object) MatrixWorld() mgl64.Mat4 {
	scale := o.Scale
	if scale == (Point{}) {
		scale = Point{1, 1, 1}
	}
	t := mgl64.Translate3D(o.Location.X(), o.Location.Y(), o.Location.Z())
	r := o.Rotation.Matrix().Mat4()
	s := mgl64.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(r).Mul4(s)
}

func transformPoint(m mgl64.Mat4, p Point) Point {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
