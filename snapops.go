// Snap utilities for 3D editors.
//
// This package finds the circumcenter of three or four points (the center of
// the circle or sphere through them), and computes rotations that point an
// object's axis at a target. On top of those, it provides the two editor
// commands built from them, "Cursor to Circumcenter" and "Look at Cursor",
// written against a small scene model so any host can drive them.
package snapops

import (
	"io"

	"github.com/osuushi/snapops/internal"
)

type Point = internal.Point
type PointSet = internal.PointSet
type Euler = internal.Euler
type Axis = internal.Axis
type Mode = internal.Mode
type Solution = internal.Solution
type FallbackPolicy = internal.FallbackPolicy

type Scene = internal.Scene
type Object = internal.Object
type Mesh = internal.Mesh
type Vertex = internal.Vertex
type Armature = internal.Armature
type Bone = internal.Bone
type Context = internal.Context

type Command = internal.Command
type Registry = internal.Registry
type Result = internal.Result
type Report = internal.Report
type Level = internal.Level
type CursorToCircumcenter = internal.CursorToCircumcenter
type LookAtCursor = internal.LookAtCursor
type SolutionPlot = internal.SolutionPlot

const (
	CursorToCircumcenterID = internal.CursorToCircumcenterID
	LookAtCursorID         = internal.LookAtCursorID
)

const (
	AxisX = internal.AxisX
	AxisY = internal.AxisY
	AxisZ = internal.AxisZ

	ObjectMode   = internal.ObjectMode
	MeshEdit     = internal.MeshEdit
	PoseBone     = internal.PoseBone
	ArmatureEdit = internal.ArmatureEdit

	FallbackFirstTriple = internal.FallbackFirstTriple
	FallbackBestTriple  = internal.FallbackBestTriple
	FallbackAverage     = internal.FallbackAverage

	Finished  = internal.Finished
	Cancelled = internal.Cancelled

	Info    = internal.Info
	Warning = internal.Warning
	Error   = internal.Error
)

var (
	ErrCollinear     = internal.ErrCollinear
	ErrCoplanar      = internal.ErrCoplanar
	ErrSingular      = internal.ErrSingular
	ErrZeroDirection = internal.ErrZeroDirection
	ErrUndefined     = internal.ErrUndefined
)

// Center of the circle through three points. For collinear points this
// returns their mean together with ErrCollinear; the point is still usable.
// Any other error means there is no center.
func Circumcenter3D(p1, p2, p3 Point) (Point, error) {
	return internal.Circumcenter3D(p1, p2, p3)
}

// Center of the sphere through four points. Coplanar points give ErrCoplanar
// and no center. Use Circumcenter to fall back to a circle instead.
func Circumcenter4D(a, b, c, d Point) (Point, error) {
	return internal.Circumcenter4D(a, b, c, d)
}

// Circumcenter of 3 or 4 points, falling back according to policy when four
// points are coplanar. Recoverable degeneracies are listed in the solution's
// warnings.
func Circumcenter(points []Point, policy FallbackPolicy) (solution Solution, err error) {
	defer func() {
		recoveredErr := internal.HandleSnapPanicRecover(recover())
		if recoveredErr != nil {
			solution = Solution{}
			err = recoveredErr
		}
	}()
	return internal.Circumcenter(points, policy)
}

// Euler rotation pointing the given axis from origin towards target (away
// from it when reverse is set). Returns ErrZeroDirection if they coincide.
func OrientToTarget(origin, target Point, axis Axis, reverse bool) (Euler, error) {
	return internal.OrientToTarget(origin, target, axis, reverse)
}

// A registry holding both commands, in the order a snap menu lists them.
func NewRegistry() *Registry {
	return internal.NewRegistry()
}

func ParseAxis(s string) (Axis, error) { return internal.ParseAxis(s) }

func ParseMode(s string) (Mode, error) { return internal.ParseMode(s) }

func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	return internal.ParseFallbackPolicy(s)
}

// World positions of the selected entities in the context's current mode.
func SelectedPoints(ctx *Context) (points []Point, err error) {
	defer func() {
		recoveredErr := internal.HandleSnapPanicRecover(recover())
		if recoveredErr != nil {
			points = nil
			err = recoveredErr
		}
	}()
	return internal.SelectedPoints(ctx)
}

// Print a PNG file inline in the terminal (iTerm only).
func CatPNG(path string, w io.Writer) { internal.CatPNG(path, w) }
