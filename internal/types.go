package internal

import "github.com/go-gl/mathgl/mgl64"

// Points are plain values. Nothing in this package keeps a reference to a
// point it was handed, so callers are free to reuse their slices.
type Point = mgl64.Vec3

// An ordered set of exactly three or four points. Anything else is rejected
// before it gets to the math.
type PointSet []Point

// Axis names one of an object's local principal axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Selection modes of the host. Each mode has its own extraction function in
// selection.go.
type Mode int

const (
	ObjectMode Mode = iota
	MeshEdit
	PoseBone
	ArmatureEdit
)

// Rotation in radians, applied X first, then Y, then Z.
type Euler struct {
	X, Y, Z float64
}

type Vertex struct {
	Co       Point
	Selected bool
}

type Mesh struct {
	Vertices []Vertex
}

// Head is the bone head in pose space, HeadLocal is the rest position in
// armature space. Pose mode reads the former, armature edit mode the latter.
type Bone struct {
	Name      string
	Head      Point
	HeadLocal Point
	Selected  bool
}

type Armature struct {
	Bones []Bone
}

// An object in the scene. At most one of Mesh and Armature is set.
type Object struct {
	Name     string
	Location Point
	Rotation Euler
	Scale    Point
	Selected bool

	Mesh     *Mesh
	Armature *Armature
}

type Scene struct {
	Cursor  Point
	Objects []*Object
}

// Context is everything a command gets to see. Commands only ever write to
// Scene.Cursor or to Object.Rotation.
type Context struct {
	Scene  *Scene
	Active *Object
	Mode   Mode
}
