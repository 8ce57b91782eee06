package internal

import "github.com/pkg/errors"

// Selections are pulled out of the context with one extraction function per
// mode. The mode is a plain tag on the context, so dispatch is an explicit
// switch and an unknown mode is a bug, not a "nothing selected".

// World positions of the selected entities in the context's current mode.
func SelectedPoints(ctx *Context) ([]Point, error) {
	if ctx == nil || ctx.Scene == nil {
		return nil, errors.New("no scene")
	}
	switch ctx.Mode {
	case ObjectMode:
		return objectPoints(ctx), nil
	case MeshEdit:
		return meshEditPoints(ctx)
	case PoseBone:
		return poseBonePoints(ctx)
	case ArmatureEdit:
		return armatureEditPoints(ctx)
	}
	fatalf("unknown selection mode %d", int(ctx.Mode))
	return nil, nil
}

// Locations of the selected objects, in scene order.
func objectPoints(ctx *Context) []Point {
	var points []Point
	for _, obj := range ctx.Scene.Objects {
		if obj.Selected {
			points = append(points, obj.Location)
		}
	}
	return points
}

func meshEditPoints(ctx *Context) ([]Point, error) {
	obj := ctx.Active
	if obj == nil || obj.Mesh == nil {
		return nil, errors.New("edit mode needs an active mesh object")
	}
	world := obj.MatrixWorld()
	var points []Point
	for _, v := range obj.Mesh.Vertices {
		if v.Selected {
			points = append(points, transformPoint(world, v.Co))
		}
	}
	return points, nil
}

func poseBonePoints(ctx *Context) ([]Point, error) {
	return bonePoints(ctx, func(b Bone) Point { return b.Head })
}

func armatureEditPoints(ctx *Context) ([]Point, error) {
	return bonePoints(ctx, func(b Bone) Point { return b.HeadLocal })
}

func bonePoints(ctx *Context, head func(Bone) Point) ([]Point, error) {
	obj := ctx.Active
	if obj == nil || obj.Armature == nil {
		return nil, errors.Errorf("%s mode needs an active armature", ctx.Mode)
	}
	world := obj.MatrixWorld()
	var points []Point
	for _, b := range obj.Armature.Bones {
		if b.Selected {
			points = append(points, transformPoint(world, head(b)))
		}
	}
	return points, nil
}

// Number of selected entities in the current mode, or zero when the context
// can't be read.
func SelectionCount(ctx *Context) int {
	points, err := SelectedPoints(ctx)
	if err != nil {
		return 0
	}
	return len(points)
}

func ValidPointCount(n int) bool {
	return n == 3 || n == 4
}

func SelectedObjects(ctx *Context) []*Object {
	if ctx == nil || ctx.Scene == nil {
		return nil
	}
	var objects []*Object
	for _, obj := range ctx.Scene.Objects {
		if obj.Selected {
			objects = append(objects, obj)
		}
	}
	return objects
}
