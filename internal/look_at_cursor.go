package internal

import (
	"github.com/osuushi/snapops/dbg"
)

const LookAtCursorID = "view3d.look_at_cursor_operator"

// Points an axis of every selected object at the scene cursor.
type LookAtCursor struct {
	Axis    Axis
	Reverse bool
}

func NewLookAtCursor() *LookAtCursor {
	return &LookAtCursor{Axis: AxisZ}
}

func (*LookAtCursor) ID() string          { return LookAtCursorID }
func (*LookAtCursor) Label() string       { return "Look at Cursor" }
func (*LookAtCursor) Icon() string        { return "HIDE_OFF" }
func (*LookAtCursor) Description() string { return "Points the object to the 3D cursor" }

func (*LookAtCursor) Params() []ParamSpec {
	return []ParamSpec{
		{
			Name:        "axis",
			Description: "Axis that will point to cursor",
			Kind:        EnumParam,
			Items:       []string{"X", "Y", "Z"},
			Default:     "Z",
		},
		{
			Name:        "reverse",
			Description: "Reverse the direction of the axis",
			Kind:        BoolParam,
			Default:     "false",
		},
	}
}

func (*LookAtCursor) Poll(ctx *Context) bool {
	return len(SelectedObjects(ctx)) > 0
}

// Objects sitting on the cursor can't be pointed at it. They are reported and
// skipped, and the rest of the batch still runs. The command only cancels when
// no object could be oriented.
func (cmd *LookAtCursor) Execute(ctx *Context) Result {
	var result Result
	objects := SelectedObjects(ctx)
	if len(objects) == 0 {
		return result.cancel("No objects selected")
	}

	cursor := ctx.Scene.Cursor
	oriented := 0
	for _, obj := range objects {
		rotation, err := OrientToTarget(obj.Location, cursor, cmd.Axis, cmd.Reverse)
		if err != nil {
			result.report(Error, "Could not point %s to cursor. Are the object and cursor in the same location?", objectName(obj))
			continue
		}
		obj.Rotation = rotation
		oriented++
	}

	if oriented == 0 {
		result.Status = Cancelled
		return result
	}
	result.Status = Finished
	return result
}

func objectName(obj *Object) string {
	if obj.Name != "" {
		return obj.Name
	}
	return dbg.Name(obj)
}
