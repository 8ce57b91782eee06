package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportsAt(result Result, level Level) []string {
	var messages []string
	for _, r := range result.Reports {
		if r.Level == level {
			messages = append(messages, r.Message)
		}
	}
	return messages
}

func TestCursorToCircumcenter(t *testing.T) {
	cmd := &CursorToCircumcenter{}

	t.Run("three objects", func(t *testing.T) {
		ctx := testContext(ObjectMode)
		require.True(t, cmd.Poll(ctx))
		result := cmd.Execute(ctx)
		assert.Equal(t, Finished, result.Status)
		assertPointInDelta(t, Point{1, 1, 0}, ctx.Scene.Cursor, Tolerance)

		// One distance per point, all the same
		infos := reportsAt(result, Info)
		require.Len(t, infos, 3)
		for _, info := range infos {
			assert.Contains(t, info, "1.414213")
		}
		assert.Empty(t, reportsAt(result, Warning))
	})

	t.Run("four bones", func(t *testing.T) {
		ctx := testContext(PoseBone)
		require.True(t, cmd.Poll(ctx))
		result := cmd.Execute(ctx)
		assert.Equal(t, Finished, result.Status)
		// The corner tetrahedron, moved into the armature's world space
		assertPointInDelta(t, Point{9, 1, 1}, ctx.Scene.Cursor, Tolerance)
		assert.Len(t, reportsAt(result, Info), 4)
	})

	t.Run("collinear points warn and use the mean", func(t *testing.T) {
		ctx := testContext(ObjectMode)
		ctx.Scene.Objects[4].Location = Point{4, 0, 0}
		result := cmd.Execute(ctx)
		assert.Equal(t, Finished, result.Status)
		assert.Len(t, reportsAt(result, Warning), 1)
		assertPointInDelta(t, Point{2, 0, 0}, ctx.Scene.Cursor, Tolerance)
	})

	t.Run("coplanar points fall back with a warning", func(t *testing.T) {
		ctx := testContext(ArmatureEdit)
		// Flatten the fourth bone into the plane of the others
		ctx.Active.Armature.Bones[3].HeadLocal = Point{2, 2, 1}
		result := cmd.Execute(ctx)
		assert.Equal(t, Finished, result.Status)
		warnings := reportsAt(result, Warning)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "coplanar")
		assertPointInDelta(t, Point{9, 1, 1}, ctx.Scene.Cursor, Tolerance)
	})

	t.Run("undefined result leaves the cursor alone", func(t *testing.T) {
		ctx := testContext(ObjectMode)
		ctx.Scene.Cursor = Point{3, 3, 3}
		ctx.Scene.Objects[2].Location = Point{math.NaN(), 0, 0}
		result := cmd.Execute(ctx)
		assert.Equal(t, Cancelled, result.Status)
		assert.Len(t, reportsAt(result, Error), 1)
		assert.Equal(t, Point{3, 3, 3}, ctx.Scene.Cursor)
	})

	t.Run("wrong selection size is disabled", func(t *testing.T) {
		ctx := testContext(ObjectMode)
		ctx.Scene.Objects[5].Selected = true
		ctx.Scene.Objects[0].Selected = true
		assert.False(t, cmd.Poll(ctx))
		result := cmd.Execute(ctx)
		assert.Equal(t, Cancelled, result.Status)

		ctx.Scene.Objects[0].Selected = false
		ctx.Scene.Objects[5].Selected = false
		ctx.Scene.Objects[4].Selected = false
		assert.False(t, cmd.Poll(ctx))
	})
}

func TestLookAtCursor(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd := NewLookAtCursor()
		assert.Equal(t, AxisZ, cmd.Axis)
		assert.False(t, cmd.Reverse)

		params := cmd.Params()
		require.Len(t, params, 2)
		assert.Equal(t, "axis", params[0].Name)
		assert.Equal(t, []string{"X", "Y", "Z"}, params[0].Items)
		assert.Equal(t, "Z", params[0].Default)
		assert.Equal(t, "reverse", params[1].Name)
		assert.Equal(t, "false", params[1].Default)
	})

	t.Run("every selected object points at the cursor", func(t *testing.T) {
		ctx := testContext(ObjectMode)
		ctx.Scene.Cursor = Point{5, 5, 5}
		cmd := &LookAtCursor{Axis: AxisY}
		require.True(t, cmd.Poll(ctx))
		result := cmd.Execute(ctx)
		assert.Equal(t, Finished, result.Status)
		assert.Empty(t, result.Reports)
		for _, obj := range SelectedObjects(ctx) {
			expected := ctx.Scene.Cursor.Sub(obj.Location).Normalize()
			assertPointInDelta(t, expected, obj.Rotation.Matrix().Col(1), Tolerance)
		}
		// Unselected objects are untouched
		assert.Equal(t, Euler{}, ctx.Scene.Objects[5].Rotation)
	})

	t.Run("reverse", func(t *testing.T) {
		ctx := testContext(ObjectMode)
		ctx.Scene.Cursor = Point{0, 0, 10}
		cmd := &LookAtCursor{Axis: AxisX, Reverse: true}
		result := cmd.Execute(ctx)
		assert.Equal(t, Finished, result.Status)
		obj := ctx.Scene.Objects[2]
		assertPointInDelta(t, Point{0, 0, -1}, obj.Rotation.Matrix().Col(0), Tolerance)
	})

	t.Run("object on the cursor is skipped", func(t *testing.T) {
		ctx := testContext(ObjectMode)
		ctx.Scene.Cursor = Point{0, 0, 0} // where object A is
		ctx.Scene.Objects[2].Rotation = Euler{X: 1}
		cmd := NewLookAtCursor()
		result := cmd.Execute(ctx)
		assert.Equal(t, Finished, result.Status)
		errs := reportsAt(result, Error)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "A")
		assert.Equal(t, Euler{X: 1}, ctx.Scene.Objects[2].Rotation)
		assert.NotEqual(t, Euler{}, ctx.Scene.Objects[3].Rotation)
	})

	t.Run("every object on the cursor cancels", func(t *testing.T) {
		obj := &Object{Location: Point{1, 1, 1}, Selected: true}
		ctx := &Context{Scene: &Scene{Cursor: Point{1, 1, 1}, Objects: []*Object{obj}}}
		result := NewLookAtCursor().Execute(ctx)
		assert.Equal(t, Cancelled, result.Status)
		// Unnamed objects get a made up name
		errs := reportsAt(result, Error)
		require.Len(t, errs, 1)
		assert.NotContains(t, errs[0], "Could not point  to")
	})

	t.Run("nothing selected", func(t *testing.T) {
		ctx := &Context{Scene: &Scene{Objects: []*Object{{Name: "A"}}}}
		cmd := NewLookAtCursor()
		assert.False(t, cmd.Poll(ctx))
		assert.Equal(t, Cancelled, cmd.Execute(ctx).Status)
	})
}
