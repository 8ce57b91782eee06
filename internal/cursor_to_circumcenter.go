package internal

const CursorToCircumcenterID = "mesh.cursor_to_circumcenter_operator"

// Moves the scene cursor to the center of the circle or sphere through the
// 3 or 4 selected entities.
type CursorToCircumcenter struct {
	Fallback FallbackPolicy
}

func (*CursorToCircumcenter) ID() string    { return CursorToCircumcenterID }
func (*CursorToCircumcenter) Label() string { return "Cursor to Circumcenter" }
func (*CursorToCircumcenter) Icon() string  { return "MESH_CIRCLE" }
func (*CursorToCircumcenter) Description() string {
	return "Move the cursor to the circumcenter of the circle/sphere defined by the other 3/4 selected entities"
}

func (*CursorToCircumcenter) Params() []ParamSpec { return nil }

func (*CursorToCircumcenter) Poll(ctx *Context) bool {
	return ValidPointCount(SelectionCount(ctx))
}

func (cmd *CursorToCircumcenter) Execute(ctx *Context) Result {
	var result Result
	points, err := SelectedPoints(ctx)
	if err != nil {
		return result.cancel("Could not read selection: %v", err)
	}
	if !ValidPointCount(len(points)) {
		return result.cancel("Select 3 or 4 entities, got %d", len(points))
	}

	solution, err := Circumcenter(points, cmd.Fallback)
	if err != nil {
		return result.cancel("Could not calculate circumcenter. Are the points collinear? (%v)", err)
	}
	for _, warning := range solution.Warnings {
		kind, ok := DegeneracyOf(warning)
		switch {
		case ok && kind == Coplanar:
			result.report(Warning, "The 4 points are coplanar. Using the %s fallback instead!", cmd.Fallback)
		case ok && kind == Collinear:
			result.report(Warning, "The 3 points are collinear. Using average instead!")
		default:
			result.report(Warning, "%v", warning)
		}
	}

	for i, p := range points {
		result.report(Info, "Distance from circumcenter to point %d: %g", i, Distance(solution.Center, p))
	}

	ctx.Scene.Cursor = solution.Center
	result.Status = Finished
	return result
}
