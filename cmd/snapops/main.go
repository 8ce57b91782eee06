package main

import (
	"fmt"
	"io"
	"os"

	"github.com/osuushi/snapops"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Runs the snap commands against a scene file, the way an editor would run
// them against its open scene. The scene is read from --scene, the command
// runs, and its reports are printed. With --write the updated scene is saved
// back (or to --output).
//
// Example, moving the cursor to the center of the sphere through the four
// selected objects and plotting the result:
//
//	snapops -s scene.yaml circumcenter --draw /tmp/circumcenter.png --imgcat
func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "snapops:", err)
	}
	os.Exit(code)
}

type cli struct {
	app *kingpin.Application

	scenePath *string
	write     *bool
	output    *string
	noColor   *bool

	circumcenter *kingpin.CmdClause
	fallback     *string
	drawPath     *string
	catPlot      *bool

	lookAt  *kingpin.CmdClause
	axis    *string
	reverse *bool

	list *kingpin.CmdClause
}

func newCLI() *cli {
	c := &cli{app: kingpin.New("snapops", "Snap utilities for 3D scenes.")}
	c.scenePath = c.app.Flag("scene", "Scene file (YAML).").Short('s').Required().ExistingFile()
	c.write = c.app.Flag("write", "Save the updated scene.").Short('w').Bool()
	c.output = c.app.Flag("output", "Save the updated scene here instead of over --scene.").Short('o').String()
	c.noColor = c.app.Flag("no-color", "Disable coloured output.").Bool()

	c.circumcenter = c.app.Command("circumcenter", "Move the cursor to the circumcenter of the 3 or 4 selected entities.")
	c.fallback = c.circumcenter.Flag("fallback", "What to use when 4 points are coplanar.").Default("first").Enum("first", "best", "average")
	c.drawPath = c.circumcenter.Flag("draw", "Save a plot of the points and circle to this PNG file.").String()
	c.catPlot = c.circumcenter.Flag("imgcat", "Print the plot in the terminal (iTerm only). Requires --draw.").Bool()

	c.lookAt = c.app.Command("look-at", "Point the selected objects at the cursor.")
	c.axis = c.lookAt.Flag("axis", "Axis that will point to the cursor.").Default("Z").Enum("X", "Y", "Z")
	c.reverse = c.lookAt.Flag("reverse", "Reverse the direction of the axis.").Bool()

	c.list = c.app.Command("list", "List the commands and whether the scene enables them.")
	return c
}

// Returns the exit code: 0 when the command finished, 1 when it was cancelled
// or anything went wrong.
func run(args []string, out io.Writer) (int, error) {
	c := newCLI()
	c.app.UsageWriter(out)
	c.app.ErrorWriter(out)
	command, err := c.app.Parse(args)
	if err != nil {
		return 2, err
	}

	ctx, err := loadScene(*c.scenePath)
	if err != nil {
		return 1, err
	}
	r := newReporter(out, !*c.noColor)
	registry := snapops.NewRegistry()

	var id string
	switch command {
	case c.list.FullCommand():
		enabled := map[string]bool{}
		for _, id := range registry.Enabled(ctx) {
			enabled[id] = true
		}
		for _, cmd := range registry.Commands() {
			r.enabled(cmd, enabled[cmd.ID()])
		}
		return 0, nil

	case c.circumcenter.FullCommand():
		policy, err := snapops.ParseFallbackPolicy(*c.fallback)
		if err != nil {
			return 2, err
		}
		registry.Lookup(snapops.CursorToCircumcenterID).(*snapops.CursorToCircumcenter).Fallback = policy
		id = snapops.CursorToCircumcenterID

	case c.lookAt.FullCommand():
		axis, err := snapops.ParseAxis(*c.axis)
		if err != nil {
			return 2, err
		}
		lookAt := registry.Lookup(snapops.LookAtCursorID).(*snapops.LookAtCursor)
		lookAt.Axis = axis
		lookAt.Reverse = *c.reverse
		id = snapops.LookAtCursorID
	}

	// The plot needs the input points, and the command moves nothing but the
	// cursor, so they can be read before it runs.
	var points []snapops.Point
	if id == snapops.CursorToCircumcenterID && *c.drawPath != "" {
		points, _ = snapops.SelectedPoints(ctx)
	}

	result, err := registry.Run(id, ctx)
	if err != nil {
		return 1, err
	}
	r.result(registry.Lookup(id).Label(), result)
	if result.Status != snapops.Finished {
		return 1, nil
	}

	if len(points) > 0 {
		plot := &snapops.SolutionPlot{Points: points, Center: ctx.Scene.Cursor}
		if err := plot.SavePNG(*c.drawPath); err != nil {
			return 1, err
		}
		if *c.catPlot {
			snapops.CatPNG(*c.drawPath, out)
		}
	}

	if *c.write || *c.output != "" {
		path := *c.output
		if path == "" {
			path = *c.scenePath
		}
		if err := saveScene(path, ctx); err != nil {
			return 1, errors.Wrap(err, "saving scene")
		}
	}
	return 0, nil
}
