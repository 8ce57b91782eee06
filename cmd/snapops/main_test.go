package main

import (
	"bytes"
	"image/png"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const objectScene = `
cursor: [0, 0, 0]
objects:
  - {name: A, location: [0, 0, 0], selected: true}
  - {name: B, location: [2, 0, 0], selected: true}
  - {name: C, location: [0, 2, 0], selected: true}
  - {name: D, location: [0, 0, 2], selected: true}
`

func writeScene(t *testing.T, scene string) string {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(scene), 0644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, error) {
	var out bytes.Buffer
	code, err := run(append([]string{"--no-color"}, args...), &out)
	return code, out.String(), err
}

func TestRun(t *testing.T) {
	t.Run("circumcenter", func(t *testing.T) {
		path := writeScene(t, objectScene)
		code, out, err := runCLI(t, "-s", path, "-w", "circumcenter")
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "INFO: Distance from circumcenter to point 3: 1.7320508")
		assert.Contains(t, out, "Cursor to Circumcenter FINISHED")

		ctx, err := loadScene(path)
		require.NoError(t, err)
		assert.InDelta(t, 1, ctx.Scene.Cursor[0], 1e-9)
		assert.InDelta(t, 1, ctx.Scene.Cursor[1], 1e-9)
		assert.InDelta(t, 1, ctx.Scene.Cursor[2], 1e-9)
	})

	t.Run("circumcenter with plot", func(t *testing.T) {
		path := writeScene(t, objectScene)
		plot := filepath.Join(t.TempDir(), "plot.png")
		code, _, err := runCLI(t, "-s", path, "circumcenter", "--draw", plot)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		_, err = os.Stat(plot)
		assert.NoError(t, err)
	})

	t.Run("plot of nearly collinear points", func(t *testing.T) {
		path := writeScene(t, `
objects:
  - {name: A, location: [0, 0, 0], selected: true}
  - {name: B, location: [1, 0, 0], selected: true}
  - {name: C, location: [2, 0.001, 0], selected: true}
`)
		plot := filepath.Join(t.TempDir(), "plot.png")
		code, _, err := runCLI(t, "-s", path, "circumcenter", "--draw", plot)
		require.NoError(t, err)
		assert.Equal(t, 0, code)

		f, err := os.Open(plot)
		require.NoError(t, err)
		defer f.Close()
		config, err := png.DecodeConfig(f)
		require.NoError(t, err)
		assert.LessOrEqual(t, config.Width, 4096)
		assert.LessOrEqual(t, config.Height, 4096)
	})

	t.Run("coplanar fallback", func(t *testing.T) {
		path := writeScene(t, `
objects:
  - {name: A, location: [0, 0, 0], selected: true}
  - {name: B, location: [4, 0, 0], selected: true}
  - {name: C, location: [0, 2, 0], selected: true}
  - {name: D, location: [4, 2, 0], selected: true}
`)
		code, out, err := runCLI(t, "-s", path, "circumcenter", "--fallback", "average")
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "WARNING: The 4 points are coplanar. Using the average fallback instead!")
	})

	t.Run("wrong selection cancels", func(t *testing.T) {
		path := writeScene(t, "objects: [{name: A, location: [0, 0, 0], selected: true}]")
		code, out, err := runCLI(t, "-s", path, "circumcenter")
		require.NoError(t, err)
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "CANCELLED")
	})

	t.Run("look at", func(t *testing.T) {
		path := writeScene(t, `
cursor: [0, 0, 10]
objects:
  - {name: A, location: [0, 0, 0], selected: true}
  - {name: B, location: [0, 0, 10], selected: true}
`)
		output := filepath.Join(t.TempDir(), "out.yaml")
		code, out, err := runCLI(t, "-s", path, "-o", output, "look-at", "--axis", "X")
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "ERROR: Could not point B to cursor.")
		assert.Contains(t, out, "Look at Cursor FINISHED")

		ctx, err := loadScene(output)
		require.NoError(t, err)
		a := ctx.Scene.Objects[0]
		assert.InDelta(t, -math.Pi/2, a.Rotation.Y, 1e-9)
		x := a.Rotation.Matrix().Col(0)
		assert.InDelta(t, 1, x[2], 1e-9)

		// The input is untouched without --write
		ctx, err = loadScene(path)
		require.NoError(t, err)
		assert.Equal(t, 0.0, ctx.Scene.Objects[0].Rotation.Y)
	})

	t.Run("list", func(t *testing.T) {
		path := writeScene(t, `
objects:
  - {name: A, location: [0, 0, 0], selected: true}
  - {name: B, location: [2, 0, 0], selected: true}
`)
		code, out, err := runCLI(t, "-s", path, "list")
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Regexp(t, `view3d\.look_at_cursor_operator\s+Look at Cursor\s+enabled`, out)
		assert.Regexp(t, `mesh\.cursor_to_circumcenter_operator\s+Cursor to Circumcenter\s+disabled`, out)
	})

	t.Run("bad arguments", func(t *testing.T) {
		path := writeScene(t, objectScene)
		code, _, err := runCLI(t, "-s", path, "look-at", "--axis", "W")
		assert.Error(t, err)
		assert.Equal(t, 2, code)

		code, _, err = runCLI(t, "-s", filepath.Join(t.TempDir(), "missing.yaml"), "list")
		assert.Error(t, err)
		assert.Equal(t, 2, code)
	})

	t.Run("bad scene", func(t *testing.T) {
		path := writeScene(t, "mode: sculpt")
		code, _, err := runCLI(t, "-s", path, "list")
		assert.Error(t, err)
		assert.Equal(t, 1, code)
	})
}
