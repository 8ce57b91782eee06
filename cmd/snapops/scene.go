package main

import (
	"io/ioutil"

	"github.com/osuushi/snapops"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// On-disk scene format. Vectors are plain YAML sequences of three numbers.
// Rotations are XYZ Euler angles in radians.
type sceneFile struct {
	Mode    string       `yaml:"mode"`
	Active  string       `yaml:"active,omitempty"`
	Cursor  []float64    `yaml:"cursor,flow"`
	Objects []objectFile `yaml:"objects"`
}

type objectFile struct {
	Name     string        `yaml:"name"`
	Location []float64     `yaml:"location,flow"`
	Rotation []float64     `yaml:"rotation,flow,omitempty"`
	Scale    []float64     `yaml:"scale,flow,omitempty"`
	Selected bool          `yaml:"selected,omitempty"`
	Mesh     *meshFile     `yaml:"mesh,omitempty"`
	Armature *armatureFile `yaml:"armature,omitempty"`
}

type meshFile struct {
	Vertices []vertexFile `yaml:"vertices"`
}

type vertexFile struct {
	Co       []float64 `yaml:"co,flow"`
	Selected bool      `yaml:"selected,omitempty"`
}

type armatureFile struct {
	Bones []boneFile `yaml:"bones"`
}

type boneFile struct {
	Name      string    `yaml:"name"`
	Head      []float64 `yaml:"head,flow"`
	HeadLocal []float64 `yaml:"head_local,flow"`
	Selected  bool      `yaml:"selected,omitempty"`
}

func loadScene(path string) (*snapops.Context, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	return parseScene(data)
}

func parseScene(data []byte) (*snapops.Context, error) {
	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing scene")
	}

	mode := snapops.ObjectMode
	if f.Mode != "" {
		var err error
		if mode, err = snapops.ParseMode(f.Mode); err != nil {
			return nil, err
		}
	}

	ctx := &snapops.Context{Scene: &snapops.Scene{}, Mode: mode}
	var err error
	if ctx.Scene.Cursor, err = vector(f.Cursor, "cursor", snapops.Point{}); err != nil {
		return nil, err
	}

	for i, of := range f.Objects {
		obj, err := of.object()
		if err != nil {
			return nil, errors.Wrapf(err, "object %d (%s)", i, of.Name)
		}
		ctx.Scene.Objects = append(ctx.Scene.Objects, obj)
		if f.Active != "" && of.Name == f.Active {
			ctx.Active = obj
		}
	}
	if f.Active != "" && ctx.Active == nil {
		return nil, errors.Errorf("active object %q not found", f.Active)
	}
	return ctx, nil
}

func (of objectFile) object() (*snapops.Object, error) {
	obj := &snapops.Object{Name: of.Name, Selected: of.Selected}
	var err error
	if obj.Location, err = vector(of.Location, "location", snapops.Point{}); err != nil {
		return nil, err
	}
	rotation, err := vector(of.Rotation, "rotation", snapops.Point{})
	if err != nil {
		return nil, err
	}
	obj.Rotation = snapops.Euler{X: rotation[0], Y: rotation[1], Z: rotation[2]}
	if obj.Scale, err = vector(of.Scale, "scale", snapops.Point{1, 1, 1}); err != nil {
		return nil, err
	}

	if of.Mesh != nil {
		obj.Mesh = &snapops.Mesh{}
		for i, vf := range of.Mesh.Vertices {
			co, err := vector(vf.Co, "co", snapops.Point{})
			if err != nil {
				return nil, errors.Wrapf(err, "vertex %d", i)
			}
			obj.Mesh.Vertices = append(obj.Mesh.Vertices, snapops.Vertex{Co: co, Selected: vf.Selected})
		}
	}

	if of.Armature != nil {
		obj.Armature = &snapops.Armature{}
		for _, bf := range of.Armature.Bones {
			head, err := vector(bf.Head, "head", snapops.Point{})
			if err != nil {
				return nil, errors.Wrapf(err, "bone %s", bf.Name)
			}
			// An unposed bone sits at its rest position
			headLocal, err := vector(bf.HeadLocal, "head_local", head)
			if err != nil {
				return nil, errors.Wrapf(err, "bone %s", bf.Name)
			}
			obj.Armature.Bones = append(obj.Armature.Bones, snapops.Bone{
				Name:      bf.Name,
				Head:      head,
				HeadLocal: headLocal,
				Selected:  bf.Selected,
			})
		}
	}
	return obj, nil
}

// Missing vectors take the default. Present ones must have three components.
func vector(v []float64, name string, def snapops.Point) (snapops.Point, error) {
	if v == nil {
		return def, nil
	}
	if len(v) != 3 {
		return snapops.Point{}, errors.Errorf("%s needs 3 components, got %d", name, len(v))
	}
	return snapops.Point{v[0], v[1], v[2]}, nil
}

func saveScene(path string, ctx *snapops.Context) error {
	data, err := marshalScene(ctx)
	if err != nil {
		return err
	}
	return errors.Wrap(ioutil.WriteFile(path, data, 0644), "writing scene")
}

func marshalScene(ctx *snapops.Context) ([]byte, error) {
	f := sceneFile{
		Mode:   ctx.Mode.String(),
		Cursor: copyVector(ctx.Scene.Cursor),
	}
	if ctx.Active != nil {
		f.Active = ctx.Active.Name
	}
	for _, obj := range ctx.Scene.Objects {
		of := objectFile{
			Name:     obj.Name,
			Location: copyVector(obj.Location),
			Rotation: []float64{obj.Rotation.X, obj.Rotation.Y, obj.Rotation.Z},
			Scale:    copyVector(obj.Scale),
			Selected: obj.Selected,
		}
		if obj.Mesh != nil {
			of.Mesh = &meshFile{}
			for _, v := range obj.Mesh.Vertices {
				of.Mesh.Vertices = append(of.Mesh.Vertices, vertexFile{Co: copyVector(v.Co), Selected: v.Selected})
			}
		}
		if obj.Armature != nil {
			of.Armature = &armatureFile{}
			for _, b := range obj.Armature.Bones {
				of.Armature.Bones = append(of.Armature.Bones, boneFile{
					Name:      b.Name,
					Head:      copyVector(b.Head),
					HeadLocal: copyVector(b.HeadLocal),
					Selected:  b.Selected,
				})
			}
		}
		f.Objects = append(f.Objects, of)
	}
	data, err := yaml.Marshal(&f)
	return data, errors.Wrap(err, "encoding scene")
}

func copyVector(p snapops.Point) []float64 {
	return []float64{p[0], p[1], p[2]}
}
