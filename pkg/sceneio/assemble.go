package sceneio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/prism-render/prism/pkg/brdf"
	"github.com/prism-render/prism/pkg/camera"
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/lights"
	"github.com/prism-render/prism/pkg/loaders"
	"github.com/prism-render/prism/pkg/material"
	"github.com/prism-render/prism/pkg/scene"
	"github.com/prism-render/prism/pkg/texture"
)

// Load reads, parses, and assembles the scene file at path, resolving
// any externally referenced mesh and image files relative to path's
// directory. It returns the assembled Scene and the cameras described
// by the file (a scene file can name more than one view of the same
// geometry).
func Load(path string) (*scene.Scene, []*camera.Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("sceneio: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("sceneio: parse %s: %w", path, err)
	}
	return Assemble(doc, filepath.Dir(path))
}

func vec3(a [3]float64) core.Vec3 { return core.NewVec3(a[0], a[1], a[2]) }

// Assemble builds a Scene and its cameras from an already-parsed
// Document. baseDir roots any relative mesh/image file references.
func Assemble(doc *Document, baseDir string) (*scene.Scene, []*camera.Camera, error) {
	transforms, err := buildTransformTable(doc.Transformations)
	if err != nil {
		return nil, nil, err
	}

	vertices, err := assembleVertices(doc.Vertices)
	if err != nil {
		return nil, nil, err
	}

	images, err := loadImages(doc.Images, baseDir)
	if err != nil {
		return nil, nil, err
	}

	textures := assembleTextures(doc.Textures, images)
	materials := assembleMaterials(doc.Materials)

	sc := &scene.Scene{
		Vertices:  vertices,
		Materials: materials,
		Textures:  textures,
		BRDFs:     []brdf.BRDF{},
		Limits: scene.Limits{
			MaxRecursionDepth:   doc.Limits.MaxRecursionDepth,
			ShadowEpsilon:       doc.Limits.ShadowEpsilon,
			IntersectionEpsilon: doc.Limits.IntersectionEpsilon,
			Background:          vec3(doc.Limits.Background),
			AmbientLight:        vec3(doc.Limits.AmbientLight),
		},
	}

	sc.Lights = assembleLights(doc.Lights)
	if doc.Lights.Environment != nil {
		env, err := buildEnvironment(*doc.Lights.Environment, images)
		if err != nil {
			return nil, nil, err
		}
		sc.Environment = env
	}

	shapes, err := assembleObjects(doc.Objects, &vertices, transforms, baseDir)
	if err != nil {
		return nil, nil, err
	}
	sc.Shapes = shapes
	sc.Vertices = vertices

	sc.Build()

	cameras := make([]*camera.Camera, 0, len(doc.Cameras))
	for i, cs := range doc.Cameras {
		cam, err := buildCamera(cs, transforms)
		if err != nil {
			return nil, nil, fmt.Errorf("sceneio: camera %d: %w", i, err)
		}
		cameras = append(cameras, cam)
	}

	return sc, cameras, nil
}

// assembleVertices converts the flat axis-ordered triple stream into
// world-space Vec3s, permuting axes when AxisOrder isn't "xyz", and
// inserting a dummy entry at index 0 so 1-based scene-file indices
// (as used by triangle/mesh references) address the cache directly.
func assembleVertices(spec VertexSpec) ([]core.Vec3, error) {
	if len(spec.Data)%3 != 0 {
		return nil, fmt.Errorf("sceneio: vertex data length %d not a multiple of 3", len(spec.Data))
	}
	order := spec.AxisOrder
	if order == "" {
		order = "xyz"
	}
	perm, err := axisPermutation(order)
	if err != nil {
		return nil, err
	}

	out := make([]core.Vec3, 1, len(spec.Data)/3+1)
	out[0] = core.Vec3{}
	for i := 0; i+2 < len(spec.Data); i += 3 {
		raw := [3]float64{spec.Data[i], spec.Data[i+1], spec.Data[i+2]}
		var v [3]float64
		for a := 0; a < 3; a++ {
			v[perm[a]] = raw[a]
		}
		out = append(out, core.NewVec3(v[0], v[1], v[2]))
	}
	return out, nil
}

func axisPermutation(order string) ([3]int, error) {
	var perm [3]int
	if len(order) != 3 {
		return perm, fmt.Errorf("sceneio: axis_order %q must name 3 axes", order)
	}
	for i, c := range order {
		switch c {
		case 'x':
			perm[i] = 0
		case 'y':
			perm[i] = 1
		case 'z':
			perm[i] = 2
		default:
			return perm, fmt.Errorf("sceneio: axis_order %q has unknown axis %q", order, string(c))
		}
	}
	return perm, nil
}

func loadImages(specs []ImageSpec, baseDir string) (map[int]*texture.Image, error) {
	images := map[int]*texture.Image{}
	for _, s := range specs {
		data, err := loaders.LoadImage(filepath.Join(baseDir, s.Path))
		if err != nil {
			return nil, fmt.Errorf("sceneio: image %d (%s): %w", s.ID, s.Path, err)
		}
		img := texture.NewImage(data.Width, data.Height, data.Pixels)
		img.Normalizer = 1 // LoadImage already scales channels to [0,1]
		images[s.ID] = img
	}
	return images, nil
}

func decalMode(name string) texture.DecalMode {
	switch name {
	case "blend_kd":
		return texture.BlendKd
	case "replace_ks":
		return texture.ReplaceKs
	case "replace_background":
		return texture.ReplaceBackground
	case "replace_normal":
		return texture.ReplaceNormal
	case "bump_normal":
		return texture.BumpNormal
	case "replace_all":
		return texture.ReplaceAll
	default:
		return texture.ReplaceKd
	}
}

func assembleTextures(specs []TextureSpec, images map[int]*texture.Image) []texture.Binding {
	out := make([]texture.Binding, 0, len(specs))
	for _, s := range specs {
		mode := decalMode(s.DecalMode)
		switch s.Type {
		case "image":
			img := images[s.ImageID]
			if img != nil && s.BumpFactor != 0 {
				img.BumpFactor = s.BumpFactor
			}
			out = append(out, texture.Binding{Texture: img, Mode: mode})
		case "checkerboard":
			out = append(out, texture.Binding{
				Texture: texture.NewCheckerboard(s.Scale, s.Offset, vec3(s.Black), vec3(s.White)),
				Mode:    mode,
			})
		case "perlin":
			out = append(out, texture.Binding{
				Texture: texture.NewPerlin(s.Octaves, s.Scale, noiseConversion(s.Conversion)),
				Mode:    mode,
			})
		default:
			out = append(out, texture.Binding{Mode: mode})
		}
	}
	return out
}

func noiseConversion(name string) texture.NoiseConversion {
	switch name {
	case "linear":
		return texture.Linear
	default:
		return texture.Absolute
	}
}

func assembleMaterials(specs []MaterialSpec) []material.Material {
	out := make([]material.Material, len(specs))
	for i, s := range specs {
		refl := material.ReflectanceParams{
			Ambient:  vec3(s.Ambient),
			Diffuse:  vec3(s.Diffuse),
			Specular: vec3(s.Specular),
			Exponent: s.Exponent,
			Degamma:  s.Degamma,
		}
		switch s.Type {
		case "mirror":
			out[i] = material.NewMirror(refl, vec3(s.MirrorReflectance), s.Roughness)
		case "dielectric":
			out[i] = material.NewDielectric(refl, vec3(s.MirrorReflectance), vec3(s.AbsorptionCoeff), s.RefractionIndex, s.Roughness)
		case "conductor":
			out[i] = material.NewConductor(refl, vec3(s.MirrorReflectance), s.AbsorptionIndex, s.RefractionIndex, s.Roughness)
		case "mix":
			// MixA/MixB reference earlier material indices; resolved in
			// a second pass below since Go slices can't forward-reference.
			out[i] = nil
		default:
			out[i] = material.NewDiffuse(refl)
		}
	}
	for i, s := range specs {
		if s.Type != "mix" {
			continue
		}
		if s.MixA < 0 || s.MixA >= len(out) || s.MixB < 0 || s.MixB >= len(out) {
			out[i] = material.NewDiffuse(material.ReflectanceParams{})
			continue
		}
		out[i] = material.NewMix(out[s.MixA], out[s.MixB], s.MixRatio)
	}
	return out
}

func assembleLights(spec LightsSpec) []lights.Light {
	out := make([]lights.Light, 0, len(spec.Point)+len(spec.Directional)+len(spec.Spot)+len(spec.Area))
	for _, l := range spec.Point {
		out = append(out, lights.NewPoint(vec3(l.Position), vec3(l.Intensity)))
	}
	for _, l := range spec.Directional {
		out = append(out, lights.NewDirectional(vec3(l.Direction), vec3(l.Radiance)))
	}
	for _, l := range spec.Spot {
		out = append(out, lights.NewSpot(vec3(l.Position), vec3(l.Direction), vec3(l.Intensity),
			l.FalloffAngle*math.Pi/180, l.CoverageAngle*math.Pi/180))
	}
	for _, l := range spec.Area {
		out = append(out, lights.NewArea(vec3(l.Position), vec3(l.Normal), l.Size, vec3(l.Radiance)))
	}
	return out
}

func buildEnvironment(spec EnvironmentSpec, images map[int]*texture.Image) (*lights.SphericalEnvironment, error) {
	img, ok := images[spec.ImageID]
	if !ok {
		return nil, fmt.Errorf("sceneio: environment references unknown image id %d", spec.ImageID)
	}
	mapping := lights.LatLong
	if spec.Mapping == "probe" {
		mapping = lights.Probe
	}
	return lights.NewSphericalEnvironment(img, mapping), nil
}

func assembleObjects(spec ObjectsSpec, vertices *[]core.Vec3, transforms transformTable, baseDir string) ([]core.Shape, error) {
	var shapes []core.Shape

	for _, s := range spec.Spheres {
		sphere := geometry.NewSphere(vec3(s.Center), s.Radius, s.Material)
		if s.Transform != "" {
			m, err := transforms.resolve(s.Transform)
			if err != nil {
				return nil, fmt.Errorf("sceneio: sphere transform: %w", err)
			}
			sphere.Transform = geometry.NewTransform(m)
		}
		shapes = append(shapes, sphere)
	}

	for _, p := range spec.Planes {
		shapes = append(shapes, geometry.NewPlane(vec3(p.Point), vec3(p.Normal), p.Material))
	}

	for _, t := range spec.Triangles {
		tri := geometry.NewTriangle(*vertices, t.Indices[0], t.Indices[1], t.Indices[2], t.Material)
		if t.Texture != 0 {
			tri.TextureIndex = t.Texture
		}
		shapes = append(shapes, tri)
	}

	for _, ms := range spec.Meshes {
		mesh, err := loadMesh(ms, vertices, transforms, baseDir)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, mesh)
	}

	return shapes, nil
}

// loadMesh appends an external PLY file's vertices to the shared cache
// with a per-mesh index offset, then builds triangles referencing
// them.
func loadMesh(ms MeshSpec, vertices *[]core.Vec3, transforms transformTable, baseDir string) (*geometry.Mesh, error) {
	ply, err := loaders.LoadPLY(filepath.Join(baseDir, ms.PLYFile))
	if err != nil {
		return nil, fmt.Errorf("sceneio: mesh %s: %w", ms.PLYFile, err)
	}

	offset := len(*vertices)
	*vertices = append(*vertices, ply.Vertices...)

	hasNormals := len(ply.Normals) == len(ply.Vertices)
	hasUVs := len(ply.TexCoords) == len(ply.Vertices)

	triangles := make([]*geometry.Triangle, 0, len(ply.Faces)/3)
	for i := 0; i+2 < len(ply.Faces); i += 3 {
		a, b, c := ply.Faces[i], ply.Faces[i+1], ply.Faces[i+2]
		tri := geometry.NewTriangle(*vertices, offset+a, offset+b, offset+c, ms.Material)

		if hasNormals {
			tri.Smooth = true
			tri.N0, tri.N1, tri.N2 = ply.Normals[a], ply.Normals[b], ply.Normals[c]
		}
		if hasUVs {
			tri.HasUV = true
			tri.UV0, tri.UV1, tri.UV2 = ply.TexCoords[a], ply.TexCoords[b], ply.TexCoords[c]
		}
		triangles = append(triangles, tri)
	}

	var transform *geometry.Transform
	if ms.Transform != "" {
		m, err := transforms.resolve(ms.Transform)
		if err != nil {
			return nil, fmt.Errorf("sceneio: mesh transform: %w", err)
		}
		transform = geometry.NewTransform(m)
	}

	return geometry.NewMesh(triangles, *vertices, transform), nil
}

func buildCamera(spec CameraSpec, transforms transformTable) (*camera.Camera, error) {
	cfg := camera.Config{
		Position:     vec3(spec.Position),
		Up:           vec3(spec.Up),
		FovY:         spec.FovYDegrees * math.Pi / 180,
		NearDistance: spec.NearDistance,
		Width:        spec.Width,
		Height:       spec.Height,
		Transform:    core.Identity4(),
	}
	switch {
	case spec.GazePoint != nil:
		cfg.UseGazePoint = true
		cfg.GazePoint = vec3(*spec.GazePoint)
	case spec.Gaze != nil:
		cfg.Gaze = vec3(*spec.Gaze)
	default:
		return nil, fmt.Errorf("sceneio: camera needs either gaze or gaze_point")
	}
	if spec.Transform != "" {
		m, err := transforms.resolve(spec.Transform)
		if err != nil {
			return nil, err
		}
		cfg.Transform = m
	}
	return camera.New(cfg), nil
}
