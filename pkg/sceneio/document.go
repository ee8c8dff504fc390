// Package sceneio parses the JSON scene-description format into a
// built scene.Scene: numeric limits, vertex data, named transforms,
// cameras, lights, materials, textures, and objects, each resolved
// against the others by id or token reference.
package sceneio

import "encoding/json"

// Document is the raw on-disk shape of a scene file.
type Document struct {
	Limits          LimitsSpec          `json:"limits"`
	Vertices        VertexSpec          `json:"vertices"`
	Transformations TransformationsSpec `json:"transformations"`
	Cameras         []CameraSpec        `json:"cameras"`
	Lights          LightsSpec          `json:"lights"`
	Materials       []MaterialSpec      `json:"materials"`
	Images          []ImageSpec         `json:"images"`
	Textures        []TextureSpec       `json:"textures"`
	Objects         ObjectsSpec         `json:"objects"`
}

type LimitsSpec struct {
	MaxRecursionDepth   int        `json:"max_recursion_depth"`
	Background          [3]float64 `json:"background"`
	AmbientLight        [3]float64 `json:"ambient_light"`
	ShadowEpsilon       float64    `json:"shadow_epsilon"`
	IntersectionEpsilon float64    `json:"intersection_epsilon"`
}

// VertexSpec holds a flat axis-ordered triple stream, e.g. AxisOrder
// "xyz" (the default) or a permutation like "xzy" for source data that
// stores axes in a different order than the renderer's object space.
type VertexSpec struct {
	AxisOrder string    `json:"axis_order"`
	Data      []float64 `json:"data"`
}

// TransformField is one id-addressable entry in a transform family;
// Data's layout depends on the family (see buildTransformTable).
type TransformField struct {
	ID   string    `json:"id"`
	Data []float64 `json:"data"`
}

type TransformationsSpec struct {
	Translation []TransformField `json:"translation"`
	Rotation    []TransformField `json:"rotation"`
	Scaling     []TransformField `json:"scaling"`
	Composite   []TransformField `json:"composite"`
}

type CameraSpec struct {
	Position     [3]float64 `json:"position"`
	Gaze         *[3]float64 `json:"gaze"`
	GazePoint    *[3]float64 `json:"gaze_point"`
	Up           [3]float64 `json:"up"`
	FovYDegrees  float64    `json:"fov_y_degrees"`
	NearDistance float64    `json:"near_distance"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Transform    string     `json:"transform"`
}

type PointLightSpec struct {
	Position  [3]float64 `json:"position"`
	Intensity [3]float64 `json:"intensity"`
}

type DirectionalLightSpec struct {
	Direction [3]float64 `json:"direction"`
	Radiance  [3]float64 `json:"radiance"`
}

type SpotLightSpec struct {
	Position      [3]float64 `json:"position"`
	Direction     [3]float64 `json:"direction"`
	Intensity     [3]float64 `json:"intensity"`
	FalloffAngle  float64    `json:"falloff_angle_degrees"`
	CoverageAngle float64    `json:"coverage_angle_degrees"`
}

type AreaLightSpec struct {
	Position [3]float64 `json:"position"`
	Normal   [3]float64 `json:"normal"`
	Size     float64    `json:"size"`
	Radiance [3]float64 `json:"radiance"`
}

type EnvironmentSpec struct {
	ImageID int    `json:"image_id"`
	Mapping string `json:"mapping"` // "lat_long" or "probe"
}

type LightsSpec struct {
	Point       []PointLightSpec       `json:"point"`
	Directional []DirectionalLightSpec `json:"directional"`
	Spot        []SpotLightSpec        `json:"spot"`
	Area        []AreaLightSpec        `json:"area"`
	Environment *EnvironmentSpec       `json:"environment"`
}

// MaterialSpec is tagged by Type; fields irrelevant to a given type are
// simply left at their zero value.
type MaterialSpec struct {
	Type                string     `json:"_type"`
	Ambient             [3]float64 `json:"ambient"`
	Diffuse             [3]float64 `json:"diffuse"`
	Specular            [3]float64 `json:"specular"`
	Exponent            float64    `json:"exponent"`
	Degamma             bool       `json:"degamma"`
	MirrorReflectance   [3]float64 `json:"mirror_reflectance"`
	AbsorptionCoeff     [3]float64 `json:"absorption_coefficient"`
	AbsorptionIndex     float64    `json:"absorption_index"`
	RefractionIndex     float64    `json:"refraction_index"`
	Roughness           float64    `json:"roughness"`
	BRDFID              *int       `json:"brdf_id"`
	MixRatio            float64    `json:"mix_ratio"`
	MixA                int        `json:"mix_a"`
	MixB                int        `json:"mix_b"`
}

type ImageSpec struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

type TextureSpec struct {
	Type       string     `json:"_type"`
	DecalMode  string     `json:"decal_mode"`
	ImageID    int        `json:"image_id"`
	Scale      float64    `json:"scale"`
	Offset     float64    `json:"offset"`
	Black      [3]float64 `json:"black"`
	White      [3]float64 `json:"white"`
	Octaves    int        `json:"octaves"`
	Conversion string     `json:"conversion"`
	BumpFactor float64    `json:"bump_factor"`
}

type SphereSpec struct {
	Center    [3]float64 `json:"center"`
	Radius    float64    `json:"radius"`
	Material  int        `json:"material"`
	Transform string     `json:"transform"`
}

type PlaneSpec struct {
	Point    [3]float64 `json:"point"`
	Normal   [3]float64 `json:"normal"`
	Material int        `json:"material"`
}

type TriangleSpec struct {
	Indices  [3]int `json:"indices"`
	Material int    `json:"material"`
	Texture  int    `json:"texture"`
}

type MeshSpec struct {
	PLYFile   string `json:"ply_file"`
	Material  int    `json:"material"`
	Transform string `json:"transform"`
}

type ObjectsSpec struct {
	Spheres   []SphereSpec   `json:"spheres"`
	Planes    []PlaneSpec    `json:"planes"`
	Triangles []TriangleSpec `json:"triangles"`
	Meshes    []MeshSpec     `json:"meshes"`
}

// Parse decodes raw scene-file bytes into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
