package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Vec3Cfg is a JSON triple: [x, y, z] or [r, g, b]
type Vec3Cfg [3]float64

func (v Vec3Cfg) point() core.Point         { return core.NewPoint(v[0], v[1], v[2]) }
func (v Vec3Cfg) direction() core.Direction { return core.NewDirection(v[0], v[1], v[2]) }
func (v Vec3Cfg) color() core.Color         { return core.NewColor(v[0], v[1], v[2]) }

type CameraCfg struct {
	Width         int      `json:"width,omitempty"`
	AspectRatio   float64  `json:"aspect_ratio"`
	LookFrom      Vec3Cfg  `json:"look_from"`
	LookAt        Vec3Cfg  `json:"look_at"`
	Up            *Vec3Cfg `json:"up,omitempty"` // defaults to +Y
	VFov          float64  `json:"vfov"`
	FocusDistance float64  `json:"focus_distance,omitempty"`
	DefocusAngle  float64  `json:"defocus_angle,omitempty"`
}

type BackgroundCfg struct {
	Type   string  `json:"type"` // gradient | solid
	Bottom Vec3Cfg `json:"bottom"`
	Top    Vec3Cfg `json:"top"`
	Color  Vec3Cfg `json:"color"`
}

type SamplingCfg struct {
	SamplesPerPixel int `json:"samples_per_pixel,omitempty"`
	MaxDepth        int `json:"max_depth,omitempty"`
}

type MaterialCfg struct {
	Type   string   `json:"type"` // lambertian | metal | dielectric | light | isotropic | mix
	Albedo Vec3Cfg  `json:"albedo"`
	Fuzz   float64  `json:"fuzz,omitempty"`
	Index  float64  `json:"index,omitempty"`
	Emit   Vec3Cfg  `json:"emit"`
	Scale  float64  `json:"checker_scale,omitempty"` // lambertian only: checkerboard cell size
	Odd    *Vec3Cfg `json:"checker_odd,omitempty"`   // lambertian only: second checker color
	First  string   `json:"first,omitempty"`         // mix only: material used at ratio 0
	Second string   `json:"second,omitempty"`        // mix only: material used at ratio 1
	Ratio  float64  `json:"ratio,omitempty"`
}

// ObjectCfg holds the fields of every object type; each type reads the ones it needs
type ObjectCfg struct {
	Type     string `json:"type"` // sphere | plane | quad | disk | cube | tube | cylinder | medium | swarm | group
	Material string `json:"material,omitempty"`

	Center Vec3Cfg  `json:"center"`
	Radius float64  `json:"radius,omitempty"`
	Point  Vec3Cfg  `json:"point"`
	Normal Vec3Cfg  `json:"normal"`
	Corner Vec3Cfg  `json:"corner"`
	U      Vec3Cfg  `json:"u"`
	V      Vec3Cfg  `json:"v"`
	Size   float64  `json:"size,omitempty"`
	Seed   *int64   `json:"orientation_seed,omitempty"` // cube: random orientation from this seed
	Base   Vec3Cfg  `json:"base"`
	Axis   Vec3Cfg  `json:"axis"`
	Top    string   `json:"top_material,omitempty"`
	Bottom string   `json:"bottom_material,omitempty"`
	Albedo *Vec3Cfg `json:"albedo,omitempty"` // medium: isotropic color when no material is named

	Boundary *ObjectCfg  `json:"boundary,omitempty"`
	Objects  []ObjectCfg `json:"objects,omitempty"` // group members
	Density  float64     `json:"density,omitempty"`

	SwarmRadius    float64 `json:"swarm_radius,omitempty"`
	ParticleRadius float64 `json:"particle_radius,omitempty"`
	Count          int     `json:"count,omitempty"`
	Bias           float64 `json:"bias,omitempty"`
	SwarmSeed      int64   `json:"seed,omitempty"`
}

// FileCfg is the top level of a JSON scene file
type FileCfg struct {
	Name       string                 `json:"name,omitempty"`
	Camera     CameraCfg              `json:"camera"`
	Background *BackgroundCfg         `json:"background,omitempty"`
	Sampling   SamplingCfg            `json:"sampling"`
	Materials  map[string]MaterialCfg `json:"materials"`
	Objects    []ObjectCfg            `json:"objects"`
}

// LoadFile reads a JSON scene file. The scene is named after the file unless the file names it.
func LoadFile(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene %s: %w", path, err)
	}
	defer file.Close()

	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes a JSON scene and builds its world.
// Unknown fields, unknown types and references to missing materials are errors.
func Parse(r io.Reader) (*Scene, error) {
	var cfg FileCfg
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return cfg.Build()
}

// Build validates the configuration and constructs the scene
func (cfg *FileCfg) Build() (*Scene, error) {
	materials := make(map[string]material.Material, len(cfg.Materials))
	for name, mc := range cfg.Materials {
		if mc.Type == "mix" {
			continue
		}
		mat, err := mc.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}
	// Mixes refer to the plain materials above, so they are built second
	mixes := make(map[string]material.Material)
	for name, mc := range cfg.Materials {
		if mc.Type != "mix" {
			continue
		}
		first, err := lookup(materials, mc.First, false)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		second, err := lookup(materials, mc.Second, false)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		mixes[name] = material.NewMix(first, second, mc.Ratio)
	}
	for name, mat := range mixes {
		materials[name] = mat
	}

	world := geometry.NewHittableList()
	for i, oc := range cfg.Objects {
		obj, err := oc.build(materials)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, oc.Type, err)
		}
		world.Add(obj)
	}

	background, err := cfg.Background.build()
	if err != nil {
		return nil, err
	}

	sampling := renderer.DefaultSamplingConfig()
	if cfg.Sampling.SamplesPerPixel > 0 {
		sampling.SamplesPerPixel = cfg.Sampling.SamplesPerPixel
	}
	if cfg.Sampling.MaxDepth > 0 {
		sampling.MaxDepth = cfg.Sampling.MaxDepth
	}

	return &Scene{
		Name:         cfg.Name,
		World:        world,
		CameraConfig: cfg.Camera.build(),
		Background:   background,
		Sampling:     sampling,
	}, nil
}

func (c CameraCfg) build() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.Center = c.LookFrom.point()
	config.LookAt = c.LookAt.point()
	if c.Up != nil {
		config.Up = c.Up.direction()
	}
	if c.Width > 0 {
		config.Width = c.Width
	}
	if c.AspectRatio > 0 {
		config.AspectRatio = c.AspectRatio
	}
	if c.VFov > 0 {
		config.VFov = c.VFov
	}
	config.FocusDistance = c.FocusDistance
	config.DefocusAngle = c.DefocusAngle
	return config
}

// build returns the background; a missing background is black
func (b *BackgroundCfg) build() (renderer.BackgroundFunc, error) {
	if b == nil {
		return SolidSky(core.Black), nil
	}
	switch b.Type {
	case "gradient":
		return GradientSky(b.Bottom.color(), b.Top.color()), nil
	case "solid":
		return SolidSky(b.Color.color()), nil
	default:
		return nil, fmt.Errorf("unknown background type %q", b.Type)
	}
}

func (m MaterialCfg) build() (material.Material, error) {
	switch m.Type {
	case "lambertian":
		if m.Odd != nil {
			scale := m.Scale
			if scale <= 0 {
				scale = 1
			}
			return material.NewTexturedLambertian(material.NewChecker(scale, m.Albedo.color(), m.Odd.color())), nil
		}
		return material.NewLambertian(m.Albedo.color()), nil
	case "metal":
		return material.NewMetal(m.Albedo.color(), m.Fuzz), nil
	case "dielectric":
		if m.Index <= 0 || math.IsNaN(m.Index) {
			return nil, fmt.Errorf("refractive index %g must be positive", m.Index)
		}
		return material.NewDielectric(m.Index), nil
	case "light":
		return material.NewLight(m.Emit.color()), nil
	case "isotropic":
		return material.NewIsotropic(m.Albedo.color()), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

// lookup resolves a material reference. An empty name is only allowed when optional is set.
func lookup(materials map[string]material.Material, name string, optional bool) (material.Material, error) {
	if name == "" {
		if optional {
			return nil, nil
		}
		return nil, fmt.Errorf("material is required")
	}
	mat, ok := materials[name]
	if !ok {
		return nil, fmt.Errorf("unknown material %q", name)
	}
	return mat, nil
}

func (o ObjectCfg) build(materials map[string]material.Material) (geometry.Hittable, error) {
	return o.buildWith(materials, false)
}

// buildWith constructs the object. Medium boundaries never shade, so their material is optional.
func (o ObjectCfg) buildWith(materials map[string]material.Material, boundary bool) (geometry.Hittable, error) {
	switch o.Type {
	case "medium":
		return o.buildMedium(materials)
	case "group":
		return o.buildGroup(materials, boundary)
	}

	mat, err := lookup(materials, o.Material, boundary)
	if err != nil {
		return nil, err
	}

	switch o.Type {
	case "sphere":
		return geometry.NewSphere(o.Center.point(), o.Radius, mat)
	case "plane":
		return geometry.NewPlane(o.Point.point(), o.Normal.direction(), mat)
	case "quad":
		return geometry.NewQuad(o.Corner.point(), o.U.direction(), o.V.direction(), mat)
	case "disk":
		return geometry.NewDisk(o.Center.point(), o.Normal.direction(), o.Radius, mat)
	case "cube":
		basis := core.StandardBasis()
		if o.Seed != nil {
			basis = core.RandomBasis(rand.New(rand.NewSource(*o.Seed)))
		}
		return geometry.NewOrientedCube(o.Center.point(), o.Size, basis, mat)
	case "tube":
		return geometry.NewTube(o.Base.point(), o.Axis.direction(), o.Radius, mat)
	case "cylinder":
		top, err := o.capMaterial(materials, o.Top, mat)
		if err != nil {
			return nil, err
		}
		bottom, err := o.capMaterial(materials, o.Bottom, mat)
		if err != nil {
			return nil, err
		}
		return geometry.NewCylinder(o.Base.point(), o.Axis.direction(), o.Radius, mat, top, bottom)
	case "swarm":
		bias := o.Bias
		if bias == 0 {
			bias = 1
		}
		return geometry.NewSwarm(o.Center.point(), o.SwarmRadius, o.ParticleRadius, mat, o.Count, bias, o.SwarmSeed)
	default:
		return nil, fmt.Errorf("unknown object type %q", o.Type)
	}
}

// capMaterial falls back to the side material when a cap names none
func (o ObjectCfg) capMaterial(materials map[string]material.Material, name string, side material.Material) (material.Material, error) {
	if name == "" {
		return side, nil
	}
	return lookup(materials, name, false)
}

func (o ObjectCfg) buildMedium(materials map[string]material.Material) (geometry.Hittable, error) {
	if o.Density <= 0 || math.IsNaN(o.Density) {
		return nil, fmt.Errorf("density %g must be positive", o.Density)
	}
	if o.Boundary == nil {
		return nil, fmt.Errorf("medium needs a boundary")
	}
	boundary, err := o.Boundary.buildWith(materials, true)
	if err != nil {
		return nil, fmt.Errorf("boundary: %w", err)
	}

	if o.Material == "" {
		albedo := core.White
		if o.Albedo != nil {
			albedo = o.Albedo.color()
		}
		return geometry.NewSmoke(boundary, o.Density, albedo)
	}
	phase, err := lookup(materials, o.Material, false)
	if err != nil {
		return nil, err
	}
	return geometry.NewConstantMedium(boundary, o.Density, phase)
}

// buildGroup collects members into one list. A group used as a medium boundary
// reports every crossing so the medium can find its exit.
func (o ObjectCfg) buildGroup(materials map[string]material.Material, boundary bool) (geometry.Hittable, error) {
	group := geometry.NewHittableList()
	if boundary {
		group = geometry.NewSortedHittableList()
	}
	for i, member := range o.Objects {
		obj, err := member.buildWith(materials, boundary)
		if err != nil {
			return nil, fmt.Errorf("member %d (%s): %w", i, member.Type, err)
		}
		group.Add(obj)
	}
	return group, nil
}
