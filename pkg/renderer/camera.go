package renderer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidCamera is returned when a camera configuration has no valid viewport
var ErrInvalidCamera = errors.New("invalid camera")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Point     // Camera position (look-from)
	LookAt        core.Point     // Point the camera is looking at
	Up            core.Direction // Up direction (usually (0,1,0))
	Width         int            // Image width in pixels
	AspectRatio   float64        // Aspect ratio (width/height)
	VFov          float64        // Vertical field of view in degrees
	DefocusAngle  float64        // Cone angle in degrees through each pixel (<= 0 = pinhole)
	FocusDistance float64        // Distance to the plane of perfect focus (0 = distance to LookAt)
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewPoint(0, 0, 0),
		LookAt:      core.NewPoint(0, 0, -1),
		Up:          core.NewDirection(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}
}

// Camera generates rays for rendering.
// It is immutable after construction and shared by all workers.
type Camera struct {
	Width  int
	Height int

	center      core.Point
	pixel00     core.Point     // Center of the top-left pixel
	pixelDeltaU core.Direction // Offset to the pixel on the right
	pixelDeltaV core.Direction // Offset to the pixel below
	basis       core.Basis     // U right, V up, W backward

	defocusRadius float64
	defocusDiskU  core.Direction
	defocusDiskV  core.Direction
}

// NewCamera derives the viewport geometry from a camera configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 {
		return nil, fmt.Errorf("width %d: %w", config.Width, ErrInvalidCamera)
	}
	if config.AspectRatio <= 1e-8 {
		return nil, fmt.Errorf("aspect ratio %g: %w", config.AspectRatio, ErrInvalidCamera)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("vertical fov %g: %w", config.VFov, ErrInvalidCamera)
	}
	if config.DefocusAngle >= 180 {
		return nil, fmt.Errorf("defocus angle %g: %w", config.DefocusAngle, ErrInvalidCamera)
	}

	lookDirection := config.Center.Subtract(config.LookAt)
	if lookDirection.NearZero() {
		return nil, fmt.Errorf("camera center equals look-at point: %w", ErrInvalidCamera)
	}

	w := lookDirection.Normalize()
	right := config.Up.Cross(w)
	if right.NearZero() {
		return nil, fmt.Errorf("up vector %v is parallel to the view direction: %w", config.Up, ErrInvalidCamera)
	}
	u := right.Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = lookDirection.Length()
	}

	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	// Viewport dimensions on the focus plane
	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(height)
	if viewportHeight <= 1e-8 {
		return nil, fmt.Errorf("viewport height %g: %w", viewportHeight, ErrInvalidCamera)
	}

	// Image rows run top to bottom, so V is negated
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	upperLeft := config.Center.
		Offset(w, -focusDistance).
		Offset(viewportU, -0.5).
		Offset(viewportV, -0.5)
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	// Any angle at or below zero is a pinhole
	defocusRadius := 0.0
	if config.DefocusAngle > 0 {
		defocusRadius = focusDistance * math.Tan(config.DefocusAngle*math.Pi/180.0/2)
	}

	return &Camera{
		Width:         config.Width,
		Height:        height,
		center:        config.Center,
		pixel00:       pixel00,
		pixelDeltaU:   pixelDeltaU,
		pixelDeltaV:   pixelDeltaV,
		basis:         core.Basis{U: u, V: v, W: w},
		defocusRadius: defocusRadius,
		defocusDiskU:  u.Multiply(defocusRadius),
		defocusDiskV:  v.Multiply(defocusRadius),
	}, nil
}

// GetRay generates a ray through pixel (i, j), counted from the top-left.
// With jitter the target is a uniform point in the pixel's square; without it
// the pixel center. The origin is sampled on the defocus disk when the camera
// has a non-zero defocus angle.
func (c *Camera) GetRay(i, j int, random *rand.Rand, jitter bool) core.Ray {
	offsetX, offsetY := 0.0, 0.0
	if jitter {
		offsetX = random.Float64() - 0.5
		offsetY = random.Float64() - 0.5
	}

	pixelSample := c.pixel00.
		Offset(c.pixelDeltaU, float64(i)+offsetX).
		Offset(c.pixelDeltaV, float64(j)+offsetY)

	origin := c.center
	if c.defocusRadius > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random point on the camera's lens disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Point {
	p := core.RandomInUnitDisk(random)
	return c.center.Offset(c.defocusDiskU, p.X).Offset(c.defocusDiskV, p.Y)
}

// GetCameraForward returns the unit direction the camera looks along
func (c *Camera) GetCameraForward() core.Direction {
	return c.basis.W.Negate()
}

// GetCenter returns the eye position
func (c *Camera) GetCenter() core.Point {
	return c.center
}

// DefocusRadius returns the radius of the lens disk (0 for a pinhole camera)
func (c *Camera) DefocusRadius() float64 {
	return c.defocusRadius
}
