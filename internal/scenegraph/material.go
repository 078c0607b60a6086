package scenegraph

import "image/color"

// Material describes how a primitive surface is drawn: base color, the usual
// roughness/metalness pair, and opacity. Opacity below 1 marks the material
// transparent (acrylic walls, reservoir water). Wireframe is the only field
// mutated after construction; the view controller flips it on every drawable
// when the wireframe toggle fires.
type Material struct {
	Color     color.RGBA
	Roughness float32
	Metalness float32
	Opacity   float32

	// Wireframe draws edges only. Toggled at runtime; label materials are exempt.
	Wireframe bool

	// Label marks text-sprite materials. Labels keep their look in wireframe
	// view and always face the camera.
	Label bool

	// Emissive surfaces ignore scene lighting and pulse with the status light
	// (e.g. the electronics status LED).
	Emissive bool
}

// NewMaterial returns an opaque material with the given color and mid-range
// roughness, no metalness.
func NewMaterial(c color.RGBA) Material {
	return Material{Color: c, Roughness: 0.6, Opacity: 1}
}

// Transparent reports whether the material needs alpha blending.
func (m Material) Transparent() bool {
	return m.Opacity < 1
}
