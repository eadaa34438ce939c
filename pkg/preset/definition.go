package preset

// Document mirrors the on-disk YAML schema of a pipeline preset. A
// preset names a set of module definitions, the root of the graph, an
// optional seed applied to every generator, and an optional gradient
// used when rendering the result.
type Document struct {
	Seed     *int32             `yaml:"seed,omitempty"`
	Modules  []ModuleDefinition `yaml:"modules"`
	Root     string             `yaml:"root"`
	Gradient []GradientStop     `yaml:"gradient,omitempty"`
}

// ModuleDefinition describes one module of the graph. Name must be
// unique within the document; Sources lists the names of the modules
// bound to the source slots, in slot order. Parameter fields are
// pointers so an absent key keeps the module's default.
type ModuleDefinition struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Sources []string `yaml:"sources,omitempty"`

	// Fractal generator parameters (perlin, billow, simplex).
	Frequency   *float64 `yaml:"frequency,omitempty"`
	Lacunarity  *float64 `yaml:"lacunarity,omitempty"`
	Persistence *float64 `yaml:"persistence,omitempty"`
	Octaves     *int     `yaml:"octaves,omitempty"`
	Quality     *string  `yaml:"quality,omitempty"`
	Seed        *int32   `yaml:"seed,omitempty"`

	// Voronoi parameters.
	Displacement *float64 `yaml:"displacement,omitempty"`
	Distance     *bool    `yaml:"distance,omitempty"`

	// Turbulence parameters.
	Power     *float64 `yaml:"power,omitempty"`
	Roughness *int     `yaml:"roughness,omitempty"`

	// Rotate parameters: Euler angles in degrees, in x, y, z order.
	Angles []float64 `yaml:"angles,omitempty"`

	// Const parameter.
	Value *float64 `yaml:"value,omitempty"`

	// ScaleBias parameters.
	Scale *float64 `yaml:"scale,omitempty"`
	Bias  *float64 `yaml:"bias,omitempty"`
}

// GradientStop is one stop of the preset's gradient table. Color
// holds RGBA bytes; a three-entry color is treated as fully opaque.
type GradientStop struct {
	Pos   float64 `yaml:"pos"`
	Color []uint8 `yaml:"color"`
}
