// Package preset loads module-graph pipelines from YAML documents.
// A document declares named modules, their parameters and wiring; the
// loader builds the graph in dependency order and hands back the root
// module ready for sampling.
package preset

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"noisegraph/pkg/noise"
	"noisegraph/pkg/noise/module"
	"noisegraph/pkg/noisemap"
)

// Preset is a fully constructed pipeline.
type Preset struct {
	// Root is the module the document names as the graph root.
	Root module.Module
	// Modules holds every constructed module by definition name.
	Modules map[string]module.Module
	// Gradient is the document's gradient table, nil when absent.
	Gradient *noisemap.GradientColor
	// Seed is the document-wide seed, 0 when absent.
	Seed int32
}

// Parse decodes and builds a preset from a YAML payload.
func Parse(data []byte) (*Preset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("preset: document is empty")
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("preset: decode document: %w", err)
	}
	return build(&doc)
}

// Load reads a preset file from disk and builds it.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset: %s: %w", path, err)
	}
	return p, nil
}

// sourceArity maps a module type to the number of sources its
// definition must list.
var sourceArity = map[string]int{
	"perlin":     0,
	"billow":     0,
	"voronoi":    0,
	"simplex":    0,
	"const":      0,
	"turbulence": 1,
	"rotate":     1,
	"scalebias":  1,
	"blend":      3,
}

type graphBuilder struct {
	defs     map[string]*ModuleDefinition
	built    map[string]module.Module
	visiting map[string]bool
	seed     *int32
}

func build(doc *Document) (*Preset, error) {
	if len(doc.Modules) == 0 {
		return nil, fmt.Errorf("preset: no modules defined")
	}
	if strings.TrimSpace(doc.Root) == "" {
		return nil, fmt.Errorf("preset: root module is required")
	}

	gb := &graphBuilder{
		defs:     make(map[string]*ModuleDefinition, len(doc.Modules)),
		built:    make(map[string]module.Module, len(doc.Modules)),
		visiting: make(map[string]bool),
		seed:     doc.Seed,
	}
	for i := range doc.Modules {
		def := &doc.Modules[i]
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, fmt.Errorf("preset: module %d has no name", i)
		}
		if _, exists := gb.defs[name]; exists {
			return nil, fmt.Errorf("preset: duplicate module name %q", name)
		}
		gb.defs[name] = def
	}

	// Building the root resolves its dependencies recursively; build
	// the rest too so unreferenced definitions still surface errors.
	root, err := gb.resolve(strings.TrimSpace(doc.Root))
	if err != nil {
		return nil, err
	}
	for name := range gb.defs {
		if _, err := gb.resolve(name); err != nil {
			return nil, err
		}
	}

	grad, err := buildGradient(doc.Gradient)
	if err != nil {
		return nil, err
	}

	p := &Preset{
		Root:     root,
		Modules:  gb.built,
		Gradient: grad,
	}
	if doc.Seed != nil {
		p.Seed = *doc.Seed
	}
	return p, nil
}

// resolve returns the constructed module for name, building it and
// its sources first if needed.
func (gb *graphBuilder) resolve(name string) (module.Module, error) {
	if m, ok := gb.built[name]; ok {
		return m, nil
	}
	def, ok := gb.defs[name]
	if !ok {
		return nil, fmt.Errorf("preset: unknown module %q", name)
	}
	if gb.visiting[name] {
		return nil, fmt.Errorf("preset: module cycle through %q", name)
	}
	gb.visiting[name] = true
	defer delete(gb.visiting, name)

	typ := strings.ToLower(strings.TrimSpace(def.Type))
	arity, known := sourceArity[typ]
	if !known {
		return nil, fmt.Errorf("preset: module %q: unknown type %q", name, def.Type)
	}
	if len(def.Sources) != arity {
		return nil, fmt.Errorf("preset: module %q: type %s takes %d sources, got %d",
			name, typ, arity, len(def.Sources))
	}

	sources := make([]module.Module, len(def.Sources))
	for i, srcName := range def.Sources {
		src, err := gb.resolve(strings.TrimSpace(srcName))
		if err != nil {
			return nil, err
		}
		sources[i] = src
	}

	m, err := gb.construct(typ, def)
	if err != nil {
		return nil, fmt.Errorf("preset: module %q: %w", name, err)
	}
	for i, src := range sources {
		m.SetSourceModule(i, src)
	}

	gb.built[name] = m
	return m, nil
}

// construct creates the module for def with defaults applied, then
// overrides the parameters the definition sets.
func (gb *graphBuilder) construct(typ string, def *ModuleDefinition) (module.Module, error) {
	switch typ {
	case "perlin":
		p := module.NewPerlin()
		if err := gb.applyOctaveParams(def, p); err != nil {
			return nil, err
		}
		if err := applyQuality(def, p); err != nil {
			return nil, err
		}
		return p, nil

	case "billow":
		b := module.NewBillow()
		if err := gb.applyOctaveParams(def, b); err != nil {
			return nil, err
		}
		if err := applyQuality(def, b); err != nil {
			return nil, err
		}
		return b, nil

	case "simplex":
		s := module.NewSimplex()
		if err := gb.applyOctaveParams(def, s); err != nil {
			return nil, err
		}
		return s, nil

	case "voronoi":
		v := module.NewVoronoi()
		if def.Frequency != nil {
			v.SetFrequency(*def.Frequency)
		}
		if def.Displacement != nil {
			v.SetDisplacement(*def.Displacement)
		}
		if def.Distance != nil {
			v.EnableDistance(*def.Distance)
		}
		v.SetSeed(gb.moduleSeed(def))
		return v, nil

	case "turbulence":
		t := module.NewTurbulence()
		if def.Frequency != nil {
			t.SetFrequency(*def.Frequency)
		}
		if def.Power != nil {
			t.SetPower(*def.Power)
		}
		if def.Roughness != nil {
			if err := t.SetRoughness(*def.Roughness); err != nil {
				return nil, err
			}
		}
		t.SetSeed(gb.moduleSeed(def))
		return t, nil

	case "rotate":
		r := module.NewRotatePoint()
		if def.Angles != nil {
			if len(def.Angles) != 3 {
				return nil, fmt.Errorf("%w: angles needs 3 entries, got %d",
					noise.ErrInvalidParam, len(def.Angles))
			}
			r.SetAngles(def.Angles[0], def.Angles[1], def.Angles[2])
		}
		return r, nil

	case "blend":
		return module.NewBlend(), nil

	case "const":
		c := module.NewConst(0)
		if def.Value != nil {
			c.SetConstValue(*def.Value)
		}
		return c, nil

	case "scalebias":
		sb := module.NewScaleBias()
		if def.Scale != nil {
			sb.SetScale(*def.Scale)
		}
		if def.Bias != nil {
			sb.SetBias(*def.Bias)
		}
		return sb, nil
	}
	return nil, fmt.Errorf("unknown type %q", typ)
}

// octaveModule is the parameter surface shared by the fractal
// generators.
type octaveModule interface {
	SetFrequency(float64)
	SetLacunarity(float64)
	SetPersistence(float64)
	SetOctaveCount(int) error
	SetSeed(int32)
}

func (gb *graphBuilder) applyOctaveParams(def *ModuleDefinition, m octaveModule) error {
	if def.Frequency != nil {
		m.SetFrequency(*def.Frequency)
	}
	if def.Lacunarity != nil {
		m.SetLacunarity(*def.Lacunarity)
	}
	if def.Persistence != nil {
		m.SetPersistence(*def.Persistence)
	}
	if def.Octaves != nil {
		if err := m.SetOctaveCount(*def.Octaves); err != nil {
			return err
		}
	}
	m.SetSeed(gb.moduleSeed(def))
	return nil
}

type qualityModule interface {
	SetQuality(noise.Quality)
}

func applyQuality(def *ModuleDefinition, m qualityModule) error {
	if def.Quality == nil {
		return nil
	}
	q, err := parseQuality(*def.Quality)
	if err != nil {
		return err
	}
	m.SetQuality(q)
	return nil
}

func parseQuality(s string) (noise.Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast":
		return noise.QualityFast, nil
	case "standard":
		return noise.QualityStandard, nil
	case "best":
		return noise.QualityBest, nil
	}
	return noise.QualityStandard, fmt.Errorf("%w: unknown quality %q", noise.ErrInvalidParam, s)
}

// moduleSeed picks the seed for one module: its own seed when the
// definition sets one, otherwise the document seed, otherwise 0.
func (gb *graphBuilder) moduleSeed(def *ModuleDefinition) int32 {
	if def.Seed != nil {
		return *def.Seed
	}
	if gb.seed != nil {
		return *gb.seed
	}
	return 0
}

func buildGradient(stops []GradientStop) (*noisemap.GradientColor, error) {
	if len(stops) == 0 {
		return nil, nil
	}
	grad := noisemap.NewGradientColor()
	for i, stop := range stops {
		c, err := stopColor(stop.Color)
		if err != nil {
			return nil, fmt.Errorf("preset: gradient stop %d: %w", i, err)
		}
		if err := grad.AddGradientPoint(stop.Pos, c); err != nil {
			return nil, fmt.Errorf("preset: gradient stop %d: %w", i, err)
		}
	}
	return grad, nil
}

func stopColor(channels []uint8) (color.RGBA, error) {
	switch len(channels) {
	case 3:
		return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}, nil
	case 4:
		return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: color needs 3 or 4 channels, got %d",
		noise.ErrInvalidParam, len(channels))
}
