package config

// Presets are named starting configurations selectable from the CLI.
var Presets = map[string]*Config{
	// The original three-body demo.
	"classic": Default(),

	// Two bodies in a rough mutual orbit.
	"binary": {
		G: 0.0005, TickMS: 20, Width: 900, Height: 600, Bound: DefaultBound,
		Bodies: []BodyConfig{
			{X: 350, Y: 300, VX: 0, VY: -0.35, Diam: 30},
			{X: 550, Y: 300, VX: 0, VY: 0.35, Diam: 30},
		},
	},

	// Head-on pair that meets mid-screen; demonstrates the inelastic
	// collision model.
	"headon": {
		G: 0.0005, TickMS: 20, Width: 900, Height: 600, Bound: DefaultBound,
		Bodies: []BodyConfig{
			{X: 100, Y: 300, VX: 1.5, VY: 0, Diam: 26},
			{X: 800, Y: 300, VX: -1.5, VY: 0, Diam: 26},
		},
	},
}

// GetPreset returns the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
