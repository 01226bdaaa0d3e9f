package config

// Presets are classic parameter sets. The circle-mode multipliers trace
// the familiar epicycloids: K=2 the cardioid, K=3 the nephroid, and so
// on with K-1 cusps.
var Presets = map[string]*Config{
	"cardioid": {
		VertexCount: 50, Modulus: 200, Multiplier: 2, AngleDeg: 0, CanvasSize: 1200,
	},
	"nephroid": {
		VertexCount: 50, Modulus: 210, Multiplier: 3, AngleDeg: 0, CanvasSize: 1200,
	},
	"trefoil": {
		VertexCount: 50, Modulus: 220, Multiplier: 4, AngleDeg: 0, CanvasSize: 1200,
	},
	"web": {
		VertexCount: 50, Modulus: 512, Multiplier: 51, AngleDeg: 0, CanvasSize: 1200,
	},
	"triangle": {
		VertexCount: 3, Modulus: 99, Multiplier: 2, AngleDeg: -150, CanvasSize: 1200,
	},
	"pentagram": {
		VertexCount: 5, Modulus: 100, Multiplier: 21, AngleDeg: 90, CanvasSize: 1200,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
