package config

var Presets = map[string]*Config{
	"fireplace": {
		Effect: "fire", Width: 80, Height: 24, FPS: 30, Divisor: 1.0,
		Palette: "default",
	},
	"coldfire": {
		Effect: "fire", Width: 80, Height: 24, FPS: 30, Divisor: 1.0,
		Palette: "ocean",
	},
	"lavalamp": {
		Effect: "blobs", Width: 80, Height: 24, FPS: 30, Divisor: 0.2,
		Palette: "ember",
	},
	"hypno": {
		Effect: "spiral", Width: 80, Height: 24, FPS: 60, Divisor: 2.0,
		Palette: "default",
	},
	"rainstorm": {
		Effect: "vwave", Width: 80, Height: 24, FPS: 30, Divisor: 0.5,
		Palette: "default",
	},
	"acid": {
		Effect: "plasma", Width: 80, Height: 24, FPS: 60, Divisor: 1.0,
		Palette: "toxic",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
