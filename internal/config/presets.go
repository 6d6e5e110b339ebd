package config

import "sort"

// Presets maps a name to a grid size.
var Presets = map[string]int{
	"small":  5,
	"medium": 10,
	"large":  16,
	"huge":   32,
}

// GetPreset returns a default config sized by the named preset, or nil.
func GetPreset(name string) *Config {
	size, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Size = size
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
