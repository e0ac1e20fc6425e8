package config

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/san-kum/sinmod/internal/sinmod"
)

// Presets are built-in parameter sets, keyed by name. Missing keys keep
// the defaults.
var Presets = map[string]map[string]any{
	"default": {},
	"fundamental": {
		"harmonics": 1,
	},
	"square": {
		"amplitude": 1.2, "harmonics": 10,
	},
	"fine-tags": {
		"omega": 3.0, "period": 5.0, "harmonics": 2,
	},
	"coarse-tags": {
		"omega": 0.5, "period": 1.0, "harmonics": 4,
	},
	"quarter-shift": {
		"phase": 1.6, "harmonics": 1,
	},
}

// fieldKeys maps parameter fields onto their mapstructure keys.
var fieldKeys = map[sinmod.Field]string{
	sinmod.FieldAmplitude:        "amplitude",
	sinmod.FieldPhase:            "phase",
	sinmod.FieldAngularFrequency: "omega",
	sinmod.FieldPeriod:           "period",
	sinmod.FieldHarmonics:        "harmonics",
}

// GetPreset returns the parameter set of a preset.
func GetPreset(name string) (sinmod.Params, error) {
	values, ok := Presets[name]
	if !ok {
		return sinmod.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	return DecodeParams(sinmod.Default(), values)
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeParams overlays values on base. Keys may be any name accepted by
// sinmod.ParseField; string values are converted to numbers. The result
// is validated. Two keys naming the same field are rejected.
func DecodeParams(base sinmod.Params, values map[string]any) (sinmod.Params, error) {
	normalized := make(map[string]any, len(values))
	seen := make(map[sinmod.Field]string, len(values))
	for k, v := range values {
		f, err := sinmod.ParseField(k)
		if err != nil {
			return base, err
		}
		if prev, ok := seen[f]; ok {
			return base, fmt.Errorf("%w: %q and %q both set %s", sinmod.ErrInvalidValue, prev, k, f)
		}
		seen[f] = k
		normalized[fieldKeys[f]] = v
	}

	out := base
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return base, err
	}
	if err := dec.Decode(normalized); err != nil {
		return base, fmt.Errorf("%w: %v", sinmod.ErrInvalidValue, err)
	}
	if err := out.Validate(); err != nil {
		return base, err
	}
	return out, nil
}
