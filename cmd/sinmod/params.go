package main

import (
	"fmt"
	"strings"

	"github.com/san-kum/sinmod/internal/config"
	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/spf13/cobra"
)

// changedParams collects the parameter flags given on the command line.
func changedParams(cmd *cobra.Command) map[string]any {
	out := map[string]any{}
	flags := map[string]any{
		"amplitude": amplitude,
		"phase":     phase,
		"omega":     omega,
		"period":    period,
		"harmonics": harmonics,
	}
	for name, v := range flags {
		if cmd.Flags().Changed(name) {
			out[name] = v
		}
	}
	return out
}

// resolveParams layers the parameters: preset, then --set pairs, then
// the explicit parameter flags.
func resolveParams(presetName string, pairs []string, flags map[string]any) (sinmod.Params, error) {
	p := sinmod.Default()
	if presetName != "" {
		var err error
		if p, err = config.GetPreset(presetName); err != nil {
			return sinmod.Params{}, err
		}
	}

	values, err := parseSets(pairs)
	if err != nil {
		return sinmod.Params{}, err
	}
	if p, err = config.DecodeParams(p, values); err != nil {
		return sinmod.Params{}, err
	}
	return config.DecodeParams(p, flags)
}

// parseSets splits field=value pairs. Values stay strings; the decoder
// converts them.
func parseSets(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want field=value", pair)
		}
		values[key] = strings.TrimSpace(value)
	}
	return values, nil
}
