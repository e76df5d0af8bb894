package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides. Nested keys are separated by a
// double underscore: AMBIENT_PARTICLES__POPULATION_CAP -> particles.population_cap.
const EnvPrefix = "AMBIENT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (AMBIENT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
// Colour strings are checked when the palettes are built.
func (c *Config) Validate() error {
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q: must be one of dark, light", c.Theme)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be within [0,1], got %g", c.Audio.Volume)
	}

	return c.Particles.Validate()
}

// Validate checks the particle tuning table.
func (p Particles) Validate() error {
	if p.DensityDivisor <= 0 {
		return fmt.Errorf("density_divisor must be positive, got %g", p.DensityDivisor)
	}
	if p.PopulationCap < 0 {
		return fmt.Errorf("population_cap must be non-negative, got %d", p.PopulationCap)
	}
	if p.Velocity < 0 {
		return fmt.Errorf("velocity must be non-negative, got %g", p.Velocity)
	}
	if p.RadiusMin <= 0 || p.RadiusMax < p.RadiusMin {
		return fmt.Errorf("radius range [%g, %g) is invalid", p.RadiusMin, p.RadiusMax)
	}
	if p.InitialPhaseMax <= 0 {
		return fmt.Errorf("initial_phase_max must be positive, got %d", p.InitialPhaseMax)
	}
	if p.SparklePeriod <= 0 {
		return fmt.Errorf("sparkle_period must be positive, got %d", p.SparklePeriod)
	}
	if p.ConnectionDistance <= 0 {
		return fmt.Errorf("connection_distance must be positive, got %g", p.ConnectionDistance)
	}
	if err := p.Dark.Validate(); err != nil {
		return fmt.Errorf("dark palette: %w", err)
	}
	if err := p.Light.Validate(); err != nil {
		return fmt.Errorf("light palette: %w", err)
	}
	return nil
}

// Validate checks the numeric ranges of a palette.
func (p Palette) Validate() error {
	if p.OpacityMin <= 0 || p.OpacityMax > 1 || p.OpacityMax < p.OpacityMin {
		return fmt.Errorf("opacity range [%g, %g) must lie within (0,1]", p.OpacityMin, p.OpacityMax)
	}
	if len(p.Colors) == 0 {
		if p.HueMax < p.HueMin {
			return fmt.Errorf("hue range [%g, %g) is inverted", p.HueMin, p.HueMax)
		}
		if p.Saturation < 0 || p.Saturation > 1 || p.Lightness < 0 || p.Lightness > 1 {
			return fmt.Errorf("saturation and lightness must lie within [0,1]")
		}
	}
	if p.RayColor == "" || p.LinkColor == "" {
		return fmt.Errorf("ray_color and link_color are required")
	}
	if p.LinkAlpha < 0 || p.LinkAlpha > 1 {
		return fmt.Errorf("link_alpha must lie within [0,1], got %g", p.LinkAlpha)
	}
	return nil
}
