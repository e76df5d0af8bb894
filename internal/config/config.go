package config

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Particle Field - T: theme, O: open document, Esc/Q: quit"

	// Population sizing
	PopulationCap  = 60
	DensityDivisor = 20000

	// Motion and shape
	VelocityRange   = 0.3
	RadiusMin       = 0.8
	RadiusMax       = 2.8
	InitialPhaseMax = 60

	// Rendering
	SparklePeriod      = 45
	SparkleGlowScale   = 1.5
	SparkleAlphaScale  = 1.5
	RayAlphaScale      = 0.6
	RayInner           = 2.0
	RayOuter           = 3.0
	RayCount           = 4
	RayWidth           = 0.8
	ConnectionDistance = 100
	ConnectionWidth    = 0.5

	// Theme-toggle chime
	ChimeSampleRate = 44100
	ChimeVolume     = 0.25
)

// Config is the top-level configuration, corresponding to particle-field.yml.
type Config struct {
	Theme     string    `yaml:"theme" koanf:"theme"`
	Window    Window    `yaml:"window" koanf:"window"`
	Particles Particles `yaml:"particles" koanf:"particles"`
	Audio     Audio     `yaml:"audio" koanf:"audio"`
}

// Window holds the host window settings.
type Window struct {
	Width  int    `yaml:"width" koanf:"width"`
	Height int    `yaml:"height" koanf:"height"`
	Title  string `yaml:"title" koanf:"title"`
}

// Particles is the tuning table of the particle field.
type Particles struct {
	PopulationCap      int     `yaml:"population_cap" koanf:"population_cap"`
	DensityDivisor     float64 `yaml:"density_divisor" koanf:"density_divisor"`
	Velocity           float64 `yaml:"velocity" koanf:"velocity"`
	RadiusMin          float64 `yaml:"radius_min" koanf:"radius_min"`
	RadiusMax          float64 `yaml:"radius_max" koanf:"radius_max"`
	InitialPhaseMax    int     `yaml:"initial_phase_max" koanf:"initial_phase_max"`
	SparklePeriod      int     `yaml:"sparkle_period" koanf:"sparkle_period"`
	ConnectionDistance float64 `yaml:"connection_distance" koanf:"connection_distance"`
	Dark               Palette `yaml:"dark" koanf:"dark"`
	Light              Palette `yaml:"light" koanf:"light"`
}

// Palette describes how one theme colours its particles and strokes.
// When Colors is empty, particle colours come from the hue band.
type Palette struct {
	HueMin     float64  `yaml:"hue_min" koanf:"hue_min"`
	HueMax     float64  `yaml:"hue_max" koanf:"hue_max"`
	Saturation float64  `yaml:"saturation" koanf:"saturation"`
	Lightness  float64  `yaml:"lightness" koanf:"lightness"`
	Colors     []string `yaml:"colors" koanf:"colors"`
	OpacityMin float64  `yaml:"opacity_min" koanf:"opacity_min"`
	OpacityMax float64  `yaml:"opacity_max" koanf:"opacity_max"`
	RayColor   string   `yaml:"ray_color" koanf:"ray_color"`
	LinkColor  string   `yaml:"link_color" koanf:"link_color"`
	LinkAlpha  float64  `yaml:"link_alpha" koanf:"link_alpha"`
}

// Audio controls the theme-toggle chime.
type Audio struct {
	Enabled bool    `yaml:"enabled" koanf:"enabled"`
	Volume  float64 `yaml:"volume" koanf:"volume"`
}
