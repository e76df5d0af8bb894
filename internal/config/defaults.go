package config

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme: "dark",
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Particles: DefaultParticles(),
		Audio: Audio{
			Enabled: true,
			Volume:  ChimeVolume,
		},
	}
}

// DefaultParticles returns the stock tuning table.
func DefaultParticles() Particles {
	return Particles{
		PopulationCap:      PopulationCap,
		DensityDivisor:     DensityDivisor,
		Velocity:           VelocityRange,
		RadiusMin:          RadiusMin,
		RadiusMax:          RadiusMax,
		InitialPhaseMax:    InitialPhaseMax,
		SparklePeriod:      SparklePeriod,
		ConnectionDistance: ConnectionDistance,
		Dark: Palette{
			HueMin:     200,
			HueMax:     260,
			Saturation: 0.7,
			Lightness:  0.7,
			OpacityMin: 0.3,
			OpacityMax: 0.9,
			RayColor:   "#2979ff",
			LinkColor:  "#2979ff",
			LinkAlpha:  0.15,
		},
		Light: Palette{
			Colors: []string{
				"hsl(250, 100.00%, 31.60%)",
				"hsl(260, 70%, 85%)",
				"hsl(240, 60%, 90%)",
				"hsl(270, 50%, 85%)",
				"#ffffff",
			},
			OpacityMin: 0.2,
			OpacityMax: 0.6,
			RayColor:   "rgba(255, 255, 255, 0.8)",
			LinkColor:  "rgba(255, 255, 255, 0.6)",
			LinkAlpha:  0.08,
		},
	}
}
