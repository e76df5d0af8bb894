package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-field/internal/chime"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
)

var (
	cfgFile   string
	debug     bool
	themeFlag string
	mute      bool
)

var rootCmd = &cobra.Command{
	Use:   "particle-field",
	Short: "Ambient particle field with sparkles and theme toggle",
	Long: `Particle Field opens a resizable window with a drifting, theme-reactive
particle background. Press T to switch between dark and light, O to pick
a document, M to mute the theme chime and Esc or Q to quit.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "particle-field.yml", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log to "+logDir)
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "initial theme: dark or light")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "start with the theme chime muted")
}

// loadConfig loads and validates the configuration, applying flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	logFile := setupLogging(debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()

	cfg, err := loadConfig()
	if err != nil {
		return startupFailed(err)
	}

	player := chime.New(cfg.Audio, logger)
	if err := player.Init(); err != nil {
		// Non-fatal, the field runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	player.SetMuted(mute)

	g, err := game.New(cfg, player, logger)
	if err != nil {
		return startupFailed(err)
	}
	return game.Run(g)
}

// startupFailed reports a startup error once, loudly: on stderr, in the
// log and in a native dialog.
func startupFailed(err error) error {
	log.Printf("startup failed: %v", err)
	if dlgErr := zenity.Error(err.Error(), zenity.Title("Particle Field"), zenity.ErrorIcon); dlgErr != nil {
		log.Printf("error dialog unavailable: %v", dlgErr)
	}
	return err
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
