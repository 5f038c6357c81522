// Package cmd implements the mapty command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mapty/internal/config"
	"mapty/internal/locate"
	"mapty/internal/store"
	"mapty/internal/tui"
	"mapty/internal/workout"
)

var (
	cfgFile  string
	inMemory bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mapty",
	Short: "Log running and cycling workouts on a map",
	Long: `Mapty opens a terminal map centred on your configured location.
Pick a spot, fill in distance, duration and cadence or elevation gain,
and the workout is pinned to the map and saved for next time.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.mapty/config.json)")
	rootCmd.PersistentFlags().BoolVar(&inMemory, "memory", false, "keep workouts in memory only")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := readConfig(cfgFile, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// readConfig loads the config at path, or the default path when empty.
// A missing default config is created from the example.
func readConfig(path string, out io.Writer) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	c, err := config.LoadFile(path)
	if errors.Is(err, config.ErrNoConfig) && !explicit {
		if err := config.CreateExample(path); err != nil {
			return nil, fmt.Errorf("creating example config: %w", err)
		}
		fmt.Fprintf(out, "Created example config at %s\n", path)
		c, err = config.LoadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// kvStore is a workout.KV that holds a resource
type kvStore interface {
	workout.KV
	Close() error
}

func openStorage(c *config.Config, memory bool) (kvStore, error) {
	if memory || c.Storage.Backend == config.BackendMemory {
		return store.NewMemory(), nil
	}
	db, err := store.Open(c.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	kv, err := openStorage(cfg, inMemory)
	if err != nil {
		return err
	}
	defer kv.Close()

	// The terminal belongs to the TUI, so log lines go to a file
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	logFile, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "mapty")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	if cfg.Location.Latitude == nil || cfg.Location.Longitude == nil {
		log.Printf("no location configured; set location.latitude and location.longitude")
	}

	app := tui.NewApp(tui.Deps{
		Sensor:  locate.FromConfig(cfg.Location),
		Storage: kv,
		Config:  *cfg,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
