package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgn2sif/pkg/buildinfo"
	"github.com/matzehuels/sbgn2sif/pkg/config"
	"github.com/matzehuels/sbgn2sif/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "sbgn2sif"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs. Flags override it.
	Config *config.Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "sbgn2sif converts SBGN-ML pathway maps into simplified SIF edge lists",
		Long: `sbgn2sif extracts a typed edge list from SBGN-ML process description maps and
collapses every entity → process → entity chain into a direct edge, producing a
simple interaction format (SIF) network suitable for network analysis tools.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./sbgn2sif.toml or ./sbgn2sif.yaml if present)")

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.extractCommand())
	root.AddCommand(c.simplifyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads --config, or the first config file found in the working
// directory. A config log_level only ever makes logging more verbose, so -v
// always wins.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil
		}
		path = config.Find(wd)
	}
	if path == "" {
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil && lvl < c.Logger.GetLevel() {
		c.SetLogLevel(lvl)
	}
	c.Logger.Debug("loaded config", "path", path)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
