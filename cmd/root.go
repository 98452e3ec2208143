// Package cmd holds the mindmap command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mindmap/config"
	"mindmap/editor"
	"mindmap/logging"
	"mindmap/render"
	"mindmap/terminal"
	"mindmap/ui"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

type rootOptions struct {
	configPath string
	logFile    string
	debug      bool
	ascii      bool
}

var opts rootOptions

var rootCmd = &cobra.Command{
	Use:   "mindmap",
	Short: "mindmap edits a mind map in the terminal",
	Long: ui.Brand.Sprint("mindmap") + " edits a tree of ideas on a terminal canvas\n" +
		ui.Subtle.Sprint("Click to select, double-click to rename, drag to move, Tab to branch"),
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.SetVersionTemplate("mindmap {{ .Version }}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default "+config.ConfigPath()+")")
	flags.StringVar(&opts.logFile, "log-file", "", "Write a JSON debug log to this file")
	flags.BoolVar(&opts.debug, "debug", false, "Log at debug level")
	rootCmd.Flags().BoolVar(&opts.ascii, "ascii", false, "Draw with plain ASCII characters")

	rootCmd.AddCommand(
		keysCmd(),
		configCmd(),
	)
}

// Execute runs the root command. Errors are printed before returning.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.Bad.Fprintf(os.Stderr, "mindmap: %v\n", err)
		return err
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFrom(opts.configPath)
	}
	return config.Load()
}

func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	path := cfg.Log.File
	if opts.logFile != "" {
		path = opts.logFile
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	if opts.debug {
		level = slog.LevelDebug
	}

	return logging.New(path, level)
}

func run(ctx context.Context, cfg *config.Config) error {
	log, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	caps := render.DetectCapabilities(os.Getenv)
	ascii := cfg.Canvas.ASCII || opts.ascii || caps.ASCII()
	log.Info("starting", "version", version, "terminal", caps.Name, "ascii", ascii)

	ed := editor.NewEditor(nil, editor.Options{
		DoubleClick: cfg.DoubleClick(),
		ChildOffset: cfg.ChildOffset(),
		Logger:      log,
	})
	r := render.NewRenderer(
		render.NewViewport(cfg.Canvas.CellWidth, cfg.Canvas.CellHeight),
		render.Options{ASCII: ascii, Legend: terminal.Legend()},
	)
	palette := terminal.NewPalette(cfg.Colors, caps.SupportsColor)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.NewHost(screen, ed, r, palette, log).Run(ctx)
}
