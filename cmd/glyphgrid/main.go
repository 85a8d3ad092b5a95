// Package main provides the CLI entry point for glyphgrid, a tool that
// converts raster images into grids of colored text glyphs for rich-text
// display.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/pixtext/glyphgrid"
	"go.jacobcolvin.com/pixtext/log"
	"go.jacobcolvin.com/pixtext/version"
)

func main() {
	cfg := glyphgrid.NewConfig()
	logCfg := log.NewConfig()

	var configPath string

	rootCmd := &cobra.Command{
		Use:   "glyphgrid [flags] <image>",
		Short: "Convert a raster image into colored text glyphs",
		Long: `glyphgrid converts a raster image into a grid of colored text glyphs for
rich-text display. Pixel colors are sampled from a scaled-down copy of the
image and each sampled pixel becomes one glyph, wrapped in a
<font color="#rrggbb"> tag unless rich-text mode is disabled.`,
		Version:       version.String(),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, logCfg, configPath, args[0])
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file providing flag defaults")

	completionErr := cfg.RegisterCompletions(rootCmd)
	if completionErr == nil {
		completionErr = logCfg.RegisterCompletions(rootCmd)
	}

	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg *glyphgrid.Config, logCfg *log.Config, configPath, input string) error {
	if configPath != "" {
		err := cfg.ApplyFile(configPath, cmd.Flags())
		if err != nil {
			return err
		}
	}

	if cfg.Quiet {
		logCfg.Level = string(log.LevelError)
	}

	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	conv, err := cfg.NewConverter()
	if err != nil {
		return err
	}

	logger.Info("loading image", "path", input)

	img, err := glyphgrid.Load(input)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	logger.Info("resizing",
		"width", bounds.Dx(), "height", bounds.Dy(), "scale_percent", cfg.Scale)

	res := conv.Convert(img)
	logger.Info("rendered grid", "columns", res.Width(), "rows", res.Height())

	err = glyphgrid.WriteFile(cfg.Output, res)
	if err != nil {
		return err
	}

	chars := res.CharCount()
	logger.Info("wrote output", "path", cfg.Output, "chars", chars)

	if chars > glyphgrid.MaxLabelChars {
		logger.Warn("output exceeds the safe character limit of a single text label; chunk it across multiple labels",
			"chars", chars, "limit", glyphgrid.MaxLabelChars)
	}

	if cfg.Preview {
		w, _, termErr := term.GetSize(int(os.Stdout.Fd()))
		if termErr == nil && res.Width() > w {
			logger.Warn("grid is wider than the terminal", "columns", res.Width(), "terminal", w)
		}

		fmt.Print(res.ANSI())
	}

	return nil
}
