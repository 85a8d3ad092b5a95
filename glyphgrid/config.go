package glyphgrid

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/pixtext/hexcolor"
)

// Flags holds CLI flag names for conversion configuration, allowing
// callers to customize flag names while keeping sensible defaults.
type Flags struct {
	Scale      string
	Aspect     string
	Glyph      string
	Rich       string
	Background string
	Output     string
	Preview    string
	Quiet      string
}

// Config holds CLI flag values for conversion configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewConverter] to create a
// [Converter].
type Config struct {
	Flags      Flags
	Glyph      string  `yaml:"glyph"`
	Background string  `yaml:"background"`
	Output     string  `yaml:"output"`
	Scale      float64 `yaml:"scale"`
	Aspect     float64 `yaml:"aspect"`
	Rich       bool    `yaml:"rich"`
	Preview    bool    `yaml:"preview"`
	Quiet      bool    `yaml:"quiet"`
}

// NewConfig returns a new [Config] with default flag names and values.
func NewConfig() *Config {
	f := Flags{
		Scale:      "scale",
		Aspect:     "aspect",
		Glyph:      "glyph",
		Rich:       "rich",
		Background: "bg",
		Output:     "out",
		Preview:    "preview",
		Quiet:      "quiet",
	}

	return &Config{
		Flags:      f,
		Glyph:      DefaultGlyph,
		Background: "#ffffff",
		Output:     "output_all.txt",
		Scale:      25.0,
		Aspect:     0.5,
		Rich:       true,
	}
}

// RegisterFlags adds conversion flags to the given [*pflag.FlagSet],
// using the current field values as defaults.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.Float64VarP(&c.Scale, c.Flags.Scale, "s", c.Scale,
		"sampling scale in percent of the source dimensions")
	flags.Float64VarP(&c.Aspect, c.Flags.Aspect, "a", c.Aspect,
		"row-count multiplier compensating for tall glyph cells")
	flags.StringVarP(&c.Glyph, c.Flags.Glyph, "g", c.Glyph,
		"glyph emitted per sampled pixel")
	flags.BoolVar(&c.Rich, c.Flags.Rich, c.Rich,
		"wrap each glyph in a rich-text color tag (--rich=false for bare glyphs)")
	flags.StringVar(&c.Background, c.Flags.Background, c.Background,
		"background hex color flattened under transparent pixels, or \"none\" to keep alpha")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", c.Output,
		"output text file path")
	flags.BoolVar(&c.Preview, c.Flags.Preview, c.Preview,
		"print an ANSI truecolor preview of the grid to stdout")
	flags.BoolVarP(&c.Quiet, c.Flags.Quiet, "q", c.Quiet,
		"suppress progress messages")
}

// RegisterCompletions registers shell completions for conversion flags on
// cmd. The output flag keeps default file completion.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Scale, c.Flags.Aspect, c.Flags.Glyph, c.Flags.Background} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewConverter creates a [Converter] using this [Config]. The background
// string is validated here: either a 3- or 6-digit hex color, or the
// "none"/"transparent" sentinel that skips compositing.
func (c *Config) NewConverter() (*Converter, error) {
	opts := []Option{
		WithScalePercent(c.Scale),
		WithAspectRatio(c.Aspect),
		WithGlyph(c.Glyph),
		WithRichText(c.Rich),
	}

	if keepsAlpha(c.Background) {
		opts = append(opts, WithKeepAlpha())
	} else {
		bg, err := hexcolor.Parse(c.Background)
		if err != nil {
			return nil, err
		}

		opts = append(opts, WithBackground(bg))
	}

	return NewConverter(opts...)
}

// keepsAlpha reports whether the background string is the sentinel that
// disables compositing.
func keepsAlpha(background string) bool {
	switch strings.ToLower(strings.TrimSpace(background)) {
	case "none", "transparent":
		return true
	}

	return false
}

// fileConfig mirrors Config's YAML keys with pointer fields so that keys
// absent from the file can be distinguished from zero values.
type fileConfig struct {
	Glyph      *string  `yaml:"glyph"`
	Background *string  `yaml:"background"`
	Output     *string  `yaml:"output"`
	Scale      *float64 `yaml:"scale"`
	Aspect     *float64 `yaml:"aspect"`
	Rich       *bool    `yaml:"rich"`
	Preview    *bool    `yaml:"preview"`
	Quiet      *bool    `yaml:"quiet"`
}

// ApplyFile loads flag defaults from a YAML file. Values set explicitly
// on the command line take precedence over file values, so call this
// after flag parsing.
func (c *Config) ApplyFile(path string, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(path) //nolint:gosec // Config path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	var fc fileConfig

	err = yaml.Unmarshal(data, &fc)
	if err != nil {
		return fmt.Errorf("%w: parsing %s: %w", ErrReadInput, path, err)
	}

	if fc.Scale != nil && !flags.Changed(c.Flags.Scale) {
		c.Scale = *fc.Scale
	}

	if fc.Aspect != nil && !flags.Changed(c.Flags.Aspect) {
		c.Aspect = *fc.Aspect
	}

	if fc.Glyph != nil && !flags.Changed(c.Flags.Glyph) {
		c.Glyph = *fc.Glyph
	}

	if fc.Rich != nil && !flags.Changed(c.Flags.Rich) {
		c.Rich = *fc.Rich
	}

	if fc.Background != nil && !flags.Changed(c.Flags.Background) {
		c.Background = *fc.Background
	}

	if fc.Output != nil && !flags.Changed(c.Flags.Output) {
		c.Output = *fc.Output
	}

	if fc.Preview != nil && !flags.Changed(c.Flags.Preview) {
		c.Preview = *fc.Preview
	}

	if fc.Quiet != nil && !flags.Changed(c.Flags.Quiet) {
		c.Quiet = *fc.Quiet
	}

	return nil
}
