// Package config defines the config file format for javafmt.
package config

import (
	"github.com/donaldgifford/javafmt/pkg/options"
)

// Config is the top-level configuration.
type Config struct {
	Formatter FormatterConfig `yaml:"formatter" toml:"formatter"`
}

// FormatterConfig holds the formatter settings. It carries exactly the fields
// of options.Options; there is deliberately nothing else to configure.
type FormatterConfig struct {
	Style                  options.Style                  `yaml:"style" toml:"style"`
	FormatJavadoc          bool                           `yaml:"format_javadoc" toml:"format_javadoc"`
	SingleLineJavadocStyle options.SingleLineJavadocStyle `yaml:"single_line_javadoc_style" toml:"single_line_javadoc_style"`
	SpaceInsideEmptyBlock  bool                           `yaml:"space_inside_empty_block" toml:"space_inside_empty_block"`
}

// DefaultConfig returns a Config holding options.Default.
func DefaultConfig() *Config {
	return &Config{Formatter: FromOptions(options.Default())}
}

// FromOptions copies a frozen options value into its config form.
func FromOptions(o options.Options) FormatterConfig {
	return FormatterConfig{
		Style:                  o.Style(),
		FormatJavadoc:          o.FormatJavadoc(),
		SingleLineJavadocStyle: o.SingleLineJavadocStyle(),
		SpaceInsideEmptyBlock:  o.SpaceInsideEmptyBlock(),
	}
}

// Builder returns a new options.Builder staged with the config values, so
// callers can apply further overrides before building.
func (c *FormatterConfig) Builder() *options.Builder {
	return options.NewBuilder().
		Style(c.Style).
		FormatJavadoc(c.FormatJavadoc).
		SingleLineJavadocStyle(c.SingleLineJavadocStyle).
		SpaceInsideEmptyBlock(c.SpaceInsideEmptyBlock)
}

// Options returns the frozen options described by the config.
func (c *FormatterConfig) Options() options.Options {
	return c.Builder().Build()
}
