// Package config handles rotcalc configuration loading and management.
package config

import "fmt"

// Angle units accepted by OutputConfig.AngleUnit.
const (
	UnitDegrees = "deg"
	UnitRadians = "rad"
)

// Output formats accepted by OutputConfig.Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all rotcalc settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how angles are read and results are printed.
type OutputConfig struct {
	AngleUnit string `yaml:"angle_unit"` // unit for angle arguments and results
	Precision int    `yaml:"precision"`  // digits after the decimal point
	Format    string `yaml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			AngleUnit: UnitDegrees,
			Precision: 6,
			Format:    FormatText,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Validate reports settings no command can work with.
func (c *Config) Validate() error {
	switch c.Output.AngleUnit {
	case UnitDegrees, UnitRadians:
	default:
		return fmt.Errorf("output.angle_unit: unknown unit %q (want %q or %q)", c.Output.AngleUnit, UnitDegrees, UnitRadians)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format: unknown format %q (want %q or %q)", c.Output.Format, FormatText, FormatYAML)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 9 {
		return fmt.Errorf("output.precision: %d out of range [0, 9]", c.Output.Precision)
	}
	return nil
}

// Degrees reports whether angles are given and printed in degrees.
func (c *Config) Degrees() bool {
	return c.Output.AngleUnit == UnitDegrees
}
