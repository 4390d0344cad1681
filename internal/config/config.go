// Package config handles geomtool configuration loading and management.
package config

import "fmt"

// Config holds all geomtool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Angles  AngleConfig   `yaml:"angles"`
	Logging LoggingConfig `yaml:"logging"`
}

// Output formats.
const (
	FormatDecimal = "decimal" // 2.5
	FormatRaw     = "raw"     // 163840
)

// Angle units.
const (
	UnitRadians = "radians"
	UnitDegrees = "degrees"
)

// OutputConfig controls how fixed-point results are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`    // decimal or raw
	Precision int    `yaml:"precision"` // digits after the point, -1 = shortest exact
}

// AngleConfig selects the unit for angle arguments.
type AngleConfig struct {
	Unit string `yaml:"unit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    FormatDecimal,
			Precision: -1,
		},
		Angles: AngleConfig{
			Unit: UnitRadians,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Validate rejects settings geomtool cannot honor.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatDecimal, FormatRaw:
	default:
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if c.Output.Precision < -1 || c.Output.Precision > 16 {
		return fmt.Errorf("output.precision: %d out of range [-1, 16]", c.Output.Precision)
	}
	switch c.Angles.Unit {
	case UnitRadians, UnitDegrees:
	default:
		return fmt.Errorf("angles.unit: unknown unit %q", c.Angles.Unit)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}
