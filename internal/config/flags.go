package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Zero values mean "not set".
type Flags struct {
	Config    string
	Debug     bool
	Radians   bool
	Degrees   bool
	Precision int
	Format    string
	LogFile   string
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Radians, "radians", false, "Read and print angles in radians")
	fs.BoolVar(&f.Degrees, "degrees", false, "Read and print angles in degrees")
	fs.IntVar(&f.Precision, "precision", -1, "Digits after the decimal point")
	fs.StringVarP(&f.Format, "output", "o", "", "Output format: text or yaml")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Radians {
		cfg.Output.AngleUnit = UnitRadians
	}
	if f.Degrees {
		cfg.Output.AngleUnit = UnitDegrees
	}
	if f.Precision >= 0 {
		cfg.Output.Precision = f.Precision
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
