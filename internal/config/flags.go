package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagDegrees   = flag.Bool("degrees", false, "Read angles in degrees")
	flagRaw       = flag.Bool("raw", false, "Print raw Q16.16 integers")
	flagPrecision = flag.Int("precision", -2, "Digits after the decimal point, -1 = shortest exact (default: from config)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDegrees {
		cfg.Angles.Unit = UnitDegrees
	}
	if *flagRaw {
		cfg.Output.Format = FormatRaw
	}
	if *flagPrecision >= -1 {
		cfg.Output.Precision = *flagPrecision
	}
}
