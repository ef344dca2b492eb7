package config

const (
	defaultLogDir        = "~/.local/share/mesclador/logs"
	defaultThreshold     = 0.6
	defaultDestination   = DestinationSubfolder
	defaultSubfolderName = "Mesclados"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Merge: Merge{
			Threshold:     defaultThreshold,
			Destination:   defaultDestination,
			SubfolderName: defaultSubfolderName,
			ErrorReport:   true,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
