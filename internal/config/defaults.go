package config

const (
	defaultFPS             = 30.0
	defaultIntervalSeconds = 60.0
	defaultLogDir          = "~/.local/share/cutlog/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultReportFormat    = "table"
	defaultReportOutputDir = "~/.local/share/cutlog/exports"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Timeline: Timeline{
			FPS: defaultFPS,
		},
		Grouping: Grouping{
			IntervalSeconds: defaultIntervalSeconds,
		},
		Report: Report{
			Format:    defaultReportFormat,
			OutputDir: defaultReportOutputDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
