package config

const (
	defaultLogDir            = "~/.local/share/slugline/logs"
	defaultReportDir         = "~/.local/share/slugline/reports"
	defaultAPIBind           = "127.0.0.1:7845"
	defaultMaxConcurrentJobs = 3
	defaultCacheTTLSeconds   = 3600
	defaultConfidence        = 0.4
	defaultQueuePollInterval = 2
	defaultJobTimeout        = 300
	defaultHeartbeat         = 15
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			ReportDir: defaultReportDir,
			APIBind:   defaultAPIBind,
		},
		Analysis: Analysis{
			MaxConcurrentJobs:       defaultMaxConcurrentJobs,
			CacheTTLSeconds:         defaultCacheTTLSeconds,
			ConfidenceThreshold:     defaultConfidence,
			EnableWardrobeInference: true,
			EnableLegalAlerts:       true,
		},
		Workflow: Workflow{
			QueuePollInterval: defaultQueuePollInterval,
			JobTimeout:        defaultJobTimeout,
			HeartbeatInterval: defaultHeartbeat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
