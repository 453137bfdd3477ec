package configs

// Config holds all configuration for the analyzer.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Analyze AnalyzeConfig `mapstructure:"analyze" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// AnalyzeConfig holds the ingestion and filtering knobs.
type AnalyzeConfig struct {
	MinMsecs int64 `mapstructure:"min_msecs" validate:"min=0"` // requests faster than this are dropped
	Workers  int   `mapstructure:"workers" validate:"required,min=1,max=64"`

	// Allow-sets. An empty set means no filtering on that dimension.
	AllowedMethods  []string `mapstructure:"allowed_methods"`
	AllowedStatuses []string `mapstructure:"allowed_statuses"`
}

// ReportConfig holds rendering and truncation configuration.
type ReportConfig struct {
	Format          string `mapstructure:"format" validate:"required,oneof=html json text"`
	TopURLGroups    int    `mapstructure:"top_url_groups" validate:"required,min=1"`
	TopURLsPerGroup int    `mapstructure:"top_urls_per_group" validate:"required,min=1"`
}

// RulesConfig points at the optional user URL classification rule file.
type RulesConfig struct {
	URLFile string `mapstructure:"url_file"`
}

// MetricsConfig holds the optional diagnostics listener address.
type MetricsConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}
