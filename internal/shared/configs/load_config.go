package configs

import (
	"fmt"
	"strings"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/validators"

	"github.com/spf13/viper"
)

// LoadConfig builds the effective configuration and validates it. An empty
// path yields pure defaults; a non-empty path must point at a readable YAML
// file. Flag overrides are applied by the command layer after this returns.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := LoadConfig("")
	if err != nil {
		// Defaults are fixed at compile time; failing to build them is a bug.
		panic(fmt.Sprintf("invalid built-in defaults: %v", err))
	}
	return cfg
}

// Validate checks cfg against the struct validation tags. The command layer
// re-validates after applying flag overrides.
func Validate(cfg *Config) error {
	validate := validators.New()
	if err := validate.Struct(cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("analyze.min_msecs", 200)
	v.SetDefault("analyze.workers", 1)
	v.SetDefault("analyze.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS", "PATCH"})
	v.SetDefault("analyze.allowed_statuses", []string{})
	v.SetDefault("report.format", "html")
	v.SetDefault("report.top_url_groups", 100)
	v.SetDefault("report.top_urls_per_group", 20)
	v.SetDefault("rules.url_file", "")
	v.SetDefault("metrics.listen_addr", "")
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path in config-file spelling (e.g., "report.format"). The
	// namespace carries mapstructure tag names; only the root struct keeps
	// its Go name, so it is cut off.
	if parts := strings.SplitN(e.Namespace(), ".", 2); len(parts) == 2 {
		field = parts[1]
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
