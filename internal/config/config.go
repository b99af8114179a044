// Package config loads keyaccel settings from .keyaccel.yml and KEYACCEL_*
// environment variables using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"keyaccel/internal/telemetry"
)

// EnvPrefix prefixes every environment override, e.g. KEYACCEL_LOG_FILE.
const EnvPrefix = "KEYACCEL"

// Config is the resolved configuration for the style-guide program.
type Config struct {
	LogFile   string      `mapstructure:"log_file"`
	StartPage string      `mapstructure:"start_page"`
	Trace     TraceConfig `mapstructure:"trace"`
}

// TraceConfig controls OTLP export of dispatch spans.
type TraceConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool   `mapstructure:"insecure"`
}

// Telemetry converts the trace settings for telemetry.NewProvider.
func (t TraceConfig) Telemetry() telemetry.Config {
	return telemetry.Config{
		Enabled:     t.Enabled,
		Endpoint:    t.Endpoint,
		ServiceName: t.ServiceName,
		Insecure:    t.Insecure,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_file", "")
	v.SetDefault("start_page", "")
	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.endpoint", "")
	v.SetDefault("trace.service_name", telemetry.DefaultServiceName)
	v.SetDefault("trace.insecure", true)
}

// Load reads configuration. path names an explicit config file; when empty,
// .keyaccel.yml in the working directory is used if present. Flags in fs
// (may be nil) override file and environment values: --log-file, --page.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".keyaccel")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for key, flag := range map[string]string{"log_file": "log-file", "start_page": "page"} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Standard OpenTelemetry variables win over file settings.
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		cfg.Trace.Endpoint = endpoint
		cfg.Trace.Enabled = true
	}
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		cfg.Trace.ServiceName = name
	}

	if cfg.Trace.Enabled && cfg.Trace.Endpoint == "" {
		return nil, errors.New("trace.enabled requires trace.endpoint")
	}
	return &cfg, nil
}
