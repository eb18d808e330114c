package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`
	DBPath     string `mapstructure:"db_path"`
	// UploadsPath is the directory holding uploaded point images.
	UploadsPath string `mapstructure:"uploads_path"`
	// UploadsBaseURL prefixes stored image filenames to build image_url.
	UploadsBaseURL string  `mapstructure:"uploads_base_url"`
	LogLevel       string  `mapstructure:"log_level"`
	LogFormat      string  `mapstructure:"log_format"`
	LogFile        string  `mapstructure:"log_file"`
	Tracing        Tracing `mapstructure:"tracing"`
}

type Tracing struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", ":3333")
	v.SetDefault("db_path", "/data/ecoleta.db")
	v.SetDefault("uploads_path", "/data/uploads")
	v.SetDefault("uploads_base_url", "http://localhost:3333/uploads/")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("log_file", "")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.exporter", "stdout")
	v.SetDefault("tracing.otlp_endpoint", "localhost:4317")
	v.SetDefault("tracing.sample_rate", 1.0)
}

// Load reads configuration from defaults, the optional YAML file at
// cfgFile, and environment variables, in increasing precedence. Nested keys
// map to env vars with "_" (tracing.enabled -> TRACING_ENABLED).
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if !strings.HasSuffix(cfg.UploadsBaseURL, "/") {
		cfg.UploadsBaseURL += "/"
	}
	return cfg, nil
}
