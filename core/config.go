package core

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "hello.config.yml"

type Config struct {
	QueryMode    QueryMode `yaml:"queryMode" json:"queryMode"`
	Minify       bool      `yaml:"minify" json:"minify"`
	Gzip         bool      `yaml:"gzip" json:"gzip"`
	DebugHeaders bool      `yaml:"debugHeaders" json:"debugHeaders"`
	JSONLogs     bool      `yaml:"jsonLogs" json:"jsonLogs"`
	MetricsPort  int       `yaml:"metricsPort" json:"metricsPort"`
	AssetsDir    string    `yaml:"assetsDir" json:"assetsDir,omitempty"`
}

func DefaultConfig() Config {
	return Config{QueryMode: QueryModePrefix}
}

// LoadConfig reads the YAML config at path. A missing file yields the
// defaults; a file that cannot be parsed is an error.
var LoadConfig = func(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "parse %s: %v", path, err)
	}

	cfg.QueryMode = ParseQueryMode(string(cfg.QueryMode))

	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "%s: metricsPort %d is out of range", path, cfg.MetricsPort)
	}

	return cfg, nil
}
