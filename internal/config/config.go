package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fjglira/GoSpecRunner/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Output    OutputConfig   `yaml:"output"`
	Reports   ReportsConfig  `yaml:"reports"`
	Metrics   MetricsConfig  `yaml:"metrics"`
	Exit      ExitConfig     `yaml:"exit"`
	Templates TemplateConfig `yaml:"templates"`
	Logging   LoggingConfig  `yaml:"logging"`
}

type OutputConfig struct {
	Stream string `yaml:"stream"` // "stdout" or "stderr"
}

type ReportsConfig struct {
	Title string   `yaml:"title"`
	Files []string `yaml:"files"` // extension selects the writer
}

type MetricsConfig struct {
	Textfile  string `yaml:"textfile"`
	Namespace string `yaml:"namespace"`
}

type ExitConfig struct {
	Policy  string `yaml:"policy"` // "count" or "binary"
	MaxCode int    `yaml:"max_code"`
}

type TemplateConfig struct {
	Directory string `yaml:"directory"` // empty uses the built-in templates
	Default   string `yaml:"default"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to DefaultConfig when the file does
// not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}
