package smtp

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config holds SMTP credentials and the report recipient.
type Config struct {
	Host      string `yaml:"smtp_host" envconfig:"SMTP_HOST" default:"ssl0.ovh.net"`
	Port      Port   `yaml:"smtp_port" envconfig:"SMTP_PORT" default:"465"`
	User      string `yaml:"smtp_user" envconfig:"SMTP_USER"`
	Pass      string `yaml:"smtp_pass" envconfig:"SMTP_PASS"`
	Recipient string `yaml:"recipient" envconfig:"RECIPIENT"`
}

// Port is an SMTP server port. Config files may write it as a number or
// as a numeric string.
type Port int

// UnmarshalYAML accepts both 465 and "465".
func (p *Port) UnmarshalYAML(unmarshal func(any) error) error {
	var n int
	if err := unmarshal(&n); err == nil {
		*p = Port(n)
		return nil
	}

	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid smtp_port %q", s)
	}
	*p = Port(n)
	return nil
}

// Complete reports whether the config has everything needed to send.
func (c *Config) Complete() bool {
	return c.User != "" && c.Pass != "" && c.Recipient != ""
}

// LoadConfig reads settings from the environment, then overrides them with
// any values set in the file at path. A missing file is not an error.
// The file is YAML; a JSON object is accepted as well.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	merged := mergeConfigs(fileCfg, cfg)
	return &merged, nil
}

// mergeConfigs overlays the non-empty file values onto the env config.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if fileConfig.Host != "" {
		envConfig.Host = fileConfig.Host
	}
	if fileConfig.Port != 0 {
		envConfig.Port = fileConfig.Port
	}
	if fileConfig.User != "" {
		envConfig.User = fileConfig.User
	}
	if fileConfig.Pass != "" {
		envConfig.Pass = fileConfig.Pass
	}
	if fileConfig.Recipient != "" {
		envConfig.Recipient = fileConfig.Recipient
	}
	return envConfig
}
