package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v2"
)

var ErrUnknownKey = errors.New("unknown configuration key")

type Configuration struct {
	Classifier string `yaml:"classifier"`
	BufferSize int    `yaml:"buffer_size"`
	Format     string `yaml:"format"`
	Color      bool   `yaml:"color"`
	Progress   bool   `yaml:"progress"`
}

func DefaultConfig() *Configuration {
	return &Configuration{
		Classifier: "mime",
		BufferSize: 0,
		Format:     "text",
		Color:      true,
		Progress:   true,
	}
}

func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, ".config", "mediawalker", "config.yaml")
}

// LoadConfig reads the configuration at path on top of the defaults. A
// missing file is not an error.
func LoadConfig(path string) (*Configuration, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func (c *Configuration) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer_size must not be negative: %d", c.BufferSize)
	}
	switch c.Format {
	case "text", "json", "msgpack":
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	if c.Classifier == "" {
		return errors.New("classifier must not be empty")
	}
	return nil
}

func (c *Configuration) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func Keys() []string {
	keys := []string{"classifier", "buffer_size", "format", "color", "progress"}
	sort.Strings(keys)
	return keys
}

func (c *Configuration) Get(key string) (string, error) {
	switch key {
	case "classifier":
		return c.Classifier, nil
	case "buffer_size":
		return strconv.Itoa(c.BufferSize), nil
	case "format":
		return c.Format, nil
	case "color":
		return strconv.FormatBool(c.Color), nil
	case "progress":
		return strconv.FormatBool(c.Progress), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Set parses value for key and validates the result. On error the
// configuration is left untouched.
func (c *Configuration) Set(key string, value string) error {
	updated := *c

	switch key {
	case "classifier":
		updated.Classifier = value
	case "buffer_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("buffer_size: %w", err)
		}
		updated.BufferSize = n
	case "format":
		updated.Format = value
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		updated.Color = b
	case "progress":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("progress: %w", err)
		}
		updated.Progress = b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err := updated.Validate(); err != nil {
		return err
	}
	*c = updated
	return nil
}
