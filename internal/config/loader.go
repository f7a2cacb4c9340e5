// Package config loads the bot's YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bombman/internal/client"
	"bombman/pkg/ai"
)

// File is the whole configuration file. Keys left out keep the values of
// the chosen preset and client defaults.
type File struct {
	// Preset names the AI preset the ai section is applied on top of.
	Preset string        `yaml:"preset"`
	Client client.Config `yaml:"client"`
	AI     ai.AIConfig   `yaml:"ai"`
}

// Default is the configuration used without a file.
func Default() *File {
	return &File{
		Preset: "normal",
		Client: client.DefaultConfig(),
		AI:     ai.AIConfigNormal,
	}
}

// Load reads and validates the file at path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML in two passes: the preset first, then the file over the
// preset's values.
func Parse(b []byte) (*File, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(b, &head); err != nil {
		return nil, err
	}
	preset, err := ai.Preset(head.Preset)
	if err != nil {
		return nil, err
	}

	f := Default()
	f.AI = preset
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, err
	}
	if f.Preset == "" {
		f.Preset = "normal"
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) Validate() error {
	if err := f.Client.Validate(); err != nil {
		return fmt.Errorf("client: %w", err)
	}
	if err := f.AI.Validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}
	return nil
}
