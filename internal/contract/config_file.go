package contract

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/concord/schema"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name looked up in "." and $HOME.
const DefaultConfigFile = ".concord.yaml"

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// DefaultRawInput returns the raw input every option resolves to when nothing is set.
func DefaultRawInput() ConfigRawInput {
	return ConfigRawInput{
		Source1Year:     DefaultSource1Year,
		Source2Year:     DefaultSource2Year,
		Source3Year:     DefaultSource3Year,
		ReferenceYear:   time.Now().Year(),
		Adjustments:     DefaultAdjustments,
		OutputDirectory: DefaultOutputDirectory,
		OutputPrefix:    DefaultOutputPrefix,
		Color:           "yes",
		Columns:         schema.DefaultColumnCandidates(),
	}
}

// WriteSampleConfig writes a config file holding the default options to path.
// An existing file is only replaced when force is set.
func WriteSampleConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	b, err := yaml.Marshal(DefaultRawInput())
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
