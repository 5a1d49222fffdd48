// Package config holds tunable pacing and appearance settings, loadable
// from a YAML file over built-in defaults.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/treescope/constants"
)

// Pacing controls animation timing. All *Sec fields are seconds.
type Pacing struct {
	NarrationSec    float64 `yaml:"narration_sec"`
	SearchHopSec    float64 `yaml:"search_hop_sec"`
	TraversalHopSec float64 `yaml:"traversal_hop_sec"`
	FlashSec        float64 `yaml:"flash_sec"`
	FlashToggles    int     `yaml:"flash_toggles"`
	DropRate        float64 `yaml:"drop_rate"` // rows per second
	FadeRate        float64 `yaml:"fade_rate"` // opacity per second
	EaseRate        float64 `yaml:"ease_rate"`
}

// Audio controls sound cue playback.
type Audio struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the full runtime configuration.
type Config struct {
	Pacing Pacing `yaml:"pacing"`
	Audio  Audio  `yaml:"audio"`

	// InitialKeys are inserted into the tree at startup
	InitialKeys []int `yaml:"initial_keys"`
}

// Default returns the reference pacing.
func Default() *Config {
	return &Config{
		Pacing: Pacing{
			NarrationSec:    constants.NarrationInterval.Seconds(),
			SearchHopSec:    constants.SearchHopInterval.Seconds(),
			TraversalHopSec: constants.TraversalHopInterval.Seconds(),
			FlashSec:        constants.DeleteFlashInterval.Seconds(),
			FlashToggles:    constants.DeleteFlashToggles,
			DropRate:        constants.DeleteDropRate,
			FadeRate:        constants.DeleteFadeRate,
			EaseRate:        constants.EaseRate,
		},
		Audio: Audio{
			Enabled: true,
		},
		InitialKeys: []int{50, 30, 70, 20, 40, 60, 80},
	}
}

// Load reads path and overlays it onto the defaults. An empty path
// returns the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that would stall or reverse an animation.
func (c *Config) Validate() error {
	p := c.Pacing
	if p.NarrationSec <= 0 || p.SearchHopSec <= 0 || p.TraversalHopSec <= 0 || p.FlashSec <= 0 {
		return errors.New("config: pacing intervals must be positive")
	}
	if p.FlashToggles < 1 {
		return errors.New("config: flash_toggles must be at least 1")
	}
	if p.DropRate <= 0 || p.FadeRate <= 0 || p.EaseRate <= 0 {
		return errors.New("config: rates must be positive")
	}
	return nil
}
