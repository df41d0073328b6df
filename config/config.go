package config

import (
	"fmt"

	"github.com/spacemeshos/bitseq/shared"
	"github.com/spf13/viper"
)

const MaxSeparatorLen = 8

const (
	DefaultAnchor    = "right"
	DefaultGroupSize = 8
	DefaultSeparator = " "
)

// Config holds the text rendering defaults of bit sequences.
type Config struct {
	Anchor    string `mapstructure:"bitseq-anchor"`
	GroupSize uint   `mapstructure:"bitseq-groupsize"`
	Separator string `mapstructure:"bitseq-separator"`
}

func (cfg *Config) Validate() error {
	if _, err := shared.ParseAlign(cfg.Anchor); err != nil {
		return fmt.Errorf("invalid `Anchor`; expected: left or right, given: %q", cfg.Anchor)
	}

	if _, err := shared.ParseGroup(cfg.GroupSize); err != nil {
		return fmt.Errorf("invalid `GroupSize`; expected: 0, 4 or 8, given: %d", cfg.GroupSize)
	}

	if len(cfg.Separator) > MaxSeparatorLen {
		return fmt.Errorf("invalid `Separator`; expected: <= %d bytes, given: %d", MaxSeparatorLen, len(cfg.Separator))
	}

	return nil
}

// Alignment returns the grouping anchor. The config is assumed valid.
func (cfg *Config) Alignment() shared.Align {
	a, _ := shared.ParseAlign(cfg.Anchor)
	return a
}

// Group returns the group size. The config is assumed valid.
func (cfg *Config) Group() shared.Group {
	g, _ := shared.ParseGroup(cfg.GroupSize)
	return g
}

func DefaultConfig() *Config {
	return &Config{
		Anchor:    DefaultAnchor,
		GroupSize: DefaultGroupSize,
		Separator: DefaultSeparator,
	}
}

// Load reads the rendering config from vip, falling back to the defaults
// for any key it does not set.
func Load(vip *viper.Viper) (*Config, error) {
	def := DefaultConfig()
	vip.SetDefault("bitseq-anchor", def.Anchor)
	vip.SetDefault("bitseq-groupsize", def.GroupSize)
	vip.SetDefault("bitseq-separator", def.Separator)

	cfg := DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
