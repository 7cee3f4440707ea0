package config

import "time"

// Config holds all chatforge configuration. Defaults come from Default();
// CLI flags and environment variables override per command.
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline"`
	Filter   FilterConfig   `toml:"filter"`
	Roles    RolesConfig    `toml:"roles"`
}

type PipelineConfig struct {
	SplitMinutes   int `toml:"split_minutes"`   // gap that closes a conversation block
	CharacterLimit int `toml:"character_limit"` // output document size cap
	MinMessages    int `toml:"min_messages"`    // minimum messages per block
}

type FilterConfig struct {
	Media            bool   `toml:"media"`             // drop media messages entirely
	Links            bool   `toml:"links"`             // drop link messages entirely
	MediaReplacement string `toml:"media_replacement"` // used when media=false; "" keeps the marker
	LinkReplacement  string `toml:"link_replacement"`  // used when links=false; "" keeps the link
}

type RolesConfig struct {
	UserName string `toml:"user_name"` // export speaker mapped to {{random_user_1}}
	CharName string `toml:"char_name"` // export speaker mapped to {{char}}
}

// Default returns a Config with sensible defaults. Role names have no
// default; they identify real people in the export and must be supplied.
func Default() Config {
	return Config{
		Pipeline: PipelineConfig{
			SplitMinutes:   15,
			CharacterLimit: 20000,
			MinMessages:    2,
		},
		Filter: FilterConfig{
			Media: true,
			Links: true,
		},
	}
}

// SplitGap returns the segmentation threshold as a duration.
func (c *Config) SplitGap() time.Duration {
	return time.Duration(c.Pipeline.SplitMinutes) * time.Minute
}
