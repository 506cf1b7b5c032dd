// Package config provides YAML-based configuration loading for pushbox.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	History HistoryConfig `yaml:"history"`
	Storage StorageConfig `yaml:"storage"`
	Levels  LevelsConfig  `yaml:"levels"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`

	// Source is the file the config was read from, or "embedded"/"builtin".
	Source string `yaml:"-"`
}

// HistoryConfig controls undo history.
type HistoryConfig struct {
	Limit int `yaml:"limit"` // 0 = unbounded
}

// StorageConfig controls the progress database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LevelsConfig controls where user packs are loaded from.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	TickRate       int  `yaml:"tick_rate"`        // Ticks per second
	AutoAdvance    bool `yaml:"auto_advance"`     // Open the next level after a win
	AdvanceDelayMS int  `yaml:"advance_delay_ms"` // Pause before auto-advance
	Mouse          bool `yaml:"mouse"`            // Click-to-move
}

// AdvanceDelay returns AdvanceDelayMS as a duration.
func (u UIConfig) AdvanceDelay() time.Duration {
	return time.Duration(u.AdvanceDelayMS) * time.Millisecond
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// SSHConfig controls the SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns IdleTimeoutMinutes as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}
