package config

import (
	_ "embed"
)

//go:embed defaults/pushbox.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration. It matches the
// embedded defaults/pushbox.yaml.
func DefaultConfig() Config {
	return Config{
		History: HistoryConfig{Limit: 0},
		Storage: StorageConfig{DBPath: "~/.pushbox/progress.db"},
		Levels:  LevelsConfig{Dir: "~/.pushbox/levels"},
		UI: UIConfig{
			TickRate:       30,
			AutoAdvance:    true,
			AdvanceDelayMS: 1500,
			Mouse:          true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.pushbox/pushbox.log",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			HostKey:            "~/.pushbox/ssh_host_ed25519",
			IdleTimeoutMinutes: 30,
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
