// Package config provides YAML-based configuration loading for the
// infrastructure settings of the game: where results are stored and how
// the SSH server listens. Gameplay itself is not configurable; the board
// size and fleet are compile-time constants.
package config

// Config is the top-level configuration document.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// StorageConfig controls the match-result database.
type StorageConfig struct {
	// DBPath is the SQLite database location. A leading ~ expands to the
	// user's home directory.
	DBPath string `yaml:"db_path"`
}

// SSHConfig controls the remote-play server.
type SSHConfig struct {
	// Address is the host:port to listen on.
	Address string `yaml:"address"`

	// HostKeyPath is the host key file. Empty means auto-generate one
	// at ~/.salvo/host_key.
	HostKeyPath string `yaml:"host_key_path"`

	// IdleTimeoutMinutes closes idle sessions after this many minutes.
	IdleTimeoutMinutes int `yaml:"idle_timeout_minutes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			DBPath: "~/.salvo/matches.db",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}
