package common

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// Default client-side wait for a remote operation's result.
	DEFAULT_REMOTE_OP_TIMEOUT = 40 * time.Second
	// Items per migration data chunk. Large blocks are split so no single
	// message grows unbounded.
	DEFAULT_MIGRATION_CHUNK_SIZE = 1024
)

// ExecutorConfig configures one executor process. Loaded from a toml file,
// with flags overriding individual fields in cmd/executor.
type ExecutorConfig struct {
	Hostname  string   `toml:"hostname"`
	Port      uint16   `toml:"port"`
	ZkServers []string `toml:"zk-servers"`
	DataDir   string   `toml:"data-dir"`

	// Seconds; zero means DEFAULT_REMOTE_OP_TIMEOUT.
	RemoteOpTimeoutSec int `toml:"remote-op-timeout-sec"`
	MigrationChunkSize int `toml:"migration-chunk-size"`
}

type CoordinatorConfig struct {
	Hostname  string   `toml:"hostname"`
	Port      uint16   `toml:"port"`
	ZkServers []string `toml:"zk-servers"`
}

func NewDefaultExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		Hostname:           "localhost",
		Port:               7900,
		ZkServers:          []string{"localhost:2181"},
		DataDir:            "/tmp/harmony",
		MigrationChunkSize: DEFAULT_MIGRATION_CHUNK_SIZE,
	}
}

func NewDefaultCoordinatorConfig() *CoordinatorConfig {
	return &CoordinatorConfig{
		Hostname:  "localhost",
		Port:      7899,
		ZkServers: []string{"localhost:2181"},
	}
}

func (c *ExecutorConfig) FromFile(path string) error {
	_, err := toml.DecodeFile(path, c)
	return errors.Wrapf(err, "failed to load executor config from %s", path)
}

func (c *ExecutorConfig) RemoteOpTimeout() time.Duration {
	if c.RemoteOpTimeoutSec <= 0 {
		return DEFAULT_REMOTE_OP_TIMEOUT
	}
	return time.Duration(c.RemoteOpTimeoutSec) * time.Second
}

func (c *CoordinatorConfig) FromFile(path string) error {
	_, err := toml.DecodeFile(path, c)
	return errors.Wrapf(err, "failed to load coordinator config from %s", path)
}
