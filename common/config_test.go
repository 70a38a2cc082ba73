package common_test

import (
	"io/ioutil"
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zyq11223/harmony/common"
)

func TestDefaultExecutorConfig(t *testing.T) {
	ast := assert.New(t)
	conf := common.NewDefaultExecutorConfig()
	ast.Equal("localhost", conf.Hostname)
	ast.Equal(uint16(7900), conf.Port)
	ast.Equal(common.DEFAULT_MIGRATION_CHUNK_SIZE, conf.MigrationChunkSize)
	ast.Equal(common.DEFAULT_REMOTE_OP_TIMEOUT, conf.RemoteOpTimeout())
}

func TestExecutorConfigFromFile(t *testing.T) {
	ast := assert.New(t)
	dir, err := ioutil.TempDir("", "config_test")
	ast.Nil(err)
	defer os.RemoveAll(dir)

	content := `
hostname = "table-1.example.com"
port = 8900
zk-servers = ["zk1:2181", "zk2:2181"]
data-dir = "/var/lib/harmony"
remote-op-timeout-sec = 5
migration-chunk-size = 128
`
	file := path.Join(dir, "executor.toml")
	ast.Nil(ioutil.WriteFile(file, []byte(content), 0644))

	conf := common.NewDefaultExecutorConfig()
	ast.Nil(conf.FromFile(file))
	ast.Equal("table-1.example.com", conf.Hostname)
	ast.Equal(uint16(8900), conf.Port)
	ast.Equal([]string{"zk1:2181", "zk2:2181"}, conf.ZkServers)
	ast.Equal("/var/lib/harmony", conf.DataDir)
	ast.Equal(5*time.Second, conf.RemoteOpTimeout())
	ast.Equal(128, conf.MigrationChunkSize)
}

func TestExecutorConfigFromMissingFile(t *testing.T) {
	conf := common.NewDefaultExecutorConfig()
	assert.NotNil(t, conf.FromFile("/nonexistent/executor.toml"))
}

func TestCoordinatorConfigFromFile(t *testing.T) {
	ast := assert.New(t)
	dir, err := ioutil.TempDir("", "config_test")
	ast.Nil(err)
	defer os.RemoveAll(dir)

	file := path.Join(dir, "coordinator.toml")
	ast.Nil(ioutil.WriteFile(file, []byte("port = 9899\n"), 0644))

	conf := common.NewDefaultCoordinatorConfig()
	ast.Nil(conf.FromFile(file))
	ast.Equal(uint16(9899), conf.Port)
	// untouched fields keep their defaults
	ast.Equal("localhost", conf.Hostname)
}
