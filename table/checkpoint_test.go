package table_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zyq11223/harmony/table"
)

func TestCheckpointRoundTrip(t *testing.T) {
	ast := assert.New(t)
	dir, err := ioutil.TempDir("", "checkpoint_test")
	ast.Nil(err)
	defer os.RemoveAll(dir)

	c := newFakeCluster(testConf(), "executor-1")
	owners := []string{"executor-1", "executor-1", "executor-1"}
	c.createTable(t, hashedSpec("t", 3), owners)
	tbl, _ := c.managers["executor-1"].GetTable("t")
	for i := 0; i < 100; i++ {
		_, _, err := tbl.Put([]byte(fmt.Sprintf("key-%d", i)), []byte(fmt.Sprintf("value-%d", i))).Get(waitFor)
		ast.Nil(err)
	}

	ckpt, err := tbl.Checkpoint(dir)
	ast.Nil(err)
	_, err = os.Stat(ckpt)
	ast.Nil(err)

	// a fresh executor restores into an empty table
	c2 := newFakeCluster(testConf(), "executor-1")
	c2.createTable(t, hashedSpec("t", 3), owners)
	restored, _ := c2.managers["executor-1"].GetTable("t")
	ast.Nil(restored.RestoreCheckpoint(ckpt))

	for i := 0; i < 100; i++ {
		v, ok, err := restored.Get([]byte(fmt.Sprintf("key-%d", i)), false).Get(waitFor)
		ast.Nil(err)
		ast.True(ok)
		ast.Equal([]byte(fmt.Sprintf("value-%d", i)), v)
	}
}

func TestCheckpointSkipsBlocksOwnedElsewhere(t *testing.T) {
	ast := assert.New(t)
	dir, err := ioutil.TempDir("", "checkpoint_test")
	ast.Nil(err)
	defer os.RemoveAll(dir)

	c := newFakeCluster(testConf(), "executor-1")
	c.createTable(t, hashedSpec("t", 2), []string{"executor-1", "executor-1"})
	tbl, _ := c.managers["executor-1"].GetTable("t")
	key0 := keyInBlock(2, 0)
	key1 := keyInBlock(2, 1)
	_, _, err = tbl.Put(key0, []byte("zero")).Get(waitFor)
	ast.Nil(err)
	_, _, err = tbl.Put(key1, []byte("one")).Get(waitFor)
	ast.Nil(err)

	ckpt, err := tbl.Checkpoint(dir)
	ast.Nil(err)

	// on restore, block 1 has moved to another executor
	c2 := newFakeCluster(testConf(), "executor-1")
	c2.createTable(t, hashedSpec("t", 2), []string{"executor-1", "executor-2"})
	restored, _ := c2.managers["executor-1"].GetTable("t")
	ast.Nil(restored.RestoreCheckpoint(ckpt))

	v, ok, err := restored.Tablet().Get(0, key0, false)
	ast.Nil(err)
	ast.True(ok)
	ast.Equal([]byte("zero"), v)
	ast.False(restored.Tablet().HasBlock(1))
}

func TestManagerCheckpointAllAndAutoRestore(t *testing.T) {
	ast := assert.New(t)
	dir, err := ioutil.TempDir("", "checkpoint_test")
	ast.Nil(err)
	defer os.RemoveAll(dir)

	conf := testConf()
	conf.DataDir = dir
	c := newFakeCluster(conf, "executor-1")
	c.createTable(t, hashedSpec("t", 2), []string{"executor-1", "executor-1"})
	tbl, _ := c.managers["executor-1"].GetTable("t")
	for i := 0; i < 10; i++ {
		_, _, err := tbl.Put([]byte(fmt.Sprintf("key-%d", i)), []byte(fmt.Sprintf("value-%d", i))).Get(waitFor)
		ast.Nil(err)
	}

	c.managers["executor-1"].CheckpointAll()
	_, err = os.Stat(path.Join(dir, "t"+table.CKPT_FILENAME_SUFFIX))
	ast.Nil(err)

	// the next incarnation picks the checkpoint up on table creation
	c2 := newFakeCluster(conf, "executor-1")
	c2.createTable(t, hashedSpec("t", 2), []string{"executor-1", "executor-1"})
	restored, _ := c2.managers["executor-1"].GetTable("t")
	for i := 0; i < 10; i++ {
		v, ok, err := restored.Get([]byte(fmt.Sprintf("key-%d", i)), false).Get(waitFor)
		ast.Nil(err)
		ast.True(ok)
		ast.Equal([]byte(fmt.Sprintf("value-%d", i)), v)
	}
}

func TestRestoreCheckpointMissingFile(t *testing.T) {
	c := newFakeCluster(testConf(), "executor-1")
	c.createTable(t, hashedSpec("t", 1), []string{"executor-1"})
	tbl, _ := c.managers["executor-1"].GetTable("t")
	assert.NotNil(t, tbl.RestoreCheckpoint("/nonexistent/t.ckpt.json"))
}
