package table

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/zyq11223/harmony/common"
)

const (
	CKPT_FILENAME_SUFFIX      = ".ckpt.json"
	CKPT_TMP_FILENAME_PATTERN = "ckpt.*.json"
)

type snapshotPair struct {
	K []byte `json:"k"`
	V []byte `json:"v"`
}

type tableSnapshot struct {
	TableId string                 `json:"table_id"`
	Blocks  map[int][]snapshotPair `json:"blocks"`
}

// Checkpoint flushes every data-resident block to a json file under dir.
// Best effort: blocks migrating away between export and write may be
// re-imported on restore and will be dropped again by the ownership cache.
func (t *Table) Checkpoint(dir string) (string, error) {
	snap := tableSnapshot{
		TableId: t.id,
		Blocks:  make(map[int][]snapshotPair),
	}
	for _, blockId := range t.tablet.BlockIds() {
		keys, values, err := t.tablet.ExportBlock(blockId)
		if err != nil {
			// raced with a block drop, skip it
			continue
		}
		pairs := make([]snapshotPair, len(keys))
		for i := range keys {
			pairs[i] = snapshotPair{K: keys[i], V: values[i]}
		}
		snap.Blocks[int(blockId)] = pairs
	}

	b, err := json.Marshal(&snap)
	if err != nil {
		return "", err
	}
	tmpFile, err := ioutil.TempFile(dir, CKPT_TMP_FILENAME_PATTERN)
	if err != nil {
		return "", err
	}
	if _, err := tmpFile.Write(b); err != nil {
		tmpFile.Close()
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		return "", err
	}

	// All-or-nothing transition here
	ckptName := path.Join(dir, t.id+CKPT_FILENAME_SUFFIX)
	if err := os.Rename(tmpFile.Name(), ckptName); err != nil {
		return "", err
	}
	return ckptName, nil
}

// RestoreCheckpoint loads a checkpoint file back into the tablet. Only
// blocks this executor still owns are restored.
func (t *Table) RestoreCheckpoint(ckptPath string) error {
	b, err := ioutil.ReadFile(ckptPath)
	if err != nil {
		return err
	}
	var snap tableSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return err
	}
	for id, pairs := range snap.Blocks {
		blockId := common.BlockId(id)
		if t.ownership.Owner(blockId) != "" {
			continue
		}
		keys := make([][]byte, len(pairs))
		values := make([][]byte, len(pairs))
		for i, p := range pairs {
			keys[i] = p.K
			values[i] = p.V
		}
		t.tablet.ImportBlock(blockId, keys, values)
	}
	return nil
}
