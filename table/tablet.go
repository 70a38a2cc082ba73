// Tablet: the local physical storage of one table at one executor. It holds
// exactly the blocks the executor currently owns (plus blocks mid-import
// during migration) and knows nothing about routing.
package table

import (
	"bytes"
	"sync"

	"github.com/google/btree"
	"go.uber.org/zap"

	"github.com/zyq11223/harmony/common"
)

const btreeDegree = 32

// blockStore is the storage of a single block. Implementations are safe for
// concurrent use.
type blockStore interface {
	get(key []byte, copy bool) ([]byte, bool)
	put(key, value []byte) ([]byte, bool)
	putIfAbsent(key, value []byte) ([]byte, bool)
	update(key, delta []byte, fn UpdateFunc) []byte
	getOrInit(key []byte, fn InitFunc) []byte
	remove(key []byte) ([]byte, bool)
	numItems() int
	export() (keys [][]byte, values [][]byte)
	bulkLoad(keys [][]byte, values [][]byte)
}

type hashedBlock struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func newHashedBlock() *hashedBlock {
	return &hashedBlock{items: make(map[string][]byte)}
}

func maybeCopy(v []byte, copy bool) []byte {
	if v == nil || !copy {
		return v
	}
	return append([]byte(nil), v...)
}

func (b *hashedBlock) get(key []byte, copy bool) ([]byte, bool) {
	b.mu.RLock()
	v, ok := b.items[string(key)]
	b.mu.RUnlock()
	return maybeCopy(v, copy), ok
}

func (b *hashedBlock) put(key, value []byte) ([]byte, bool) {
	b.mu.Lock()
	prev, ok := b.items[string(key)]
	b.items[string(key)] = value
	b.mu.Unlock()
	return prev, ok
}

func (b *hashedBlock) putIfAbsent(key, value []byte) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if prev, ok := b.items[string(key)]; ok {
		return prev, true
	}
	b.items[string(key)] = value
	return nil, false
}

func (b *hashedBlock) update(key, delta []byte, fn UpdateFunc) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	old := b.items[string(key)]
	next := fn(old, delta)
	b.items[string(key)] = next
	return next
}

func (b *hashedBlock) getOrInit(key []byte, fn InitFunc) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.items[string(key)]; ok {
		return v
	}
	v := fn(key)
	b.items[string(key)] = v
	return v
}

func (b *hashedBlock) remove(key []byte) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev, ok := b.items[string(key)]
	if ok {
		delete(b.items, string(key))
	}
	return prev, ok
}

func (b *hashedBlock) numItems() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

func (b *hashedBlock) export() ([][]byte, [][]byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([][]byte, 0, len(b.items))
	values := make([][]byte, 0, len(b.items))
	for k, v := range b.items {
		keys = append(keys, []byte(k))
		values = append(values, v)
	}
	return keys, values
}

func (b *hashedBlock) bulkLoad(keys [][]byte, values [][]byte) {
	b.mu.Lock()
	for i := range keys {
		b.items[string(keys[i])] = values[i]
	}
	b.mu.Unlock()
}

type kvItem struct {
	key   []byte
	value []byte
}

func (it kvItem) Less(than btree.Item) bool {
	return bytes.Compare(it.key, than.(kvItem).key) < 0
}

type orderedBlock struct {
	mu   sync.RWMutex
	tree *btree.BTree
}

func newOrderedBlock() *orderedBlock {
	return &orderedBlock{tree: btree.New(btreeDegree)}
}

func (b *orderedBlock) get(key []byte, copy bool) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	it := b.tree.Get(kvItem{key: key})
	if it == nil {
		return nil, false
	}
	return maybeCopy(it.(kvItem).value, copy), true
}

func (b *orderedBlock) put(key, value []byte) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.tree.ReplaceOrInsert(kvItem{key: key, value: value})
	if prev == nil {
		return nil, false
	}
	return prev.(kvItem).value, true
}

func (b *orderedBlock) putIfAbsent(key, value []byte) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if it := b.tree.Get(kvItem{key: key}); it != nil {
		return it.(kvItem).value, true
	}
	b.tree.ReplaceOrInsert(kvItem{key: key, value: value})
	return nil, false
}

func (b *orderedBlock) update(key, delta []byte, fn UpdateFunc) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	var old []byte
	if it := b.tree.Get(kvItem{key: key}); it != nil {
		old = it.(kvItem).value
	}
	next := fn(old, delta)
	b.tree.ReplaceOrInsert(kvItem{key: key, value: next})
	return next
}

func (b *orderedBlock) getOrInit(key []byte, fn InitFunc) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if it := b.tree.Get(kvItem{key: key}); it != nil {
		return it.(kvItem).value
	}
	v := fn(key)
	b.tree.ReplaceOrInsert(kvItem{key: key, value: v})
	return v
}

func (b *orderedBlock) remove(key []byte) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.tree.Delete(kvItem{key: key})
	if prev == nil {
		return nil, false
	}
	return prev.(kvItem).value, true
}

func (b *orderedBlock) numItems() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.Len()
}

func (b *orderedBlock) export() ([][]byte, [][]byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([][]byte, 0, b.tree.Len())
	values := make([][]byte, 0, b.tree.Len())
	b.tree.Ascend(func(it btree.Item) bool {
		kv := it.(kvItem)
		keys = append(keys, kv.key)
		values = append(values, kv.value)
		return true
	})
	return keys, values
}

func (b *orderedBlock) bulkLoad(keys [][]byte, values [][]byte) {
	b.mu.Lock()
	for i := range keys {
		b.tree.ReplaceOrInsert(kvItem{key: keys[i], value: values[i]})
	}
	b.mu.Unlock()
}

// Tablet maps resident block ids to their stores.
type Tablet struct {
	mu      sync.RWMutex
	blocks  map[common.BlockId]blockStore
	ordered bool
}

func NewTablet(ordered bool) *Tablet {
	return &Tablet{
		blocks:  make(map[common.BlockId]blockStore),
		ordered: ordered,
	}
}

func (t *Tablet) newBlockStore() blockStore {
	if t.ordered {
		return newOrderedBlock()
	}
	return newHashedBlock()
}

func (t *Tablet) CreateBlock(blockId common.BlockId) {
	t.mu.Lock()
	if _, ok := t.blocks[blockId]; !ok {
		t.blocks[blockId] = t.newBlockStore()
	}
	t.mu.Unlock()
}

func (t *Tablet) DropBlock(blockId common.BlockId) {
	t.mu.Lock()
	delete(t.blocks, blockId)
	t.mu.Unlock()
}

func (t *Tablet) HasBlock(blockId common.BlockId) bool {
	t.mu.RLock()
	_, ok := t.blocks[blockId]
	t.mu.RUnlock()
	return ok
}

func (t *Tablet) BlockIds() []common.BlockId {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]common.BlockId, 0, len(t.blocks))
	for id := range t.blocks {
		ids = append(ids, id)
	}
	return ids
}

// block returns the store, screaming loudly if the block is not resident:
// the caller consulted the ownership cache, so a miss is a protocol bug.
func (t *Tablet) block(blockId common.BlockId) (blockStore, error) {
	t.mu.RLock()
	b, ok := t.blocks[blockId]
	t.mu.RUnlock()
	if !ok {
		common.Log().Error("FATAL: tablet accessed for a non-resident block, "+
			"the routing layer must prevent this",
			zap.Int("blockId", int(blockId)))
		return nil, common.WrapBlockNotOwned(blockId)
	}
	return b, nil
}

func (t *Tablet) Get(blockId common.BlockId, key []byte, copy bool) ([]byte, bool, error) {
	b, err := t.block(blockId)
	if err != nil {
		return nil, false, err
	}
	v, ok := b.get(key, copy)
	return v, ok, nil
}

func (t *Tablet) Put(blockId common.BlockId, key, value []byte) ([]byte, bool, error) {
	b, err := t.block(blockId)
	if err != nil {
		return nil, false, err
	}
	prev, ok := b.put(key, value)
	return prev, ok, nil
}

func (t *Tablet) PutIfAbsent(blockId common.BlockId, key, value []byte) ([]byte, bool, error) {
	b, err := t.block(blockId)
	if err != nil {
		return nil, false, err
	}
	prev, ok := b.putIfAbsent(key, value)
	return prev, ok, nil
}

func (t *Tablet) Update(blockId common.BlockId, key, delta []byte, fn UpdateFunc) ([]byte, error) {
	b, err := t.block(blockId)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		fn = ReplaceUpdate
	}
	return b.update(key, delta, fn), nil
}

func (t *Tablet) GetOrInit(blockId common.BlockId, key []byte, fn InitFunc) ([]byte, error) {
	b, err := t.block(blockId)
	if err != nil {
		return nil, err
	}
	return b.getOrInit(key, fn), nil
}

func (t *Tablet) Remove(blockId common.BlockId, key []byte) ([]byte, bool, error) {
	b, err := t.block(blockId)
	if err != nil {
		return nil, false, err
	}
	prev, ok := b.remove(key)
	return prev, ok, nil
}

func (t *Tablet) NumItems(blockId common.BlockId) int {
	t.mu.RLock()
	b, ok := t.blocks[blockId]
	t.mu.RUnlock()
	if !ok {
		return 0
	}
	return b.numItems()
}

// ExportBlock snapshots a block's contents for migration.
func (t *Tablet) ExportBlock(blockId common.BlockId) ([][]byte, [][]byte, error) {
	b, err := t.block(blockId)
	if err != nil {
		return nil, nil, err
	}
	keys, values := b.export()
	return keys, values, nil
}

// ImportBlock applies migrated pairs, creating the block if needed. Chunks
// of the same block may be imported in several calls.
func (t *Tablet) ImportBlock(blockId common.BlockId, keys [][]byte, values [][]byte) {
	t.mu.Lock()
	b, ok := t.blocks[blockId]
	if !ok {
		b = t.newBlockStore()
		t.blocks[blockId] = b
	}
	t.mu.Unlock()
	b.bulkLoad(keys, values)
}
