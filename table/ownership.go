// Ownership cache: per-executor mapping from block id to current owner,
// consulted (under a per-block lock) by every operation before routing.
package table

import (
	"sync"

	"go.uber.org/zap"

	"github.com/zyq11223/harmony/common"
)

type ownershipEntry struct {
	mu sync.RWMutex
	// owner executor id, empty = owned locally
	owner string
	// non-nil while the block is owned locally but its data has not yet
	// arrived (migration in progress); closed when the import completes
	incoming chan struct{}
}

// OwnershipCache tracks one table's block owners at one executor. Locks are
// block-scoped so unrelated blocks route concurrently.
type OwnershipCache struct {
	localId string
	entries []*ownershipEntry
}

// NewOwnershipCache builds the cache from the coordinator's placement:
// owners[i] is the executor owning block i.
func NewOwnershipCache(localId string, owners []string) *OwnershipCache {
	entries := make([]*ownershipEntry, len(owners))
	for i, owner := range owners {
		e := &ownershipEntry{}
		if owner != localId {
			e.owner = owner
		}
		entries[i] = e
	}
	return &OwnershipCache{localId: localId, entries: entries}
}

func (c *OwnershipCache) NumBlocks() int {
	return len(c.entries)
}

// ResolveWithLock resolves the block's owner and returns holding the
// per-block read lock. The caller must route (local tablet call or remote
// send) before invoking unlock, which closes the race window against a
// migration flipping ownership mid-decision.
//
// incoming is non-nil when the block is local but still awaiting migration
// data; the caller must release the lock, wait on the channel and resolve
// again.
func (c *OwnershipCache) ResolveWithLock(blockId common.BlockId) (owner string, incoming <-chan struct{}, unlock func()) {
	e := c.entries[blockId]
	e.mu.RLock()
	return e.owner, e.incoming, e.mu.RUnlock
}

// Owner is a lock-and-release convenience for tests and introspection.
// Like ResolveWithLock, the empty string means the block is owned locally.
func (c *OwnershipCache) Owner(blockId common.BlockId) string {
	owner, _, unlock := c.ResolveWithLock(blockId)
	unlock()
	return owner
}

// LocalBlocks lists the block ids this executor currently believes it owns.
func (c *OwnershipCache) LocalBlocks() []common.BlockId {
	var ids []common.BlockId
	for i := range c.entries {
		e := c.entries[i]
		e.mu.RLock()
		if e.owner == "" {
			ids = append(ids, common.BlockId(i))
		}
		e.mu.RUnlock()
	}
	return ids
}

// ApplyUpdate moves a block's ownership from oldOwner to newOwner. Only the
// migration handlers call this. It is idempotent: re-applying the same
// (old, new) pair is a no-op, tolerating at-least-once delivery of the
// coordinator's broadcast.
func (c *OwnershipCache) ApplyUpdate(blockId common.BlockId, oldOwner, newOwner string) {
	e := c.entries[blockId]
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.owner
	if cur == "" {
		cur = c.localId
	}
	if cur == newOwner {
		// already applied
		return
	}
	if cur != oldOwner {
		common.Log().Warn("ownership update does not match cached owner",
			zap.Int("blockId", int(blockId)),
			zap.String("cached", cur),
			zap.String("oldOwner", oldOwner),
			zap.String("newOwner", newOwner))
	}
	if newOwner == c.localId {
		// the block is ours now but its data is still in flight:
		// gate local access until the import completes
		e.owner = ""
		if e.incoming == nil {
			e.incoming = make(chan struct{})
		}
	} else {
		e.owner = newOwner
		e.incoming = nil
	}
}

// MarkBlockReady opens the gate for a block whose migration data has been
// fully applied to the tablet.
func (c *OwnershipCache) MarkBlockReady(blockId common.BlockId) {
	e := c.entries[blockId]
	e.mu.Lock()
	if e.incoming != nil {
		close(e.incoming)
		e.incoming = nil
	}
	e.mu.Unlock()
}
