// Future plumbing for asynchronous table operations.
//
// A future resolves exactly once. Timing out in Get deregisters the pending
// operation so a late response cannot touch state the caller already saw.
package table

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/zyq11223/harmony/common"
	pb "github.com/zyq11223/harmony/proto"
)

// opCompleter is the pending-table view of a future: it consumes the raw
// remote response (or send failure) for one in-flight request.
type opCompleter interface {
	complete(resp *pb.AccessResponse, err error)
}

// SingleResult is the future of a single-key operation.
type SingleResult struct {
	once   sync.Once
	done   chan struct{}
	value  []byte
	exists bool
	err    error
	// invoked when Get gives up, so the pending table forgets the op
	detach func()
}

func newSingleResult() *SingleResult {
	return &SingleResult{done: make(chan struct{})}
}

func resolvedSingleResult(value []byte, exists bool, err error) *SingleResult {
	r := newSingleResult()
	r.resolve(value, exists, err)
	return r
}

func (r *SingleResult) resolve(value []byte, exists bool, err error) {
	r.once.Do(func() {
		r.value = value
		r.exists = exists
		r.err = err
		close(r.done)
	})
}

func (r *SingleResult) complete(resp *pb.AccessResponse, err error) {
	if err != nil {
		r.resolve(nil, false, err)
		return
	}
	if resp.Status != pb.Status_OK {
		r.resolve(nil, false, errors.Errorf("remote operation failed: %s", resp.ErrMsg))
		return
	}
	if len(resp.Values) > 0 {
		r.resolve(resp.Values[0], true, nil)
	} else {
		r.resolve(nil, false, nil)
	}
}

// Get blocks until the operation resolves or timeout elapses. The bool
// reports whether a value exists (e.g. get hit, or put over a previous
// value). On timeout the future is deregistered and ErrRemoteOpTimeout
// returned; the in-flight request is not cancelled.
func (r *SingleResult) Get(timeout time.Duration) ([]byte, bool, error) {
	select {
	case <-r.done:
		return r.value, r.exists, r.err
	case <-time.After(timeout):
		if r.detach != nil {
			r.detach()
		}
		return nil, false, common.ErrRemoteOpTimeout
	}
}

// MapResult aggregates the per-block sub-operations of a multi-key call.
// It completes only once every sub-operation has completed; failures of
// individual blocks accumulate without affecting sibling blocks.
type MapResult struct {
	mu        sync.Mutex
	remaining int
	values    map[string][]byte
	failures  []string
	done      chan struct{}
}

func newMapResult(numParts int) *MapResult {
	r := &MapResult{
		remaining: numParts,
		values:    make(map[string][]byte),
		done:      make(chan struct{}),
	}
	if numParts == 0 {
		close(r.done)
	}
	return r
}

// completePart feeds one block's share of the results into the aggregate.
func (r *MapResult) completePart(keys [][]byte, values [][]byte, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.remaining <= 0 {
		// late part after timeout-induced completion; drop
		return
	}
	if err != nil {
		r.failures = append(r.failures, err.Error())
	} else {
		for i := range keys {
			r.values[string(keys[i])] = values[i]
		}
	}
	r.remaining--
	if r.remaining == 0 {
		close(r.done)
	}
}

// Get blocks until every constituent sub-operation has completed. The
// returned error is the union of per-block failures, nil if all succeeded.
func (r *MapResult) Get(timeout time.Duration) (map[string][]byte, error) {
	select {
	case <-r.done:
	case <-time.After(timeout):
		r.mu.Lock()
		r.remaining = 0 // drop parts arriving from now on
		r.mu.Unlock()
		return nil, common.ErrRemoteOpTimeout
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.failures) > 0 {
		return r.values, errors.Errorf("%d sub-operation(s) failed: %s",
			len(r.failures), strings.Join(r.failures, "; "))
	}
	return r.values, nil
}

// mapPartCompleter adapts one remote block request to a MapResult share.
type mapPartCompleter struct {
	blockId common.BlockId
	agg     *MapResult
}

func (c *mapPartCompleter) complete(resp *pb.AccessResponse, err error) {
	if err != nil {
		c.agg.completePart(nil, nil, errors.Wrapf(err, "block %d", c.blockId))
		return
	}
	if resp.Status != pb.Status_OK {
		c.agg.completePart(nil, nil,
			fmt.Errorf("block %d: %s", c.blockId, resp.ErrMsg))
		return
	}
	c.agg.completePart(resp.Keys, resp.Values, nil)
}

// pendingOps tracks in-flight remote operations by operation id.
type pendingOps struct {
	mu  sync.Mutex
	ops map[uint64]opCompleter
}

func newPendingOps() *pendingOps {
	return &pendingOps{ops: make(map[uint64]opCompleter)}
}

func (p *pendingOps) register(opId uint64, c opCompleter) {
	p.mu.Lock()
	p.ops[opId] = c
	p.mu.Unlock()
}

// take removes and returns the completer, if still registered.
func (p *pendingOps) take(opId uint64) (opCompleter, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.ops[opId]
	if ok {
		delete(p.ops, opId)
	}
	return c, ok
}

func (p *pendingOps) deregister(opId uint64) {
	p.mu.Lock()
	delete(p.ops, opId)
	p.mu.Unlock()
}
