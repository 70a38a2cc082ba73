// Remote access dispatch: sends table operations to the owning executor and
// resolves the issuing side's futures from the responses.
package table

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/zyq11223/harmony/common"
	pb "github.com/zyq11223/harmony/proto"
)

// ClientPool resolves an executor id to a client for its service. The
// production pool dials peers registered in zookeeper; tests plug in
// in-process adapters.
type ClientPool interface {
	GetExecutorClient(executorId string) (pb.ExecutorClient, error)
}

type dispatcher struct {
	localId string
	pool    ClientPool
	pending *pendingOps
	opId    atomic.Uint64
	timeout time.Duration
}

func newDispatcher(localId string, pool ClientPool, timeout time.Duration) *dispatcher {
	return &dispatcher{
		localId: localId,
		pool:    pool,
		pending: newPendingOps(),
		timeout: timeout,
	}
}

// sendSingleKeyOp ships one operation to the block's owner. The returned
// future resolves when the response arrives; with replyRequired false the
// response is discarded and the returned future is already resolved.
func (d *dispatcher) sendSingleKeyOp(op pb.OpType, tableId string, blockId common.BlockId,
	owner string, key, value []byte, replyRequired bool, copy bool) *SingleResult {

	req := &pb.AccessRequest{
		Op:            op,
		TableId:       tableId,
		BlockId:       int32(blockId),
		OrigExecutor:  d.localId,
		ReplyRequired: replyRequired,
		Copy:          copy,
		Keys:          [][]byte{key},
	}
	if value != nil {
		req.Values = [][]byte{value}
	}

	if !replyRequired {
		d.send(owner, req, nil)
		return resolvedSingleResult(nil, false, nil)
	}

	res := newSingleResult()
	d.send(owner, req, res)
	return res
}

// sendMultiKeyOp ships one block's share of a multi-key operation; the
// response lands in the aggregate result.
func (d *dispatcher) sendMultiKeyOp(op pb.OpType, tableId string, blockId common.BlockId,
	owner string, keys, values [][]byte, copy bool, agg *MapResult) {

	req := &pb.AccessRequest{
		Op:            op,
		TableId:       tableId,
		BlockId:       int32(blockId),
		OrigExecutor:  d.localId,
		ReplyRequired: true,
		Copy:          copy,
		Keys:          keys,
		Values:        values,
	}
	d.send(owner, req, &mapPartCompleter{blockId: blockId, agg: agg})
}

// send assigns the operation id, registers the completer and performs the
// call off the caller's goroutine. The per-block ownership lock is held by
// the caller only until send returns, not for the network round trip.
func (d *dispatcher) send(owner string, req *pb.AccessRequest, c opCompleter) {
	opId := d.opId.Inc()
	req.OpId = opId
	if c != nil {
		d.pending.register(opId, c)
		if r, ok := c.(*SingleResult); ok {
			r.detach = func() { d.pending.deregister(opId) }
		}
	}

	go func() {
		client, err := d.pool.GetExecutorClient(owner)
		if err != nil {
			d.onResponse(opId, req, nil,
				errors.Wrapf(common.ErrTransport, "no client for %s: %v", owner, err))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		resp, err := client.Access(ctx, req)
		if err != nil {
			err = errors.Wrapf(common.ErrTransport, "access to %s: %v", owner, err)
		}
		d.onResponse(opId, req, resp, err)
	}()
}

func (d *dispatcher) onResponse(opId uint64, req *pb.AccessRequest, resp *pb.AccessResponse, err error) {
	if !req.ReplyRequired {
		if err != nil {
			common.Log().Warn("no-reply operation failed",
				zap.Uint64("opId", opId), zap.Error(err))
		}
		return
	}
	c, ok := d.pending.take(opId)
	if !ok {
		// the caller already timed out and deregistered the op
		common.Log().Debug("dropping late response for deregistered operation",
			zap.Uint64("opId", opId))
		return
	}
	c.complete(resp, err)
}
