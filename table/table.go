// Table facade: the operation surface application code calls. It encodes
// nothing itself; it partitions keys into blocks, resolves each block's owner
// under the per-block lock and either hits the local tablet or hands the
// operation to the dispatcher.
package table

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/zyq11223/harmony/common"
	pb "github.com/zyq11223/harmony/proto"
)

type Table struct {
	id          string
	spec        *pb.TableSpec
	def         Definition
	partitioner common.Partitioner
	tablet      *Tablet
	ownership   *OwnershipCache
	disp        *dispatcher
	timeout     time.Duration
}

func newTable(spec *pb.TableSpec, def Definition, owners []string,
	localId string, pool ClientPool, timeout time.Duration) *Table {

	ordered := spec.Ordering == pb.OrderingMode_ORDERED
	var partitioner common.Partitioner
	if ordered {
		partitioner = common.NewOrderedPartitioner(spec.Boundaries)
	} else {
		partitioner = common.NewHashPartitioner(int(spec.NumBlocks))
	}

	tablet := NewTablet(ordered)
	for i, owner := range owners {
		if owner == localId {
			tablet.CreateBlock(common.BlockId(i))
		}
	}

	return &Table{
		id:          spec.TableId,
		spec:        spec,
		def:         def,
		partitioner: partitioner,
		tablet:      tablet,
		ownership:   NewOwnershipCache(localId, owners),
		disp:        newDispatcher(localId, pool, timeout),
		timeout:     timeout,
	}
}

func (t *Table) Id() string {
	return t.id
}

// Ownership exposes the ownership cache to the migration handler and tests.
func (t *Table) Ownership() *OwnershipCache {
	return t.ownership
}

// Tablet exposes local storage for migration and checkpointing only; it is
// not part of the client surface.
func (t *Table) Tablet() *Tablet {
	return t.tablet
}

func (t *Table) Put(key, value []byte) *SingleResult {
	return t.singleOp(pb.OpType_PUT, key, value, true, false)
}

func (t *Table) PutNoReply(key, value []byte) {
	t.singleOp(pb.OpType_PUT, key, value, false, false)
}

func (t *Table) PutIfAbsent(key, value []byte) *SingleResult {
	return t.singleOp(pb.OpType_PUT_IF_ABSENT, key, value, true, false)
}

func (t *Table) PutIfAbsentNoReply(key, value []byte) {
	t.singleOp(pb.OpType_PUT_IF_ABSENT, key, value, false, false)
}

// Get resolves to the value and whether it exists. With copy set the caller
// receives a private copy it may mutate freely.
func (t *Table) Get(key []byte, copy bool) *SingleResult {
	return t.singleOp(pb.OpType_GET, key, nil, true, copy)
}

func (t *Table) GetOrInit(key []byte) *SingleResult {
	return t.singleOp(pb.OpType_GET_OR_INIT, key, nil, true, false)
}

// Update applies the table's update function to the stored value and the
// delta at the block's owner, resolving to the new value.
func (t *Table) Update(key, delta []byte) *SingleResult {
	return t.singleOp(pb.OpType_UPDATE, key, delta, true, false)
}

func (t *Table) Remove(key []byte) *SingleResult {
	return t.singleOp(pb.OpType_REMOVE, key, nil, true, false)
}

func (t *Table) MultiPut(keys, values [][]byte) *MapResult {
	return t.multiOp(pb.OpType_PUT, keys, values, false)
}

func (t *Table) MultiPutIfAbsent(keys, values [][]byte) *MapResult {
	return t.multiOp(pb.OpType_PUT_IF_ABSENT, keys, values, false)
}

func (t *Table) MultiGet(keys [][]byte, copy bool) *MapResult {
	return t.multiOp(pb.OpType_GET, keys, nil, copy)
}

func (t *Table) MultiGetOrInit(keys [][]byte) *MapResult {
	return t.multiOp(pb.OpType_GET_OR_INIT, keys, nil, false)
}

func (t *Table) MultiUpdate(keys, deltas [][]byte) *MapResult {
	return t.multiOp(pb.OpType_UPDATE, keys, deltas, false)
}

func (t *Table) MultiRemove(keys [][]byte) *MapResult {
	return t.multiOp(pb.OpType_REMOVE, keys, nil, false)
}

func (t *Table) singleOp(op pb.OpType, key, value []byte, replyRequired bool, copy bool) *SingleResult {
	blockId := t.partitioner.BlockId(key)
	for {
		owner, incoming, unlock := t.ownership.ResolveWithLock(blockId)
		if owner != "" {
			res := t.disp.sendSingleKeyOp(op, t.id, blockId, owner, key, value, replyRequired, copy)
			unlock()
			return res
		}
		if incoming == nil {
			v, ok, err := t.execLocal(op, blockId, key, value, copy)
			unlock()
			return resolvedSingleResult(v, ok, err)
		}
		// the block is ours but its migration data has not landed yet
		unlock()
		select {
		case <-incoming:
		case <-time.After(t.timeout):
			return resolvedSingleResult(nil, false, common.ErrRemoteOpTimeout)
		}
	}
}

func (t *Table) multiOp(op pb.OpType, keys, values [][]byte, copy bool) *MapResult {
	// group keys by block, preserving submission order within each block
	blockKeys := make(map[common.BlockId][][]byte)
	blockValues := make(map[common.BlockId][][]byte)
	for i, key := range keys {
		blockId := t.partitioner.BlockId(key)
		blockKeys[blockId] = append(blockKeys[blockId], key)
		if values != nil {
			blockValues[blockId] = append(blockValues[blockId], values[i])
		}
	}

	agg := newMapResult(len(blockKeys))
	for blockId, subKeys := range blockKeys {
		t.dispatchBlockShare(op, blockId, subKeys, blockValues[blockId], copy, agg)
	}
	return agg
}

func (t *Table) dispatchBlockShare(op pb.OpType, blockId common.BlockId,
	keys, values [][]byte, copy bool, agg *MapResult) {

	for {
		owner, incoming, unlock := t.ownership.ResolveWithLock(blockId)
		if owner != "" {
			t.disp.sendMultiKeyOp(op, t.id, blockId, owner, keys, values, copy, agg)
			unlock()
			return
		}
		if incoming == nil {
			outKeys, outValues, err := t.execLocalMulti(op, blockId, keys, values, copy)
			unlock()
			agg.completePart(outKeys, outValues, err)
			return
		}
		unlock()
		select {
		case <-incoming:
		case <-time.After(t.timeout):
			agg.completePart(nil, nil,
				errors.Wrapf(common.ErrRemoteOpTimeout, "block %d", blockId))
			return
		}
	}
}

// execLocal runs one operation against the local tablet. The bool reports
// whether a result value exists.
func (t *Table) execLocal(op pb.OpType, blockId common.BlockId, key, value []byte, copy bool) ([]byte, bool, error) {
	switch op {
	case pb.OpType_PUT:
		return t.tablet.Put(blockId, key, value)
	case pb.OpType_PUT_IF_ABSENT:
		return t.tablet.PutIfAbsent(blockId, key, value)
	case pb.OpType_GET:
		return t.tablet.Get(blockId, key, copy)
	case pb.OpType_GET_OR_INIT:
		if t.def.Init == nil {
			return nil, false, errors.Errorf("table %s has no init function", t.id)
		}
		v, err := t.tablet.GetOrInit(blockId, key, t.def.Init)
		return v, err == nil, err
	case pb.OpType_UPDATE:
		v, err := t.tablet.Update(blockId, key, value, t.def.Update)
		return v, err == nil, err
	case pb.OpType_REMOVE:
		return t.tablet.Remove(blockId, key)
	default:
		return nil, false, errors.Errorf("unknown operation type %v", op)
	}
}

func (t *Table) execLocalMulti(op pb.OpType, blockId common.BlockId,
	keys, values [][]byte, copy bool) ([][]byte, [][]byte, error) {

	var outKeys, outValues [][]byte
	for i, key := range keys {
		var value []byte
		if values != nil {
			value = values[i]
		}
		v, ok, err := t.execLocal(op, blockId, key, value, copy)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			outKeys = append(outKeys, key)
			outValues = append(outValues, v)
		}
	}
	return outKeys, outValues, nil
}

// handleAccess serves an operation arriving from a remote executor. If the
// block has moved away since the origin resolved it, the request is
// forwarded one hop to the current owner.
func (t *Table) handleAccess(req *pb.AccessRequest) *pb.AccessResponse {
	blockId := common.BlockId(req.BlockId)
	if req.BlockId < 0 {
		// external clients leave the block unset and let the executor
		// partition for them
		if len(req.Keys) == 0 {
			return &pb.AccessResponse{Status: pb.Status_EFAILED, ErrMsg: "no keys in request"}
		}
		blockId = t.partitioner.BlockId(req.Keys[0])
	}
	if int(blockId) >= t.ownership.NumBlocks() {
		return &pb.AccessResponse{Status: pb.Status_ENOBLOCK, ErrMsg: "block id out of range"}
	}
	for {
		owner, incoming, unlock := t.ownership.ResolveWithLock(blockId)
		if owner == "" && incoming == nil {
			outKeys, outValues, err := t.execLocalMulti(req.Op, blockId, req.Keys, req.Values, req.Copy)
			unlock()
			if err != nil {
				return &pb.AccessResponse{Status: pb.Status_EFAILED, ErrMsg: err.Error()}
			}
			return &pb.AccessResponse{Status: pb.Status_OK, Keys: outKeys, Values: outValues}
		}
		unlock()

		if owner != "" {
			// ownership changed after the origin routed here; chase it
			return t.forwardAccess(owner, req)
		}

		select {
		case <-incoming:
		case <-time.After(t.timeout):
			return &pb.AccessResponse{
				Status: pb.Status_EFAILED,
				ErrMsg: errors.Wrapf(common.ErrRemoteOpTimeout, "block %d never became ready", blockId).Error(),
			}
		}
	}
}

func (t *Table) forwardAccess(owner string, req *pb.AccessRequest) *pb.AccessResponse {
	client, err := t.disp.pool.GetExecutorClient(owner)
	if err != nil {
		return &pb.AccessResponse{Status: pb.Status_EFAILED, ErrMsg: err.Error()}
	}
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()
	resp, err := client.Access(ctx, req)
	if err != nil {
		return &pb.AccessResponse{Status: pb.Status_EFAILED, ErrMsg: err.Error()}
	}
	return resp
}
