// Executor side of block migration. The sender moves one block at a time:
// hand ownership to the receiver, flip the local routing entry so every
// subsequent operation forwards, then ship a stable snapshot of the block in
// chunks and purge it. The receiver applies chunks into its tablet and opens
// the block's access gate once the last chunk lands.
package table

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zyq11223/harmony/common"
	pb "github.com/zyq11223/harmony/proto"
)

type importProgress struct {
	received int64
}

// StartBlockMove validates a coordinator move order and runs it in the
// background. Validation failures are returned synchronously; everything
// after that is reported to the coordinator asynchronously.
func (m *Manager) StartBlockMove(req *pb.MoveBlockRequest) error {
	t, err := m.GetTable(req.TableId)
	if err != nil {
		return err
	}
	blockId := common.BlockId(req.BlockId)
	if owner := t.ownership.Owner(blockId); owner != "" {
		return errors.Wrapf(common.ErrBlockNotOwned,
			"block %d of table %s is owned by %s, not this executor",
			blockId, req.TableId, owner)
	}
	go m.runBlockMove(t, req)
	return nil
}

func (m *Manager) runBlockMove(t *Table, req *pb.MoveBlockRequest) {
	blockId := common.BlockId(req.BlockId)
	log := common.Log().With(
		zap.String("opId", req.OpId),
		zap.String("tableId", req.TableId),
		zap.Int("blockId", int(blockId)),
		zap.String("receiver", req.Receiver))
	log.Info("block move started")

	// range-based moves must carry data; refuse to migrate emptiness
	if req.RangeBased && t.tablet.NumItems(blockId) == 0 {
		m.reportFailed(req, common.ErrNoMovableData.Error())
		return
	}

	client, err := m.pool.GetExecutorClient(req.Receiver)
	if err != nil {
		log.Error("cannot reach receiver", zap.Error(err))
		m.reportFailed(req, err.Error())
		return
	}

	ownership := &pb.OwnershipRequest{
		OpId:     req.OpId,
		TableId:  req.TableId,
		BlockId:  req.BlockId,
		OldOwner: m.localId,
		NewOwner: req.Receiver,
	}
	if err := m.callReceiver(func(ctx context.Context) (*pb.GenericResponse, error) {
		return client.TransferOwnership(ctx, ownership)
	}); err != nil {
		log.Error("ownership transfer failed", zap.Error(err))
		m.reportFailed(req, err.Error())
		return
	}

	// The receiver acked: flip our own routing entry before touching the
	// data. From here on every operation on this block forwards to the
	// receiver and queues on its gate, so the export below is stable.
	t.ownership.ApplyUpdate(blockId, m.localId, req.Receiver)

	if !req.OwnershipTogether {
		m.reportOwnershipMoved(req)
	}

	keys, values, err := t.tablet.ExportBlock(blockId)
	if err != nil {
		// the block vanished after we gave it away, nothing to roll back
		log.Error("block export failed after ownership handover", zap.Error(err))
		m.reportFailed(req, err.Error())
		return
	}

	total := len(keys)
	chunkSize := m.conf.MigrationChunkSize
	if chunkSize <= 0 {
		chunkSize = common.DEFAULT_MIGRATION_CHUNK_SIZE
	}
	for off := 0; ; off += chunkSize {
		end := off + chunkSize
		if end > total {
			end = total
		}
		chunk := &pb.DataChunk{
			OpId:          req.OpId,
			TableId:       req.TableId,
			BlockId:       req.BlockId,
			NumTotalItems: int64(total),
			NumItems:      int64(end - off),
			Keys:          keys[off:end],
			Values:        values[off:end],
			Last:          end >= total,
		}
		if err := m.callReceiver(func(ctx context.Context) (*pb.GenericResponse, error) {
			return client.TransferData(ctx, chunk)
		}); err != nil {
			log.Error("data transfer failed after ownership handover",
				zap.Int("offset", off), zap.Error(err))
			m.reportFailed(req, err.Error())
			return
		}
		if chunk.Last {
			break
		}
	}

	t.tablet.DropBlock(blockId)
	log.Info("block move finished", zap.Int("numItems", total))

	if coord := m.coordinatorClient(); coord != nil {
		ctx, cancel := context.WithTimeout(context.Background(), m.conf.RemoteOpTimeout())
		defer cancel()
		_, err := coord.DataMoved(ctx, &pb.DataMovedMsg{
			OpId:           req.OpId,
			TableId:        req.TableId,
			BlockId:        req.BlockId,
			Sender:         m.localId,
			Receiver:       req.Receiver,
			OwnershipMoved: req.OwnershipTogether,
			NumItems:       int64(total),
		})
		if err != nil {
			log.Error("failed to report data moved", zap.Error(err))
		}
	}
}

func (m *Manager) callReceiver(call func(ctx context.Context) (*pb.GenericResponse, error)) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.conf.RemoteOpTimeout())
	defer cancel()
	resp, err := call(ctx)
	if err != nil {
		return errors.Wrap(common.ErrTransport, err.Error())
	}
	if resp.Status != pb.Status_OK {
		return errors.New(resp.ErrMsg)
	}
	return nil
}

func (m *Manager) reportOwnershipMoved(req *pb.MoveBlockRequest) {
	coord := m.coordinatorClient()
	if coord == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.conf.RemoteOpTimeout())
	defer cancel()
	_, err := coord.OwnershipMoved(ctx, &pb.OwnershipMovedMsg{
		OpId:     req.OpId,
		TableId:  req.TableId,
		BlockId:  req.BlockId,
		Sender:   m.localId,
		Receiver: req.Receiver,
	})
	if err != nil {
		common.Log().Error("failed to report ownership moved",
			zap.String("opId", req.OpId), zap.Error(err))
	}
}

func (m *Manager) reportFailed(req *pb.MoveBlockRequest, reason string) {
	coord := m.coordinatorClient()
	if coord == nil {
		common.Log().Error("block move failed with no coordinator to notify",
			zap.String("opId", req.OpId), zap.String("reason", reason))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.conf.RemoteOpTimeout())
	defer cancel()
	_, err := coord.MigrationFailed(ctx, &pb.MigrationFailedMsg{
		OpId:    req.OpId,
		TableId: req.TableId,
		BlockId: req.BlockId,
		Reason:  reason,
	})
	if err != nil {
		common.Log().Error("failed to report migration failure",
			zap.String("opId", req.OpId), zap.Error(err))
	}
}

// HandleTransferOwnership runs on the receiver: accept the block and gate
// access to it until its data arrives.
func (m *Manager) HandleTransferOwnership(req *pb.OwnershipRequest) error {
	t, err := m.GetTable(req.TableId)
	if err != nil {
		return err
	}
	t.ownership.ApplyUpdate(common.BlockId(req.BlockId), req.OldOwner, req.NewOwner)
	common.Log().Info("incoming block accepted",
		zap.String("opId", req.OpId),
		zap.String("tableId", req.TableId),
		zap.Int32("blockId", req.BlockId),
		zap.String("oldOwner", req.OldOwner))
	return nil
}

// HandleUpdateOwnership applies a coordinator ownership broadcast on an
// executor that is neither sender nor receiver of the migration.
func (m *Manager) HandleUpdateOwnership(req *pb.OwnershipRequest) error {
	t, err := m.GetTable(req.TableId)
	if err != nil {
		return err
	}
	t.ownership.ApplyUpdate(common.BlockId(req.BlockId), req.OldOwner, req.NewOwner)
	return nil
}

// HandleTransferData applies one migration chunk on the receiver. The last
// chunk opens the block's gate, releasing operations queued during the move.
func (m *Manager) HandleTransferData(chunk *pb.DataChunk) error {
	t, err := m.GetTable(chunk.TableId)
	if err != nil {
		return err
	}
	blockId := common.BlockId(chunk.BlockId)
	t.tablet.ImportBlock(blockId, chunk.Keys, chunk.Values)

	m.mu.Lock()
	prog, ok := m.imports[chunk.OpId]
	if !ok {
		prog = &importProgress{}
		m.imports[chunk.OpId] = prog
	}
	prog.received += int64(len(chunk.Keys))
	received := prog.received
	if chunk.Last {
		delete(m.imports, chunk.OpId)
	}
	m.mu.Unlock()

	if !chunk.Last {
		return nil
	}
	if received != chunk.NumTotalItems {
		common.Log().Warn("migration item count mismatch",
			zap.String("opId", chunk.OpId),
			zap.Int64("received", received),
			zap.Int64("expected", chunk.NumTotalItems))
	}
	t.ownership.MarkBlockReady(blockId)
	common.Log().Info("incoming block ready",
		zap.String("opId", chunk.OpId),
		zap.String("tableId", chunk.TableId),
		zap.Int32("blockId", chunk.BlockId),
		zap.Int64("numItems", received))
	return nil
}
