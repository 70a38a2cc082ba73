// Migration control. Every block in a move order walks its own state
// machine; the whole order completes when each of its blocks reaches DONE or
// FAILED. Executors report progress through OwnershipMoved, DataMoved and
// MigrationFailed, all funneled into the event loop.
package coordinator

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zyq11223/harmony/common"
	pb "github.com/zyq11223/harmony/proto"
)

type moveState int

const (
	MOVE_INIT moveState = iota
	MOVE_OWNERSHIP_SENT
	MOVE_OWNERSHIP_ACKED
	MOVE_OWNERSHIP_MOVED
	MOVE_DATA_SENT
	MOVE_DATA_ACKED
	MOVE_DONE
	MOVE_FAILED
)

func (s moveState) String() string {
	switch s {
	case MOVE_INIT:
		return "INIT"
	case MOVE_OWNERSHIP_SENT:
		return "OWNERSHIP_SENT"
	case MOVE_OWNERSHIP_ACKED:
		return "OWNERSHIP_ACKED"
	case MOVE_OWNERSHIP_MOVED:
		return "OWNERSHIP_MOVED"
	case MOVE_DATA_SENT:
		return "DATA_SENT"
	case MOVE_DATA_ACKED:
		return "DATA_ACKED"
	case MOVE_DONE:
		return "DONE"
	case MOVE_FAILED:
		return "FAILED"
	default:
		return fmt.Sprintf("moveState(%d)", int(s))
	}
}

type blockMove struct {
	opId    string
	blockId int32
	state   moveState
	reason  string
}

type migration struct {
	id        string
	tableId   string
	sender    string
	receiver  string
	moves     map[string]*blockMove
	remaining int
	moved     []int32
	failures  []string
	done      chan struct{}
}

func (m *migration) response() *pb.MoveBlocksResponse {
	resp := &pb.MoveBlocksResponse{
		Completed:     len(m.failures) == 0,
		MovedBlockIds: m.moved,
	}
	if len(m.failures) > 0 {
		resp.Message = strings.Join(m.failures, "; ")
	}
	return resp
}

func moveOpId(migId string, blockId int32) string {
	return fmt.Sprintf("%s/%d", migId, blockId)
}

// splitOpId recovers the migration id from a per-block op id.
func splitOpId(opId string) (migId string, ok bool) {
	idx := strings.LastIndex(opId, "/")
	if idx < 0 {
		return "", false
	}
	return opId[:idx], true
}

// MoveBlocks orders a set of blocks from one executor to another and blocks
// until every one finishes or fails.
func (s *Server) MoveBlocks(ctx context.Context, req *pb.MoveBlocksRequest) (*pb.MoveBlocksResponse, error) {
	return s.runMigration(ctx, req.TableId, req.BlockIds, req.Sender, req.Receiver, false)
}

// MoveRange translates a key range into the blocks intersecting it and moves
// those. Ordered tables only.
func (s *Server) MoveRange(ctx context.Context, req *pb.MoveRangeRequest) (*pb.MoveBlocksResponse, error) {
	s.rwLock.RLock()
	t, ok := s.tables[req.TableId]
	s.rwLock.RUnlock()
	if !ok {
		return &pb.MoveBlocksResponse{Message: "no such table"}, nil
	}
	if t.spec.Ordering != pb.OrderingMode_ORDERED {
		return &pb.MoveBlocksResponse{Message: "range moves need an ordered table"}, nil
	}
	blockIds := blocksInRange(t.spec, req.KeyFrom, req.KeyTo)
	if len(blockIds) == 0 {
		return &pb.MoveBlocksResponse{Message: common.ErrNoMovableData.Error()}, nil
	}
	return s.runMigration(ctx, req.TableId, blockIds, req.Sender, req.Receiver, true)
}

// blocksInRange picks the blocks whose key interval intersects [from, to).
// Block i spans [boundaries[i-1], boundaries[i]), open at the table edges.
func blocksInRange(spec *pb.TableSpec, from, to []byte) []int32 {
	var ids []int32
	for i := int32(0); i < spec.NumBlocks; i++ {
		if i > 0 && len(to) > 0 && bytes.Compare(to, spec.Boundaries[i-1]) <= 0 {
			continue
		}
		if int(i) < len(spec.Boundaries) && len(from) > 0 &&
			bytes.Compare(from, spec.Boundaries[i]) >= 0 {
			continue
		}
		ids = append(ids, i)
	}
	return ids
}

func (s *Server) runMigration(ctx context.Context, tableId string, blockIds []int32,
	sender, receiver string, rangeBased bool) (*pb.MoveBlocksResponse, error) {

	log := common.Log()
	if sender == receiver {
		return &pb.MoveBlocksResponse{
			Message: "sender and receiver are the same executor",
		}, nil
	}
	if len(blockIds) == 0 {
		return &pb.MoveBlocksResponse{Message: "no blocks to move"}, nil
	}

	var immutable bool
	s.rwLock.RLock()
	t, ok := s.tables[tableId]
	if ok {
		immutable = t.spec.Immutable
		for _, blockId := range blockIds {
			if int(blockId) < 0 || int(blockId) >= len(t.owners) {
				s.rwLock.RUnlock()
				return &pb.MoveBlocksResponse{
					Message: fmt.Sprintf("block %d out of range", blockId),
				}, nil
			}
			if owner := t.owners[blockId]; owner != sender {
				s.rwLock.RUnlock()
				return &pb.MoveBlocksResponse{
					Message: fmt.Sprintf("block %d is owned by %s, not %s", blockId, owner, sender),
				}, nil
			}
		}
	}
	s.rwLock.RUnlock()
	if !ok {
		return &pb.MoveBlocksResponse{Message: "no such table"}, nil
	}

	mig := &migration{
		id:        uuid.New().String(),
		tableId:   tableId,
		sender:    sender,
		receiver:  receiver,
		moves:     make(map[string]*blockMove),
		remaining: len(blockIds),
		done:      make(chan struct{}),
	}
	for _, blockId := range blockIds {
		opId := moveOpId(mig.id, blockId)
		mig.moves[opId] = &blockMove{opId: opId, blockId: blockId}
	}
	log.Info("migration started",
		zap.String("migId", mig.id),
		zap.String("tableId", tableId),
		zap.String("sender", sender),
		zap.String("receiver", receiver),
		zap.Int("numBlocks", len(blockIds)))

	s.post(func() {
		s.migrations[mig.id] = mig
		for _, move := range mig.moves {
			move.state = MOVE_OWNERSHIP_SENT
			go s.sendMoveOrder(mig, move, rangeBased, immutable)
		}
	})

	select {
	case <-mig.done:
		resp := mig.response()
		log.Info("migration finished",
			zap.String("migId", mig.id),
			zap.Bool("completed", resp.Completed),
			zap.Int32s("moved", resp.MovedBlockIds),
			zap.String("message", resp.Message))
		return resp, nil
	case <-ctx.Done():
		// the state machines keep running; the caller just stops waiting
		log.Warn("migration wait aborted", zap.String("migId", mig.id), zap.Error(ctx.Err()))
		return &pb.MoveBlocksResponse{
			Completed: false,
			Message:   "wait aborted: " + ctx.Err().Error(),
		}, nil
	}
}

// sendMoveOrder hands one block's move order to the sender executor. Runs off
// the event loop; the outcome is posted back in.
func (s *Server) sendMoveOrder(mig *migration, move *blockMove, rangeBased, ownershipTogether bool) {
	req := &pb.MoveBlockRequest{
		OpId:       move.opId,
		TableId:    mig.tableId,
		BlockId:    move.blockId,
		Receiver:   mig.receiver,
		RangeBased: rangeBased,
		// immutable tables take the single-shot path: no OwnershipMoved
		// report, everything acked through DataMoved
		OwnershipTogether: ownershipTogether,
	}
	client, err := s.pool.GetExecutorClient(mig.sender)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), common.DEFAULT_REMOTE_OP_TIMEOUT)
		var resp *pb.GenericResponse
		resp, err = client.MoveBlock(ctx, req)
		cancel()
		if err == nil && resp.Status != pb.Status_OK {
			err = fmt.Errorf("%s", resp.ErrMsg)
		}
	}
	s.post(func() {
		if err != nil {
			s.failMove(mig, move, err.Error())
			return
		}
		s.transition(move, MOVE_OWNERSHIP_SENT, MOVE_OWNERSHIP_ACKED)
	})
}

// OwnershipMoved is reported by the sender once the receiver holds the block.
func (s *Server) OwnershipMoved(_ context.Context, msg *pb.OwnershipMovedMsg) (*pb.GenericResponse, error) {
	s.post(func() { s.handleOwnershipMoved(msg.OpId, msg.TableId, msg.BlockId) })
	return okResponse(), nil
}

// DataMoved is reported by the sender once the last chunk is acked.
func (s *Server) DataMoved(_ context.Context, msg *pb.DataMovedMsg) (*pb.GenericResponse, error) {
	s.post(func() { s.handleDataMoved(msg) })
	return okResponse(), nil
}

func (s *Server) MigrationFailed(_ context.Context, msg *pb.MigrationFailedMsg) (*pb.GenericResponse, error) {
	s.post(func() { s.handleMigrationFailed(msg) })
	return okResponse(), nil
}

func (s *Server) lookupMove(opId string) (*migration, *blockMove) {
	migId, ok := splitOpId(opId)
	if !ok {
		return nil, nil
	}
	mig, ok := s.migrations[migId]
	if !ok {
		return nil, nil
	}
	return mig, mig.moves[opId]
}

func (s *Server) transition(move *blockMove, expect, next moveState) {
	if move.state == MOVE_FAILED || move.state == MOVE_DONE {
		return
	}
	if move.state != expect {
		common.Log().Warn("unexpected move state",
			zap.String("opId", move.opId),
			zap.String("have", move.state.String()),
			zap.String("expect", expect.String()),
			zap.String("next", next.String()))
	}
	move.state = next
}

func (s *Server) handleOwnershipMoved(opId, tableId string, blockId int32) {
	mig, move := s.lookupMove(opId)
	if move == nil {
		common.Log().Warn("ownership report for unknown move", zap.String("opId", opId))
		return
	}
	if move.state == MOVE_DONE || move.state == MOVE_FAILED {
		return
	}
	s.transition(move, MOVE_OWNERSHIP_ACKED, MOVE_OWNERSHIP_MOVED)
	s.applyOwnership(mig, tableId, blockId)
	// the sender starts shipping data right after reporting
	s.transition(move, MOVE_OWNERSHIP_MOVED, MOVE_DATA_SENT)
}

func (s *Server) handleDataMoved(msg *pb.DataMovedMsg) {
	mig, move := s.lookupMove(msg.OpId)
	if move == nil {
		common.Log().Warn("data report for unknown move", zap.String("opId", msg.OpId))
		return
	}
	if move.state == MOVE_DONE || move.state == MOVE_FAILED {
		return
	}
	if msg.OwnershipMoved {
		// single-shot move, ownership and data acked together
		s.applyOwnership(mig, msg.TableId, msg.BlockId)
		s.transition(move, MOVE_OWNERSHIP_ACKED, MOVE_DATA_SENT)
	}
	s.transition(move, MOVE_DATA_SENT, MOVE_DATA_ACKED)
	s.transition(move, MOVE_DATA_ACKED, MOVE_DONE)
	mig.moved = append(mig.moved, move.blockId)
	s.finishMove(mig)
}

func (s *Server) handleMigrationFailed(msg *pb.MigrationFailedMsg) {
	mig, move := s.lookupMove(msg.OpId)
	if move == nil {
		common.Log().Warn("failure report for unknown move", zap.String("opId", msg.OpId))
		return
	}
	s.failMove(mig, move, msg.Reason)
}

func (s *Server) failMove(mig *migration, move *blockMove, reason string) {
	if move.state == MOVE_DONE || move.state == MOVE_FAILED {
		return
	}
	common.Log().Error("block move failed",
		zap.String("opId", move.opId),
		zap.String("state", move.state.String()),
		zap.String("reason", reason))
	move.state = MOVE_FAILED
	move.reason = reason
	mig.failures = append(mig.failures,
		fmt.Sprintf("block %d: %s", move.blockId, reason))
	s.finishMove(mig)
}

func (s *Server) finishMove(mig *migration) {
	mig.remaining--
	if mig.remaining > 0 {
		return
	}
	delete(s.migrations, mig.id)
	close(mig.done)
}

// applyOwnership records the new placement and tells every bystander
// executor. Sender and receiver already know.
func (s *Server) applyOwnership(mig *migration, tableId string, blockId int32) {
	s.rwLock.Lock()
	if t, ok := s.tables[tableId]; ok && int(blockId) < len(t.owners) {
		t.owners[blockId] = mig.receiver
	}
	s.rwLock.Unlock()

	update := &pb.OwnershipRequest{
		OpId:     moveOpId(mig.id, blockId),
		TableId:  tableId,
		BlockId:  blockId,
		OldOwner: mig.sender,
		NewOwner: mig.receiver,
	}
	for _, id := range s.pool.Ids() {
		if id == mig.sender || id == mig.receiver {
			continue
		}
		go s.broadcastOwnership(id, update)
	}
}

func (s *Server) broadcastOwnership(executorId string, update *pb.OwnershipRequest) {
	client, err := s.pool.GetExecutorClient(executorId)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), common.DEFAULT_REMOTE_OP_TIMEOUT)
		defer cancel()
		_, err = client.UpdateOwnership(ctx, update)
	}
	if err != nil {
		common.Log().Error("ownership broadcast failed",
			zap.String("executor", executorId),
			zap.String("opId", update.OpId),
			zap.Error(err))
	}
}
