package coordinator_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"

	"github.com/zyq11223/harmony/coordinator"
	pb "github.com/zyq11223/harmony/proto"
)

// fakeExecutor plays the executor side of the migration protocol: a MoveBlock
// order is acked and followed by the reports a real sender would produce.
type fakeExecutor struct {
	id    string
	coord *coordinator.Server

	mu         sync.Mutex
	created    []*pb.CreateTableRequest
	dropped    []string
	updates    []*pb.OwnershipRequest
	failBlocks map[int32]string
}

func (e *fakeExecutor) Access(_ context.Context, _ *pb.AccessRequest, _ ...grpc.CallOption) (*pb.AccessResponse, error) {
	return &pb.AccessResponse{Status: pb.Status_OK}, nil
}

func (e *fakeExecutor) CreateTable(_ context.Context, req *pb.CreateTableRequest, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	e.mu.Lock()
	e.created = append(e.created, req)
	e.mu.Unlock()
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (e *fakeExecutor) DropTable(_ context.Context, req *pb.DropTableRequest, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	e.mu.Lock()
	e.dropped = append(e.dropped, req.TableId)
	e.mu.Unlock()
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (e *fakeExecutor) MoveBlock(_ context.Context, req *pb.MoveBlockRequest, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	go func() {
		ctx := context.Background()
		e.mu.Lock()
		reason, fails := e.failBlocks[req.BlockId]
		e.mu.Unlock()
		if fails {
			_, _ = e.coord.MigrationFailed(ctx, &pb.MigrationFailedMsg{
				OpId:    req.OpId,
				TableId: req.TableId,
				BlockId: req.BlockId,
				Reason:  reason,
			})
			return
		}
		if !req.OwnershipTogether {
			_, _ = e.coord.OwnershipMoved(ctx, &pb.OwnershipMovedMsg{
				OpId:     req.OpId,
				TableId:  req.TableId,
				BlockId:  req.BlockId,
				Sender:   e.id,
				Receiver: req.Receiver,
			})
		}
		_, _ = e.coord.DataMoved(ctx, &pb.DataMovedMsg{
			OpId:           req.OpId,
			TableId:        req.TableId,
			BlockId:        req.BlockId,
			Sender:         e.id,
			Receiver:       req.Receiver,
			OwnershipMoved: req.OwnershipTogether,
			NumItems:       5,
		})
	}()
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (e *fakeExecutor) TransferOwnership(_ context.Context, _ *pb.OwnershipRequest, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (e *fakeExecutor) UpdateOwnership(_ context.Context, req *pb.OwnershipRequest, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	e.mu.Lock()
	e.updates = append(e.updates, req)
	e.mu.Unlock()
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (e *fakeExecutor) TransferData(_ context.Context, _ *pb.DataChunk, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (e *fakeExecutor) numUpdates() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.updates)
}

type fakeExecPool struct {
	executors map[string]*fakeExecutor
}

func (p *fakeExecPool) GetExecutorClient(executorId string) (pb.ExecutorClient, error) {
	e, ok := p.executors[executorId]
	if !ok {
		return nil, assert.AnError
	}
	return e, nil
}

func (p *fakeExecPool) Ids() []string {
	ids := make([]string, 0, len(p.executors))
	for id := range p.executors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// newTestCoordinator wires a coordinator to fake executors and starts its
// event loop.
func newTestCoordinator(t *testing.T, ids ...string) (*coordinator.Server, *fakeExecPool) {
	pool := &fakeExecPool{executors: make(map[string]*fakeExecutor)}
	s := coordinator.NewServer("localhost", 7899, pool, nil)
	for _, id := range ids {
		pool.executors[id] = &fakeExecutor{
			id:         id,
			coord:      s,
			failBlocks: make(map[int32]string),
		}
	}
	stopChan := make(chan struct{})
	go s.Run(stopChan)
	t.Cleanup(func() { close(stopChan) })
	return s, pool
}

func hashedSpec(tableId string, numBlocks int32) *pb.TableSpec {
	return &pb.TableSpec{
		TableId:   tableId,
		NumBlocks: numBlocks,
		Ordering:  pb.OrderingMode_HASHED,
	}
}

func createTable(t *testing.T, s *coordinator.Server, spec *pb.TableSpec, owners []string) {
	resp, err := s.CreateTable(context.Background(), &pb.CreateTableRequest{Spec: spec, Owners: owners})
	assert.Nil(t, err)
	assert.Equal(t, pb.Status_OK, resp.Status)
}

func TestCoordinatorCreateTable(t *testing.T) {
	ast := assert.New(t)
	s, pool := newTestCoordinator(t, "executor-1", "executor-2")

	// automatic placement spreads blocks round-robin
	resp, err := s.CreateTable(context.Background(), &pb.CreateTableRequest{Spec: hashedSpec("t", 4)})
	ast.Nil(err)
	ast.Equal(pb.Status_OK, resp.Status)
	ast.Equal([]string{"executor-1", "executor-2", "executor-1", "executor-2"}, s.Owners("t"))

	// every executor received the same spec and placement
	for _, e := range pool.executors {
		ast.Len(e.created, 1)
		ast.Equal("t", e.created[0].Spec.TableId)
		ast.Equal(s.Owners("t"), e.created[0].Owners)
	}

	// duplicate ids are rejected
	resp, _ = s.CreateTable(context.Background(), &pb.CreateTableRequest{Spec: hashedSpec("t", 4)})
	ast.Equal(pb.Status_EFAILED, resp.Status)

	// ordered without boundaries is rejected
	resp, _ = s.CreateTable(context.Background(), &pb.CreateTableRequest{Spec: &pb.TableSpec{
		TableId:   "ord",
		NumBlocks: 3,
		Ordering:  pb.OrderingMode_ORDERED,
	}})
	ast.Equal(pb.Status_EFAILED, resp.Status)
}

func TestCoordinatorDropTable(t *testing.T) {
	ast := assert.New(t)
	s, pool := newTestCoordinator(t, "executor-1", "executor-2")
	createTable(t, s, hashedSpec("t", 2), []string{"executor-1", "executor-2"})

	resp, err := s.DropTable(context.Background(), &pb.DropTableRequest{TableId: "t"})
	ast.Nil(err)
	ast.Equal(pb.Status_OK, resp.Status)
	ast.Nil(s.Owners("t"))
	for _, e := range pool.executors {
		ast.Equal([]string{"t"}, e.dropped)
	}

	resp, _ = s.DropTable(context.Background(), &pb.DropTableRequest{TableId: "t"})
	ast.Equal(pb.Status_EFAILED, resp.Status)
}

func TestMoveBlocksCompletes(t *testing.T) {
	ast := assert.New(t)
	s, pool := newTestCoordinator(t, "executor-1", "executor-2", "executor-3")
	createTable(t, s, hashedSpec("t", 4),
		[]string{"executor-1", "executor-1", "executor-1", "executor-1"})

	resp, err := s.MoveBlocks(context.Background(), &pb.MoveBlocksRequest{
		TableId:  "t",
		BlockIds: []int32{0, 2},
		Sender:   "executor-1",
		Receiver: "executor-2",
	})
	ast.Nil(err)
	ast.True(resp.Completed)
	ast.ElementsMatch([]int32{0, 2}, resp.MovedBlockIds)
	ast.Equal([]string{"executor-2", "executor-1", "executor-2", "executor-1"}, s.Owners("t"))

	// the bystander executor hears about both moved blocks
	bystander := pool.executors["executor-3"]
	deadline := time.Now().Add(5 * time.Second)
	for bystander.numUpdates() < 2 {
		if time.Now().After(deadline) {
			t.Fatal("ownership broadcast never reached the bystander")
		}
		time.Sleep(10 * time.Millisecond)
	}
	for _, u := range bystander.updates {
		ast.Equal("executor-1", u.OldOwner)
		ast.Equal("executor-2", u.NewOwner)
	}
}

func TestMoveBlocksImmutableSingleShot(t *testing.T) {
	ast := assert.New(t)
	s, pool := newTestCoordinator(t, "executor-1", "executor-2", "executor-3")
	spec := hashedSpec("frozen", 2)
	spec.Immutable = true
	createTable(t, s, spec, []string{"executor-1", "executor-1"})

	resp, err := s.MoveBlocks(context.Background(), &pb.MoveBlocksRequest{
		TableId:  "frozen",
		BlockIds: []int32{1},
		Sender:   "executor-1",
		Receiver: "executor-2",
	})
	ast.Nil(err)
	ast.True(resp.Completed)
	ast.Equal([]int32{1}, resp.MovedBlockIds)
	ast.Equal([]string{"executor-1", "executor-2"}, s.Owners("frozen"))

	// ownership still reaches the bystander even without a separate report
	bystander := pool.executors["executor-3"]
	deadline := time.Now().Add(5 * time.Second)
	for bystander.numUpdates() < 1 {
		if time.Now().After(deadline) {
			t.Fatal("ownership broadcast never reached the bystander")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestMoveBlocksValidation(t *testing.T) {
	ast := assert.New(t)
	s, _ := newTestCoordinator(t, "executor-1", "executor-2")
	createTable(t, s, hashedSpec("t", 2), []string{"executor-1", "executor-2"})

	// moving within one executor is pointless and rejected outright
	resp, err := s.MoveBlocks(context.Background(), &pb.MoveBlocksRequest{
		TableId:  "t",
		BlockIds: []int32{0},
		Sender:   "executor-1",
		Receiver: "executor-1",
	})
	ast.Nil(err)
	ast.False(resp.Completed)
	ast.Contains(resp.Message, "same executor")

	resp, _ = s.MoveBlocks(context.Background(), &pb.MoveBlocksRequest{
		TableId:  "ghost",
		BlockIds: []int32{0},
		Sender:   "executor-1",
		Receiver: "executor-2",
	})
	ast.False(resp.Completed)
	ast.Contains(resp.Message, "no such table")

	// block 1 belongs to executor-2, not the claimed sender
	resp, _ = s.MoveBlocks(context.Background(), &pb.MoveBlocksRequest{
		TableId:  "t",
		BlockIds: []int32{1},
		Sender:   "executor-1",
		Receiver: "executor-2",
	})
	ast.False(resp.Completed)
	ast.Contains(resp.Message, "owned by")

	resp, _ = s.MoveBlocks(context.Background(), &pb.MoveBlocksRequest{
		TableId:  "t",
		BlockIds: []int32{9},
		Sender:   "executor-1",
		Receiver: "executor-2",
	})
	ast.False(resp.Completed)
	ast.Contains(resp.Message, "out of range")
}

func TestMoveBlocksPartialFailure(t *testing.T) {
	ast := assert.New(t)
	s, pool := newTestCoordinator(t, "executor-1", "executor-2")
	createTable(t, s, hashedSpec("t", 2), []string{"executor-1", "executor-1"})
	pool.executors["executor-1"].failBlocks[1] = "tablet export failed"

	resp, err := s.MoveBlocks(context.Background(), &pb.MoveBlocksRequest{
		TableId:  "t",
		BlockIds: []int32{0, 1},
		Sender:   "executor-1",
		Receiver: "executor-2",
	})
	ast.Nil(err)
	ast.False(resp.Completed)
	ast.Equal([]int32{0}, resp.MovedBlockIds)
	ast.Contains(resp.Message, "tablet export failed")
	// the surviving block's placement was still updated
	ast.Equal([]string{"executor-2", "executor-1"}, s.Owners("t"))
}

func TestMoveRange(t *testing.T) {
	ast := assert.New(t)
	s, _ := newTestCoordinator(t, "executor-1", "executor-2")
	spec := &pb.TableSpec{
		TableId:    "ord",
		NumBlocks:  3,
		Ordering:   pb.OrderingMode_ORDERED,
		Boundaries: [][]byte{[]byte("g"), []byte("p")},
	}
	createTable(t, s, spec, []string{"executor-1", "executor-1", "executor-1"})

	// [a, h) touches block 0 ([..g)) and block 1 ([g..p))
	resp, err := s.MoveRange(context.Background(), &pb.MoveRangeRequest{
		TableId:  "ord",
		KeyFrom:  []byte("a"),
		KeyTo:    []byte("h"),
		Sender:   "executor-1",
		Receiver: "executor-2",
	})
	ast.Nil(err)
	ast.True(resp.Completed)
	ast.ElementsMatch([]int32{0, 1}, resp.MovedBlockIds)
	ast.Equal([]string{"executor-2", "executor-2", "executor-1"}, s.Owners("ord"))

	// [q, z) touches only the last block
	resp, err = s.MoveRange(context.Background(), &pb.MoveRangeRequest{
		TableId:  "ord",
		KeyFrom:  []byte("q"),
		KeyTo:    []byte("z"),
		Sender:   "executor-1",
		Receiver: "executor-2",
	})
	ast.Nil(err)
	ast.True(resp.Completed)
	ast.Equal([]int32{2}, resp.MovedBlockIds)
}

func TestMoveRangeRejectsHashedTable(t *testing.T) {
	ast := assert.New(t)
	s, _ := newTestCoordinator(t, "executor-1", "executor-2")
	createTable(t, s, hashedSpec("t", 2), []string{"executor-1", "executor-2"})

	resp, err := s.MoveRange(context.Background(), &pb.MoveRangeRequest{
		TableId:  "t",
		KeyFrom:  []byte("a"),
		KeyTo:    []byte("z"),
		Sender:   "executor-1",
		Receiver: "executor-2",
	})
	ast.Nil(err)
	ast.False(resp.Completed)
	ast.Contains(resp.Message, "ordered")
}
