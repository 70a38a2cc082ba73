package table_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"

	"github.com/zyq11223/harmony/common"
	pb "github.com/zyq11223/harmony/proto"
	"github.com/zyq11223/harmony/table"
)

// fakeCoordClient records migration reports and signals when one lands.
type fakeCoordClient struct {
	mu             sync.Mutex
	ownershipMoved []*pb.OwnershipMovedMsg
	dataMoved      []*pb.DataMovedMsg
	failed         []*pb.MigrationFailedMsg
	reported       chan struct{}
}

func newFakeCoordClient() *fakeCoordClient {
	return &fakeCoordClient{reported: make(chan struct{}, 16)}
}

func (c *fakeCoordClient) CreateTable(_ context.Context, _ *pb.CreateTableRequest, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (c *fakeCoordClient) DropTable(_ context.Context, _ *pb.DropTableRequest, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (c *fakeCoordClient) MoveBlocks(_ context.Context, _ *pb.MoveBlocksRequest, _ ...grpc.CallOption) (*pb.MoveBlocksResponse, error) {
	return &pb.MoveBlocksResponse{}, nil
}

func (c *fakeCoordClient) MoveRange(_ context.Context, _ *pb.MoveRangeRequest, _ ...grpc.CallOption) (*pb.MoveBlocksResponse, error) {
	return &pb.MoveBlocksResponse{}, nil
}

func (c *fakeCoordClient) OwnershipMoved(_ context.Context, msg *pb.OwnershipMovedMsg, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	c.mu.Lock()
	c.ownershipMoved = append(c.ownershipMoved, msg)
	c.mu.Unlock()
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (c *fakeCoordClient) DataMoved(_ context.Context, msg *pb.DataMovedMsg, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	c.mu.Lock()
	c.dataMoved = append(c.dataMoved, msg)
	c.mu.Unlock()
	c.reported <- struct{}{}
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (c *fakeCoordClient) MigrationFailed(_ context.Context, msg *pb.MigrationFailedMsg, _ ...grpc.CallOption) (*pb.GenericResponse, error) {
	c.mu.Lock()
	c.failed = append(c.failed, msg)
	c.mu.Unlock()
	c.reported <- struct{}{}
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (c *fakeCoordClient) waitReport(t *testing.T) {
	select {
	case <-c.reported:
	case <-time.After(waitFor):
		t.Fatal("no migration report arrived")
	}
}

func TestBlockMigrationMovesDataAndOwnership(t *testing.T) {
	ast := assert.New(t)
	c := newFakeCluster(testConf(), "executor-1", "executor-2")
	owners := []string{"executor-1", "executor-1", "executor-2", "executor-2"}
	c.createTable(t, hashedSpec("t", 4), owners)
	m1 := c.managers["executor-1"]
	m2 := c.managers["executor-2"]
	coord := newFakeCoordClient()
	m1.SetCoordinatorClient(coord)

	t1, _ := m1.GetTable("t")
	t2, _ := m2.GetTable("t")
	for i := 0; i < 200; i++ {
		_, _, err := t1.Put([]byte(fmt.Sprintf("key-%d", i)), []byte(fmt.Sprintf("value-%d", i))).Get(waitFor)
		ast.Nil(err)
	}
	movedItems := t1.Tablet().NumItems(0)
	ast.Greater(movedItems, 0)

	ast.Nil(m1.StartBlockMove(&pb.MoveBlockRequest{
		OpId:     "mig-1/0",
		TableId:  "t",
		BlockId:  0,
		Receiver: "executor-2",
	}))
	coord.waitReport(t)

	// sender: data purged, routing flipped
	ast.False(t1.Tablet().HasBlock(0))
	ast.Equal("executor-2", t1.Ownership().Owner(0))
	// receiver: data resident and gate open
	ast.True(t2.Tablet().HasBlock(0))
	ast.Equal(movedItems, t2.Tablet().NumItems(0))
	ast.Equal("", t2.Ownership().Owner(0))

	// the full two-phase handshake was reported
	ast.Len(coord.ownershipMoved, 1)
	ast.Len(coord.dataMoved, 1)
	ast.Equal(int64(movedItems), coord.dataMoved[0].NumItems)
	ast.False(coord.dataMoved[0].OwnershipMoved)
	ast.Empty(coord.failed)

	// no mutation lost: every key still resolves from both sides
	for i := 0; i < 200; i++ {
		key := []byte(fmt.Sprintf("key-%d", i))
		want := []byte(fmt.Sprintf("value-%d", i))
		v, ok, err := t1.Get(key, false).Get(waitFor)
		ast.Nil(err)
		ast.True(ok)
		ast.Equal(want, v)
		v, ok, err = t2.Get(key, false).Get(waitFor)
		ast.Nil(err)
		ast.True(ok)
		ast.Equal(want, v)
	}

	// writes issued at the old owner land at the new one
	key := keyInBlock(4, 0)
	_, _, err := t1.Put(key, []byte("after-move")).Get(waitFor)
	ast.Nil(err)
	v, ok, err := t2.Tablet().Get(0, key, false)
	ast.Nil(err)
	ast.True(ok)
	ast.Equal([]byte("after-move"), v)
}

// gatedExecutorClient stalls TransferData until released, holding a block
// move mid-transfer so tests can interleave table operations with it.
type gatedExecutorClient struct {
	pb.ExecutorClient
	transferring sync.Once
	inFlight     chan struct{}
	release      chan struct{}
}

func (g *gatedExecutorClient) TransferData(ctx context.Context, chunk *pb.DataChunk, opts ...grpc.CallOption) (*pb.GenericResponse, error) {
	g.transferring.Do(func() { close(g.inFlight) })
	<-g.release
	return g.ExecutorClient.TransferData(ctx, chunk, opts...)
}

type gatedPool struct {
	inner  fakePool
	target string
	gate   *gatedExecutorClient
}

func (p gatedPool) GetExecutorClient(executorId string) (pb.ExecutorClient, error) {
	client, err := p.inner.GetExecutorClient(executorId)
	if err != nil || executorId != p.target {
		return client, err
	}
	return p.gate, nil
}

func TestWritesDuringMigrationLandAtReceiver(t *testing.T) {
	ast := assert.New(t)
	conf := testConf()
	conf.MigrationChunkSize = 8 // force several chunks
	c := newFakeCluster(conf, "executor-2")
	gate := &gatedExecutorClient{
		ExecutorClient: fakeExecutorClient{c.managers["executor-2"]},
		inFlight:       make(chan struct{}),
		release:        make(chan struct{}),
	}
	m1 := table.NewManager("executor-1",
		gatedPool{inner: fakePool{c}, target: "executor-2", gate: gate}, conf)
	c.managers["executor-1"] = m1
	coord := newFakeCoordClient()
	m1.SetCoordinatorClient(coord)
	c.createTable(t, hashedSpec("t", 2), []string{"executor-1", "executor-2"})

	t1, _ := m1.GetTable("t")
	p := common.NewHashPartitioner(2)
	var existing []byte
	numLoaded := 0
	for i := 0; numLoaded < 30; i++ {
		key := []byte(fmt.Sprintf("mid-key-%d", i))
		if p.BlockId(key) != 0 {
			continue
		}
		_, _, err := t1.Put(key, []byte("before-move")).Get(waitFor)
		ast.Nil(err)
		existing = key
		numLoaded++
	}

	ast.Nil(m1.StartBlockMove(&pb.MoveBlockRequest{
		OpId:     "mig-8/0",
		TableId:  "t",
		BlockId:  0,
		Receiver: "executor-2",
	}))
	select {
	case <-gate.inFlight:
	case <-time.After(waitFor):
		t.Fatal("data transfer never started")
	}

	// the snapshot is frozen and the chunks are stalled; writes issued now
	// must forward to the receiver and wait on its ready gate
	fresh := keyInBlock(2, 0)
	overwrite := t1.Put(existing, []byte("during-move"))
	insert := t1.Put(fresh, []byte("also-during-move"))

	close(gate.release)
	coord.waitReport(t)
	ast.Empty(coord.failed)

	// both writes resolved against the imported snapshot, not the stale copy
	old, existed, err := overwrite.Get(waitFor)
	ast.Nil(err)
	ast.True(existed)
	ast.Equal([]byte("before-move"), old)
	_, existed, err = insert.Get(waitFor)
	ast.Nil(err)
	ast.False(existed)

	// nothing lost: snapshot and mid-move writes all live at the receiver
	t2, _ := c.managers["executor-2"].GetTable("t")
	ast.Equal(numLoaded+1, t2.Tablet().NumItems(0))
	v, ok, err := t2.Tablet().Get(0, existing, false)
	ast.Nil(err)
	ast.True(ok)
	ast.Equal([]byte("during-move"), v)
	v, ok, err = t2.Tablet().Get(0, fresh, false)
	ast.Nil(err)
	ast.True(ok)
	ast.Equal([]byte("also-during-move"), v)
	ast.False(t1.Tablet().HasBlock(0))
}

func TestBlockMigrationEmptyBlock(t *testing.T) {
	ast := assert.New(t)
	c := newFakeCluster(testConf(), "executor-1", "executor-2")
	c.createTable(t, hashedSpec("t", 2), []string{"executor-1", "executor-2"})
	m1 := c.managers["executor-1"]
	coord := newFakeCoordClient()
	m1.SetCoordinatorClient(coord)

	ast.Nil(m1.StartBlockMove(&pb.MoveBlockRequest{
		OpId:     "mig-2/0",
		TableId:  "t",
		BlockId:  0,
		Receiver: "executor-2",
	}))
	coord.waitReport(t)

	ast.Empty(coord.failed)
	ast.Len(coord.dataMoved, 1)
	ast.Equal(int64(0), coord.dataMoved[0].NumItems)

	// the receiver's gate opened even though no items arrived
	t2, _ := c.managers["executor-2"].GetTable("t")
	key := keyInBlock(2, 0)
	_, ok, err := t2.Get(key, false).Get(waitFor)
	ast.Nil(err)
	ast.False(ok)
}

func TestRangeBasedMoveRefusesEmptyBlock(t *testing.T) {
	ast := assert.New(t)
	c := newFakeCluster(testConf(), "executor-1", "executor-2")
	c.createTable(t, hashedSpec("t", 2), []string{"executor-1", "executor-2"})
	m1 := c.managers["executor-1"]
	coord := newFakeCoordClient()
	m1.SetCoordinatorClient(coord)

	ast.Nil(m1.StartBlockMove(&pb.MoveBlockRequest{
		OpId:       "mig-3/0",
		TableId:    "t",
		BlockId:    0,
		Receiver:   "executor-2",
		RangeBased: true,
	}))
	coord.waitReport(t)

	ast.Len(coord.failed, 1)
	ast.Contains(coord.failed[0].Reason, "no movable data")
	ast.Empty(coord.dataMoved)

	// nothing changed hands
	t1, _ := m1.GetTable("t")
	ast.Equal("", t1.Ownership().Owner(0))
	ast.True(t1.Tablet().HasBlock(0))
}

func TestBlockMoveRejectedForNonOwnedBlock(t *testing.T) {
	ast := assert.New(t)
	c := newFakeCluster(testConf(), "executor-1", "executor-2")
	c.createTable(t, hashedSpec("t", 2), []string{"executor-1", "executor-2"})
	m1 := c.managers["executor-1"]

	err := m1.StartBlockMove(&pb.MoveBlockRequest{
		OpId:     "mig-4/1",
		TableId:  "t",
		BlockId:  1, // owned by executor-2
		Receiver: "executor-2",
	})
	ast.NotNil(err)
	ast.Equal(common.ErrBlockNotOwned, errors.Cause(err))

	err = m1.StartBlockMove(&pb.MoveBlockRequest{
		OpId:     "mig-5/0",
		TableId:  "ghost",
		BlockId:  0,
		Receiver: "executor-2",
	})
	ast.Equal(common.ErrTableNotFound, errors.Cause(err))
}

func TestOwnershipBroadcastReachesBystander(t *testing.T) {
	ast := assert.New(t)
	c := newFakeCluster(testConf(), "executor-1", "executor-2", "executor-3")
	owners := []string{"executor-1", "executor-2", "executor-3"}
	c.createTable(t, hashedSpec("t", 3), owners)
	m1 := c.managers["executor-1"]
	m3 := c.managers["executor-3"]
	coord := newFakeCoordClient()
	m1.SetCoordinatorClient(coord)

	ast.Nil(m1.StartBlockMove(&pb.MoveBlockRequest{
		OpId:     "mig-6/0",
		TableId:  "t",
		BlockId:  0,
		Receiver: "executor-2",
	}))
	coord.waitReport(t)

	// what the coordinator would broadcast to the bystander
	ast.Nil(m3.HandleUpdateOwnership(&pb.OwnershipRequest{
		OpId:     "mig-6/0",
		TableId:  "t",
		BlockId:  0,
		OldOwner: "executor-1",
		NewOwner: "executor-2",
	}))
	t3, _ := m3.GetTable("t")
	ast.Equal("executor-2", t3.Ownership().Owner(0))

	// the bystander now routes straight to the new owner
	key := keyInBlock(3, 0)
	_, _, err := t3.Put(key, []byte("via-bystander")).Get(waitFor)
	ast.Nil(err)
	t2, _ := c.managers["executor-2"].GetTable("t")
	v, ok, err := t2.Tablet().Get(0, key, false)
	ast.Nil(err)
	ast.True(ok)
	ast.Equal([]byte("via-bystander"), v)
}

func TestMigrationChunking(t *testing.T) {
	ast := assert.New(t)
	conf := testConf()
	conf.MigrationChunkSize = 7 // force several chunks
	c := newFakeCluster(conf, "executor-1", "executor-2")
	c.createTable(t, hashedSpec("t", 2), []string{"executor-1", "executor-2"})
	m1 := c.managers["executor-1"]
	coord := newFakeCoordClient()
	m1.SetCoordinatorClient(coord)

	t1, _ := m1.GetTable("t")
	p := common.NewHashPartitioner(2)
	want := make(map[string]string)
	for i := 0; len(want) < 40; i++ {
		key := fmt.Sprintf("chunk-key-%d", i)
		if p.BlockId([]byte(key)) != 0 {
			continue
		}
		_, _, err := t1.Put([]byte(key), []byte(fmt.Sprintf("v-%d", i))).Get(waitFor)
		ast.Nil(err)
		want[key] = fmt.Sprintf("v-%d", i)
	}

	ast.Nil(m1.StartBlockMove(&pb.MoveBlockRequest{
		OpId:     "mig-7/0",
		TableId:  "t",
		BlockId:  0,
		Receiver: "executor-2",
	}))
	coord.waitReport(t)

	ast.Empty(coord.failed)
	t2, _ := c.managers["executor-2"].GetTable("t")
	ast.Equal(40, t2.Tablet().NumItems(0))
	for k, v := range want {
		got, ok, err := t2.Tablet().Get(0, []byte(k), false)
		ast.Nil(err)
		ast.True(ok)
		ast.Equal([]byte(v), got)
	}
}
