// Coordinator: the control plane. It places blocks on executors at table
// creation, orders block migrations and keeps the authoritative placement of
// every table. Data never flows through it.
package coordinator

import (
	"context"
	"path"
	"sync"

	"github.com/samuel/go-zookeeper/zk"
	"go.uber.org/zap"

	"github.com/zyq11223/harmony/common"
	pb "github.com/zyq11223/harmony/proto"
)

// ExecutorPool resolves executor ids to clients. Production uses
// common.ExecutorDirectory; tests plug in fakes.
type ExecutorPool interface {
	GetExecutorClient(executorId string) (pb.ExecutorClient, error)
	Ids() []string
}

type tableState struct {
	spec   *pb.TableSpec
	owners []string
}

type Server struct {
	pb.UnimplementedCoordinatorServer
	Hostname string
	Port     uint16

	conf *common.CoordinatorConfig
	conn *zk.Conn
	pool ExecutorPool

	rwLock sync.RWMutex
	tables map[string]*tableState

	// migration bookkeeping is confined to the event loop goroutine
	events     chan func()
	migrations map[string]*migration
}

func NewServer(hostname string, port uint16, pool ExecutorPool, conf *common.CoordinatorConfig) *Server {
	if conf == nil {
		conf = common.NewDefaultCoordinatorConfig()
	}
	return &Server{
		Hostname:   hostname,
		Port:       port,
		conf:       conf,
		pool:       pool,
		tables:     make(map[string]*tableState),
		events:     make(chan func(), 256),
		migrations: make(map[string]*migration),
	}
}

func (s *Server) RegisterToZk(conn *zk.Conn) error {
	log := common.Log()
	if err := common.EnsurePathRecursive(conn, common.ZK_EXECUTORS_ROOT); err != nil {
		return err
	}
	distributedId := common.DistributedAtomicInteger{Conn: conn, Path: common.ZK_EXECUTOR_ID}
	if err := distributedId.SetDefault(0); err != nil {
		log.Panic("Failed to initialize global executor id.", zap.Error(err))
	}
	nodePath := path.Join(common.ZK_ROOT, common.ZK_COORDINATOR_NAME)
	data := common.NewCoordinatorNode(s.Hostname, s.Port)
	if _, err := common.ZkCreate(conn, nodePath, data, true); err != nil {
		log.Panic("Failed to register itself to zookeeper.", zap.Error(err))
	}
	s.conn = conn
	return nil
}

// Run drives migration state machines. All transitions happen on this
// goroutine; RPC handlers only post events.
func (s *Server) Run(stopChan <-chan struct{}) {
	log := common.Log()
	log.Info("Starting coordinator event loop.")
	for {
		select {
		case ev := <-s.events:
			ev()
		case <-stopChan:
			log.Info("Stop signal received, exiting event loop...")
			return
		}
	}
}

func (s *Server) post(ev func()) {
	s.events <- ev
}

func okResponse() *pb.GenericResponse {
	return &pb.GenericResponse{Status: pb.Status_OK}
}

func failedResponse(msg string) *pb.GenericResponse {
	return &pb.GenericResponse{Status: pb.Status_EFAILED, ErrMsg: msg}
}

// assignBlocks spreads blocks over the live executors round-robin.
func (s *Server) assignBlocks(numBlocks int) []string {
	ids := s.pool.Ids()
	if len(ids) == 0 {
		return nil
	}
	owners := make([]string, numBlocks)
	for i := 0; i < numBlocks; i++ {
		owners[i] = ids[i%len(ids)]
	}
	return owners
}

// CreateTable places a new table and materializes it on every executor.
func (s *Server) CreateTable(ctx context.Context, req *pb.CreateTableRequest) (*pb.GenericResponse, error) {
	log := common.Log()
	spec := req.Spec
	if spec == nil || spec.TableId == "" || spec.NumBlocks <= 0 {
		return failedResponse("invalid table spec"), nil
	}
	if spec.Ordering == pb.OrderingMode_ORDERED && len(spec.Boundaries) != int(spec.NumBlocks)-1 {
		return failedResponse("ordered table needs numBlocks-1 boundaries"), nil
	}
	owners := req.Owners
	if len(owners) == 0 {
		owners = s.assignBlocks(int(spec.NumBlocks))
		if owners == nil {
			return failedResponse("no executors available"), nil
		}
	} else if len(owners) != int(spec.NumBlocks) {
		return failedResponse("placement does not match block count"), nil
	}

	s.rwLock.Lock()
	if _, ok := s.tables[spec.TableId]; ok {
		s.rwLock.Unlock()
		return failedResponse("table already exists"), nil
	}
	s.tables[spec.TableId] = &tableState{spec: spec, owners: owners}
	s.rwLock.Unlock()

	broadcast := &pb.CreateTableRequest{Spec: spec, Owners: owners}
	for _, id := range s.pool.Ids() {
		client, err := s.pool.GetExecutorClient(id)
		if err == nil {
			_, err = client.CreateTable(ctx, broadcast)
		}
		if err != nil {
			log.Error("failed to create table on executor",
				zap.String("tableId", spec.TableId),
				zap.String("executor", id), zap.Error(err))
			return failedResponse("executor " + id + ": " + err.Error()), nil
		}
	}
	log.Info("table created",
		zap.String("tableId", spec.TableId),
		zap.Int32("numBlocks", spec.NumBlocks))
	return okResponse(), nil
}

// DropTable removes the table everywhere. Executors drop whatever they hold;
// a missing table on an executor is not an error.
func (s *Server) DropTable(ctx context.Context, req *pb.DropTableRequest) (*pb.GenericResponse, error) {
	log := common.Log()
	s.rwLock.Lock()
	_, ok := s.tables[req.TableId]
	delete(s.tables, req.TableId)
	s.rwLock.Unlock()
	if !ok {
		return failedResponse("no such table"), nil
	}
	for _, id := range s.pool.Ids() {
		client, err := s.pool.GetExecutorClient(id)
		if err == nil {
			_, err = client.DropTable(ctx, req)
		}
		if err != nil {
			log.Error("failed to drop table on executor",
				zap.String("tableId", req.TableId),
				zap.String("executor", id), zap.Error(err))
		}
	}
	log.Info("table dropped", zap.String("tableId", req.TableId))
	return okResponse(), nil
}

// Owners returns a copy of the coordinator's placement of a table.
func (s *Server) Owners(tableId string) []string {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()
	t, ok := s.tables[tableId]
	if !ok {
		return nil
	}
	owners := make([]string, len(t.owners))
	copy(owners, t.owners)
	return owners
}
