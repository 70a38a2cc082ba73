// Executor: the data plane. It serves table operations over gRPC, holds the
// blocks placed on it and carries out migration orders from the coordinator.
package executor

import (
	"context"
	"fmt"
	"path"

	"github.com/samuel/go-zookeeper/zk"
	"google.golang.org/grpc"

	"github.com/zyq11223/harmony/common"
	pb "github.com/zyq11223/harmony/proto"
	"github.com/zyq11223/harmony/table"
)

type Server struct {
	pb.UnimplementedExecutorServer
	Hostname string
	Port     uint16
	Id       string

	conn    *zk.Conn
	manager *table.Manager
}

func NewServer(hostname string, port uint16, id string, manager *table.Manager) *Server {
	return &Server{
		Hostname: hostname,
		Port:     port,
		Id:       id,
		manager:  manager,
	}
}

func (s *Server) Manager() *table.Manager {
	return s.manager
}

// AllocateExecutorId draws the next id from the shared zookeeper counter.
// Ids survive restarts only through the data dir; a fresh process gets a
// fresh id.
func AllocateExecutorId(conn *zk.Conn) (string, error) {
	distributedId := common.DistributedAtomicInteger{Conn: conn, Path: common.ZK_EXECUTOR_ID}
	if err := distributedId.SetDefault(0); err != nil {
		return "", err
	}
	v, err := distributedId.Inc()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("executor-%d", v), nil
}

func (s *Server) RegisterToZk(conn *zk.Conn) error {
	if err := common.EnsurePathRecursive(conn, common.ZK_EXECUTORS_ROOT); err != nil {
		return err
	}
	node := common.NewExecutorNode(s.Id, s.Hostname, s.Port)
	nodePath := path.Join(common.ZK_EXECUTORS_ROOT, s.Id)
	if _, err := common.ZkCreate(conn, nodePath, node, true); err != nil {
		return err
	}
	s.conn = conn
	return nil
}

// ConnectToCoordinator resolves the coordinator's znode and dials it.
func ConnectToCoordinator(conn *zk.Conn) (pb.CoordinatorClient, error) {
	var node common.CoordinatorNode
	nodePath := path.Join(common.ZK_ROOT, common.ZK_COORDINATOR_NAME)
	if err := common.ZkGet(conn, nodePath, &node); err != nil {
		return nil, err
	}
	cc, err := grpc.Dial(common.NodeAddr(node.Host), grpc.WithInsecure())
	if err != nil {
		return nil, err
	}
	return pb.NewCoordinatorClient(cc), nil
}

// gRPC handlers

func (s *Server) Access(_ context.Context, req *pb.AccessRequest) (*pb.AccessResponse, error) {
	return s.manager.HandleAccess(req), nil
}

func (s *Server) CreateTable(_ context.Context, req *pb.CreateTableRequest) (*pb.GenericResponse, error) {
	if req.Spec == nil {
		return &pb.GenericResponse{Status: pb.Status_EFAILED, ErrMsg: "missing table spec"}, nil
	}
	if err := s.manager.CreateTable(req.Spec, req.Owners); err != nil {
		return &pb.GenericResponse{Status: pb.Status_EFAILED, ErrMsg: err.Error()}, nil
	}
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (s *Server) DropTable(_ context.Context, req *pb.DropTableRequest) (*pb.GenericResponse, error) {
	s.manager.DropTable(req.TableId)
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (s *Server) MoveBlock(_ context.Context, req *pb.MoveBlockRequest) (*pb.GenericResponse, error) {
	if err := s.manager.StartBlockMove(req); err != nil {
		return &pb.GenericResponse{Status: pb.Status_EFAILED, ErrMsg: err.Error()}, nil
	}
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (s *Server) TransferOwnership(_ context.Context, req *pb.OwnershipRequest) (*pb.GenericResponse, error) {
	if err := s.manager.HandleTransferOwnership(req); err != nil {
		return &pb.GenericResponse{Status: pb.Status_EFAILED, ErrMsg: err.Error()}, nil
	}
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (s *Server) UpdateOwnership(_ context.Context, req *pb.OwnershipRequest) (*pb.GenericResponse, error) {
	if err := s.manager.HandleUpdateOwnership(req); err != nil {
		return &pb.GenericResponse{Status: pb.Status_EFAILED, ErrMsg: err.Error()}, nil
	}
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}

func (s *Server) TransferData(_ context.Context, chunk *pb.DataChunk) (*pb.GenericResponse, error) {
	if err := s.manager.HandleTransferData(chunk); err != nil {
		return &pb.GenericResponse{Status: pb.Status_EFAILED, ErrMsg: err.Error()}, nil
	}
	return &pb.GenericResponse{Status: pb.Status_OK}, nil
}
