// Executor for the distributed table service.
// It is the data node: it holds the blocks placed on it, serves table
// operations and carries out migration orders from the coordinator.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samuel/go-zookeeper/zk"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/zyq11223/harmony/common"
	"github.com/zyq11223/harmony/executor"
	pb "github.com/zyq11223/harmony/proto"
	"github.com/zyq11223/harmony/table"
)

var (
	hostname  = flag.String("hostname", "", "The server's hostname")
	port      = flag.Int("port", 7900, "The server port")
	dataDir   = flag.String("data-dir", "", "Path for table checkpoints")
	zkServers = flag.String("zk-servers", "localhost:2181",
		"Zookeeper server cluster, separated by space")
	configFile = flag.String("config", "", "Optional toml config file")
)

var (
	conn     *zk.Conn
	server   *grpc.Server
	manager  *table.Manager
	stopChan = make(chan struct{})
	log      *zap.Logger
)

// handle ctrl-c gracefully
func setupCloseHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		log.Info("Ctrl-C captured.")
		close(stopChan)
		if server != nil {
			log.Info("Gracefully stopping gRPC server...")
			server.GracefulStop()
		}
		if manager != nil {
			log.Info("Checkpointing resident tables...")
			manager.CheckpointAll()
		}
		if conn != nil {
			log.Info("Closing zookeeper connection...")
			conn.Close()
		}
		os.Exit(1)
	}()
}

func main() {
	log = common.Log()
	setupCloseHandler()
	flag.Parse()

	conf := common.NewDefaultExecutorConfig()
	if *configFile != "" {
		if err := conf.FromFile(*configFile); err != nil {
			log.Panic("Failed to read config file.", zap.Error(err))
		}
	}
	if *hostname != "" {
		conf.Hostname = *hostname
	} else if conf.Hostname == "" {
		n, err := os.Hostname()
		if err != nil {
			log.Panic("Cannot get default hostname, specify it in command line.", zap.Error(err))
		}
		conf.Hostname = n
	}
	if *port != 0 {
		conf.Port = uint16(*port)
	}
	if *dataDir != "" {
		conf.DataDir = *dataDir
	}
	if *zkServers != "" {
		conf.ZkServers = strings.Fields(*zkServers)
	}
	if err := os.MkdirAll(conf.DataDir, 0755); err != nil {
		log.Panic("Failed to create data dir.", zap.String("dataDir", conf.DataDir), zap.Error(err))
	}

	// connect to zookeeper & obtain an executor id
	c, err := common.ConnectToZk(conf.ZkServers)
	if err != nil {
		log.Panic("Failed to connect to zookeeper.", zap.Error(err))
	}
	conn = c // transfer to global scope
	defer conn.Close()
	log.Info("Connected to zookeeper.", zap.String("server", conn.Server()))

	id, err := executor.AllocateExecutorId(conn)
	if err != nil {
		log.Panic("Failed to allocate executor id.", zap.Error(err))
	}
	log.Info("Executor id allocated.", zap.String("id", id))

	directory := common.NewExecutorDirectory(conn)
	manager = table.NewManager(id, directory, conf)
	s := executor.NewServer(conf.Hostname, conf.Port, id, manager)
	if err := s.RegisterToZk(conn); err != nil {
		log.Panic("Failed to register to zookeeper.", zap.Error(err))
	}
	log.Info("Registration complete.")
	go directory.Watch(stopChan)

	if coord, err := executor.ConnectToCoordinator(conn); err != nil {
		log.Warn("Coordinator is not up yet, migration reports disabled until restart.", zap.Error(err))
	} else {
		manager.SetCoordinatorClient(coord)
	}

	// open tcp socket
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", conf.Port))
	if err != nil {
		log.Panic("Failed to listen to port.", zap.Uint16("port", conf.Port), zap.Error(err))
	}
	// create, register & start gRPC server
	server = common.NewGrpcServer()
	pb.RegisterExecutorServer(server, s)
	defer server.GracefulStop()
	if err := server.Serve(listener); err != nil {
		log.Error("gRPC server raised error.", zap.Error(err))
	}
}
