// Coordinator for the distributed table service.
// It places blocks on executors, orders block migrations and keeps the
// authoritative placement metadata. Table data never passes through it.
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
	"github.com/zyq11223/harmony/coordinator"
	pb "github.com/zyq11223/harmony/proto"
)

var (
	hostname  = flag.String("hostname", "", "The server's hostname")
	port      = flag.Int("port", 7899, "The server port")
	zkServers = flag.String("zk-servers", "localhost:2181",
		"Zookeeper server cluster, separated by space")
	configFile = flag.String("config", "", "Optional toml config file")
)

var (
	conn     *zk.Conn
	server   *grpc.Server
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

	conf := common.NewDefaultCoordinatorConfig()
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
	if *zkServers != "" {
		conf.ZkServers = strings.Fields(*zkServers)
	}

	// connect to zookeeper & register itself
	zc, err := common.ConnectToZk(conf.ZkServers)
	if err != nil {
		log.Panic("Failed to connect to zookeeper.", zap.Error(err))
	}
	conn = zc // transfer to global scope
	defer conn.Close()
	log.Info("Connected to zookeeper.", zap.String("server", conn.Server()))

	directory := common.NewExecutorDirectory(conn)
	c := coordinator.NewServer(conf.Hostname, conf.Port, directory, conf)
	if err := c.RegisterToZk(conn); err != nil {
		log.Panic("Failed to register to zookeeper.", zap.Error(err))
	}
	log.Info("Registration complete.")
	go directory.Watch(stopChan)
	go c.Run(stopChan)

	// open tcp socket
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", conf.Port))
	if err != nil {
		log.Panic("Failed to listen to port.", zap.Uint16("port", conf.Port), zap.Error(err))
	}
	// create, register & start gRPC server
	server = common.NewGrpcServer()
	pb.RegisterCoordinatorServer(server, c)
	defer server.GracefulStop()
	if err := server.Serve(listener); err != nil {
		log.Error("gRPC server raised error.", zap.Error(err))
	}
}
