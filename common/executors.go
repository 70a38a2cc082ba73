package common

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/samuel/go-zookeeper/zk"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/zyq11223/harmony/proto"
)

// ExecutorDirectory tracks live executors through their ephemeral znodes and
// hands out cached gRPC clients for them. Both the coordinator and every
// executor keep one.
type ExecutorDirectory struct {
	conn  *zk.Conn
	mu    sync.RWMutex
	addrs map[string]string
	conns map[string]*grpc.ClientConn
}

func NewExecutorDirectory(conn *zk.Conn) *ExecutorDirectory {
	return &ExecutorDirectory{
		conn:  conn,
		addrs: make(map[string]string),
		conns: make(map[string]*grpc.ClientConn),
	}
}

// Sync reads the executor list once. Watch calls it on every children event.
func (d *ExecutorDirectory) Sync() error {
	children, _, err := d.conn.Children(ZK_EXECUTORS_ROOT)
	if err != nil {
		return err
	}
	return d.apply(children)
}

func (d *ExecutorDirectory) apply(children []string) error {
	fresh := make(map[string]string)
	for _, child := range children {
		var node ExecutorNode
		if err := ZkGet(d.conn, ZK_EXECUTORS_ROOT+"/"+child, &node); err != nil {
			// the node may have just expired, skip it
			Log().Warn("failed to read executor znode",
				zap.String("child", child), zap.Error(err))
			continue
		}
		fresh[node.Id] = NodeAddr(node.Host)
	}
	d.mu.Lock()
	for id, conn := range d.conns {
		if _, ok := fresh[id]; !ok {
			_ = conn.Close()
			delete(d.conns, id)
		}
	}
	d.addrs = fresh
	d.mu.Unlock()
	return nil
}

// Watch follows executor membership until stopChan closes.
func (d *ExecutorDirectory) Watch(stopChan <-chan struct{}) {
	log := Log()
	for {
		children, _, eventChan, err := d.conn.ChildrenW(ZK_EXECUTORS_ROOT)
		if err != nil {
			log.Error("failed to watch executors root", zap.Error(err))
			return
		}
		if err := d.apply(children); err != nil {
			log.Error("failed to apply executor list", zap.Error(err))
		}
		select {
		case <-eventChan:
		case <-stopChan:
			return
		}
	}
}

// Ids returns the known executor ids in stable order.
func (d *ExecutorDirectory) Ids() []string {
	d.mu.RLock()
	ids := make([]string, 0, len(d.addrs))
	for id := range d.addrs {
		ids = append(ids, id)
	}
	d.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

func (d *ExecutorDirectory) GetExecutorClient(executorId string) (pb.ExecutorClient, error) {
	d.mu.RLock()
	conn, ok := d.conns[executorId]
	d.mu.RUnlock()
	if ok {
		return pb.NewExecutorClient(conn), nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if conn, ok := d.conns[executorId]; ok {
		return pb.NewExecutorClient(conn), nil
	}
	addr, ok := d.addrs[executorId]
	if !ok {
		return nil, errors.Wrap(ErrTransport, "unknown executor "+executorId)
	}
	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		return nil, errors.Wrap(ErrTransport, err.Error())
	}
	d.conns[executorId] = conn
	return pb.NewExecutorClient(conn), nil
}

func (d *ExecutorDirectory) Close() {
	d.mu.Lock()
	for _, conn := range d.conns {
		_ = conn.Close()
	}
	d.conns = make(map[string]*grpc.ClientConn)
	d.mu.Unlock()
}
