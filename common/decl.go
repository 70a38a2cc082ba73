// decl: common data structures & constants
package common

import "fmt"

const (
	ZK_ROOT             = "/harmony"
	ZK_EXECUTORS_ROOT   = "/harmony/executors"
	ZK_COORDINATOR_NAME = "coordinator"
	ZK_EXECUTOR_ID      = "/harmony/executorId"
)

// BlockId identifies one partition of a table's key space. Valid ids are
// in [0, numBlocks) of the owning table.
type BlockId int

type Node struct {
	Hostname string
	Port     uint16
}

func NodeAddr(n Node) string {
	return fmt.Sprintf("%s:%d", n.Hostname, n.Port)
}

// ExecutorNode is the metadata an executor publishes under ZK_EXECUTORS_ROOT.
type ExecutorNode struct {
	Id   string
	Host Node
}

type CoordinatorNode struct {
	Host Node
}

func NewExecutorNode(id string, hostname string, port uint16) ExecutorNode {
	return ExecutorNode{
		Id: id,
		Host: Node{
			Hostname: hostname,
			Port:     port,
		},
	}
}

func NewCoordinatorNode(hostname string, port uint16) CoordinatorNode {
	return CoordinatorNode{
		Host: Node{
			Hostname: hostname,
			Port:     port,
		},
	}
}
