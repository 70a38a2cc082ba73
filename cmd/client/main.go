// Client for the distributed table service.
// This is mainly a wrapper of gRPC. Table management commands go to the
// coordinator; data commands go to any executor, which forwards them to the
// block owner.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"

	pb "github.com/zyq11223/harmony/proto"
)

const HELP_STRING = `Welcome to harmony.
Usages:
* create <table> <numBlocks> [ordered <boundary>...]
* drop <table>
* move <table> <blockId>[,<blockId>...] <sender> <receiver>
* moverange <table> <keyFrom> <keyTo> <sender> <receiver>
* put <table> <key> <value>
* get <table> <key>
* delete <table> <key>
* exit
`

// configurations
var (
	coordinatorAddr = flag.String("coordinator", "localhost:7899", "Address of the coordinator")
	executorAddr    = flag.String("executor", "localhost:7900", "Address of any executor")
)

// collection of grpc clients
// note that these are interfaces, so no pointers
var (
	coordinatorClient pb.CoordinatorClient
	executorClient    pb.ExecutorClient
)

func callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func doCreate(fields []string) error {
	numBlocks, err := strconv.Atoi(fields[2])
	if err != nil {
		return err
	}
	spec := &pb.TableSpec{
		TableId:   fields[1],
		NumBlocks: int32(numBlocks),
		Ordering:  pb.OrderingMode_HASHED,
	}
	if len(fields) > 3 && fields[3] == "ordered" {
		spec.Ordering = pb.OrderingMode_ORDERED
		for _, b := range fields[4:] {
			spec.Boundaries = append(spec.Boundaries, []byte(b))
		}
	}
	ctx, cancel := callCtx()
	defer cancel()
	resp, err := coordinatorClient.CreateTable(ctx, &pb.CreateTableRequest{Spec: spec})
	if err != nil {
		return err
	}
	if resp.Status != pb.Status_OK {
		return errors.New(resp.ErrMsg)
	}
	return nil
}

func doDrop(tableId string) error {
	ctx, cancel := callCtx()
	defer cancel()
	resp, err := coordinatorClient.DropTable(ctx, &pb.DropTableRequest{TableId: tableId})
	if err != nil {
		return err
	}
	if resp.Status != pb.Status_OK {
		return errors.New(resp.ErrMsg)
	}
	return nil
}

func doMove(fields []string) (*pb.MoveBlocksResponse, error) {
	var blockIds []int32
	for _, f := range strings.Split(fields[2], ",") {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		blockIds = append(blockIds, int32(id))
	}
	// migrations can take a while, no client-side deadline here
	return coordinatorClient.MoveBlocks(context.Background(), &pb.MoveBlocksRequest{
		TableId:  fields[1],
		BlockIds: blockIds,
		Sender:   fields[3],
		Receiver: fields[4],
	})
}

func doMoveRange(fields []string) (*pb.MoveBlocksResponse, error) {
	return coordinatorClient.MoveRange(context.Background(), &pb.MoveRangeRequest{
		TableId:  fields[1],
		KeyFrom:  []byte(fields[2]),
		KeyTo:    []byte(fields[3]),
		Sender:   fields[4],
		Receiver: fields[5],
	})
}

func doAccess(op pb.OpType, tableId, key, value string) (*pb.AccessResponse, error) {
	req := &pb.AccessRequest{
		Op:            op,
		TableId:       tableId,
		BlockId:       -1,
		OrigExecutor:  "client",
		ReplyRequired: true,
		Keys:          [][]byte{[]byte(key)},
	}
	if value != "" {
		req.Values = [][]byte{[]byte(value)}
	}
	ctx, cancel := callCtx()
	defer cancel()
	resp, err := executorClient.Access(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Status != pb.Status_OK && resp.Status != pb.Status_ENOENT {
		return nil, errors.New(resp.ErrMsg)
	}
	return resp, nil
}

func dial(addr string) (*grpc.ClientConn, error) {
	var opts []grpc.DialOption
	opts = append(opts, grpc.WithInsecure())
	opts = append(opts, grpc.WithBlock())
	return grpc.Dial(addr, opts...)
}

// main function is a REPL loop
func main() {
	flag.Parse()
	coordConn, err := dial(*coordinatorAddr)
	if err != nil {
		fmt.Printf("Failed to dial coordinator %s: %v\n", *coordinatorAddr, err)
		os.Exit(1)
	}
	defer coordConn.Close()
	coordinatorClient = pb.NewCoordinatorClient(coordConn)

	execConn, err := dial(*executorAddr)
	if err != nil {
		fmt.Printf("Failed to dial executor %s: %v\n", *executorAddr, err)
		os.Exit(1)
	}
	defer execConn.Close()
	executorClient = pb.NewExecutorClient(execConn)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">>> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "create":
			if len(fields) < 3 {
				fmt.Println("Usage: create <table> <numBlocks> [ordered <boundary>...]")
				continue
			}
			if err := doCreate(fields); err != nil {
				fmt.Printf("Create %s failed: %v\n", fields[1], err)
			} else {
				fmt.Println("OK")
			}
		case "drop":
			if len(fields) != 2 {
				fmt.Println("Usage: drop <table>")
				continue
			}
			if err := doDrop(fields[1]); err != nil {
				fmt.Printf("Drop %s failed: %v\n", fields[1], err)
			} else {
				fmt.Println("OK")
			}
		case "move":
			if len(fields) != 5 {
				fmt.Println("Usage: move <table> <blockId>[,<blockId>...] <sender> <receiver>")
				continue
			}
			resp, err := doMove(fields)
			if err != nil {
				fmt.Printf("Move failed: %v\n", err)
			} else {
				fmt.Printf("completed=%v moved=%v %s\n", resp.Completed, resp.MovedBlockIds, resp.Message)
			}
		case "moverange":
			if len(fields) != 6 {
				fmt.Println("Usage: moverange <table> <keyFrom> <keyTo> <sender> <receiver>")
				continue
			}
			resp, err := doMoveRange(fields)
			if err != nil {
				fmt.Printf("Move failed: %v\n", err)
			} else {
				fmt.Printf("completed=%v moved=%v %s\n", resp.Completed, resp.MovedBlockIds, resp.Message)
			}
		case "put":
			if len(fields) != 4 {
				fmt.Println("Usage: put <table> <key> <value>")
				continue
			}
			if _, err := doAccess(pb.OpType_PUT, fields[1], fields[2], fields[3]); err != nil {
				fmt.Printf("Put <%s> failed: %v\n", fields[2], err)
			} else {
				fmt.Println("OK")
			}
		case "get":
			if len(fields) != 3 {
				fmt.Println("Usage: get <table> <key>")
				continue
			}
			resp, err := doAccess(pb.OpType_GET, fields[1], fields[2], "")
			if err != nil {
				fmt.Printf("Get <%s> failed: %v\n", fields[2], err)
			} else if resp.Status == pb.Status_ENOENT || len(resp.Values) == 0 {
				fmt.Println("(not found)")
			} else {
				fmt.Printf("%s -> %s\n", fields[2], resp.Values[0])
			}
		case "delete":
			if len(fields) != 3 {
				fmt.Println("Usage: delete <table> <key>")
				continue
			}
			if _, err := doAccess(pb.OpType_REMOVE, fields[1], fields[2], ""); err != nil {
				fmt.Printf("Delete <%s> failed: %v\n", fields[2], err)
			} else {
				fmt.Println("OK")
			}
		case "help":
			fmt.Print(HELP_STRING)
		case "exit", "quit":
			return
		default:
			fmt.Print(HELP_STRING)
		}
	}
}
