package common

import (
	"encoding/json"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/samuel/go-zookeeper/zk"
)

func ConnectToZk(servers []string) (*zk.Conn, error) {
	conn, _, err := zk.Connect(servers, time.Second*3)
	if err == nil {
		conn.SetLogger(&ZkLoggerAdapter{})
	}
	return conn, err
}

func EnsurePath(conn *zk.Conn, p string) error {
	exists, _, err := conn.Exists(p)
	if err != nil {
		return err
	}
	if !exists {
		_, err = conn.Create(p, []byte(""), 0, zk.WorldACL(zk.PermAll))
		if err != nil && err != zk.ErrNodeExists {
			return err
		}
	}
	return nil
}

func EnsurePathRecursive(conn *zk.Conn, p string) error {
	// ensure p layer by layer
	dirs := strings.Split(p, "/")
	cp := "/"
	for _, d := range dirs {
		cp = path.Join(cp, d)
		if err := EnsurePath(conn, cp); err != nil {
			return err
		}
	}
	return nil
}

// ZkCreate marshals value as json into a new znode.
func ZkCreate(conn *zk.Conn, p string, value interface{}, ephemeral bool) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	var flags int32 = 0
	if ephemeral {
		flags = zk.FlagEphemeral
	}
	return conn.Create(p, b, flags, zk.WorldACL(zk.PermAll))
}

// ZkGet unmarshals a znode's json content into value.
func ZkGet(conn *zk.Conn, p string, value interface{}) error {
	b, _, err := conn.Get(p)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, value)
}

// This implementation uses optimistic locking. This is a wrapper of a
// zookeeper znode. The struct can be copied; it only ensures distributed
// atomicity, not local atomicity.
type DistributedAtomicInteger struct {
	Conn *zk.Conn
	Path string
}

func (i DistributedAtomicInteger) getWithVersion() (value int, version int32, err error) {
	data, stat, err := i.Conn.Get(i.Path)
	if err != nil {
		return 0, 0, err
	}
	value, err = strconv.Atoi(string(data))
	if err != nil {
		return 0, 0, err
	}
	return value, stat.Version, nil
}

func (i DistributedAtomicInteger) Get() (int, error) {
	value, _, err := i.getWithVersion()
	return value, err
}

func (i DistributedAtomicInteger) Inc() (int, error) {
	for {
		value, version, err := i.getWithVersion()
		if err != nil {
			return 0, err
		}
		_, err = i.Conn.Set(i.Path, []byte(strconv.Itoa(value+1)), version)
		if err == nil {
			return value, nil
		}
		if err != zk.ErrBadVersion {
			return 0, err
		}
		// encountered a bad version, try again
	}
}

func (i DistributedAtomicInteger) SetDefault(v int) error {
	exists, _, err := i.Conn.Exists(i.Path)
	if err != nil {
		return err
	}
	if !exists {
		_, err := i.Conn.Create(i.Path, []byte(strconv.Itoa(v)), 0, zk.WorldACL(zk.PermAll))
		if err != nil && err != zk.ErrNodeExists {
			return err
		}
	}
	return nil
}
