// Manager owns every table resident at one executor and is the entry point
// the executor server delegates to.
package table

import (
	"os"
	"path"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zyq11223/harmony/common"
	pb "github.com/zyq11223/harmony/proto"
)

type Manager struct {
	mu      sync.RWMutex
	localId string
	pool    ClientPool
	conf    *common.ExecutorConfig

	// coordinator client for migration completion notices
	coordinator pb.CoordinatorClient

	defs   map[string]Definition
	tables map[string]*Table

	// per-migration chunk accounting, keyed by the coordinator's op id
	imports map[string]*importProgress
}

func NewManager(localId string, pool ClientPool, conf *common.ExecutorConfig) *Manager {
	if conf == nil {
		conf = common.NewDefaultExecutorConfig()
	}
	return &Manager{
		localId: localId,
		pool:    pool,
		conf:    conf,
		defs:    make(map[string]Definition),
		tables:  make(map[string]*Table),
		imports: make(map[string]*importProgress),
	}
}

func (m *Manager) LocalId() string {
	return m.localId
}

func (m *Manager) SetCoordinatorClient(c pb.CoordinatorClient) {
	m.mu.Lock()
	m.coordinator = c
	m.mu.Unlock()
}

func (m *Manager) coordinatorClient() pb.CoordinatorClient {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.coordinator
}

// RegisterDefinition installs the executor-local semantic hooks for a table.
// Every executor must register the same definition before the coordinator
// creates the table; tables without one get replace-update semantics and no
// init function.
func (m *Manager) RegisterDefinition(tableId string, def Definition) {
	m.mu.Lock()
	m.defs[tableId] = def
	m.mu.Unlock()
}

// CreateTable materializes a table from the coordinator's spec and initial
// placement. Idempotent on the table id.
func (m *Manager) CreateTable(spec *pb.TableSpec, owners []string) error {
	if len(owners) != int(spec.NumBlocks) {
		return errors.Errorf("placement has %d owners for %d blocks",
			len(owners), spec.NumBlocks)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[spec.TableId]; ok {
		return nil
	}
	def := m.defs[spec.TableId]
	tbl := newTable(spec, def, owners, m.localId, m.pool, m.conf.RemoteOpTimeout())
	m.tables[spec.TableId] = tbl
	common.Log().Info("table created",
		zap.String("tableId", spec.TableId),
		zap.Int32("numBlocks", spec.NumBlocks),
		zap.String("ordering", spec.Ordering.String()))

	// pick up a checkpoint left by a previous incarnation, if any
	if m.conf.DataDir != "" {
		ckpt := path.Join(m.conf.DataDir, spec.TableId+CKPT_FILENAME_SUFFIX)
		if _, err := os.Stat(ckpt); err == nil {
			if err := tbl.RestoreCheckpoint(ckpt); err != nil {
				common.Log().Warn("checkpoint restore failed",
					zap.String("file", ckpt), zap.Error(err))
			} else {
				common.Log().Info("checkpoint restored", zap.String("file", ckpt))
			}
		}
	}
	return nil
}

// CheckpointAll flushes every resident table to the data dir. Meant for
// shutdown; restore happens when the coordinator recreates the tables.
func (m *Manager) CheckpointAll() {
	if m.conf.DataDir == "" {
		return
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, t := range m.tables {
		if name, err := t.Checkpoint(m.conf.DataDir); err != nil {
			common.Log().Error("checkpoint failed", zap.String("tableId", id), zap.Error(err))
		} else {
			common.Log().Info("checkpoint written", zap.String("file", name))
		}
	}
}

func (m *Manager) DropTable(tableId string) {
	m.mu.Lock()
	delete(m.tables, tableId)
	m.mu.Unlock()
	common.Log().Info("table dropped", zap.String("tableId", tableId))
}

func (m *Manager) GetTable(tableId string) (*Table, error) {
	m.mu.RLock()
	t, ok := m.tables[tableId]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.Wrap(common.ErrTableNotFound, tableId)
	}
	return t, nil
}

// HandleAccess serves a table operation arriving from a remote executor.
func (m *Manager) HandleAccess(req *pb.AccessRequest) *pb.AccessResponse {
	t, err := m.GetTable(req.TableId)
	if err != nil {
		return &pb.AccessResponse{Status: pb.Status_ENOTABLE, ErrMsg: err.Error()}
	}
	return t.handleAccess(req)
}
