package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"reversi/internal/reversi"
)

var ErrGameNotFound = errors.New("game not found")

// Manager 管理所有进行中的对局。引擎是纯值语义，
// 跨请求的读写都经过这里，由锁串行化。
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 开一局新棋并返回其初始状态。
func (m *Manager) NewGame() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       reversi.NewInitialPosition(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.games[g.ID] = g
	return snapshot(g)
}

// Get 返回指定对局当前状态的快照。
func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return snapshot(g), nil
}

// Apply 在锁内对指定对局执行 fn：fn 返回新局面则替换之，
// 返回错误则原样放回。同一对局的并发修改在这里排队。
func (m *Manager) Apply(id string, fn func(*reversi.Position) (*reversi.Position, error)) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	next, err := fn(g.Pos)
	if err != nil {
		return nil, err
	}
	g.Pos = next
	g.UpdatedAt = time.Now()
	return snapshot(g), nil
}

// Reset 把对局放回开局局面，id 保持不变。
func (m *Manager) Reset(id string) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	g.Pos = reversi.NewInitialPosition()
	g.UpdatedAt = time.Now()
	return snapshot(g), nil
}

// Remove 丢弃一局对局。id 不存在时是空操作。
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

// 局面一经创建不再改动，副本之间共享 Pos 指针是安全的。
func snapshot(g *GameState) *GameState {
	cp := *g
	return &cp
}
