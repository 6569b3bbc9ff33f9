package trainer

import (
	"sync"
	"time"

	"github.com/kevin-chtw/tw_ukeire/game"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Manager 管理所有玩家的练习会话
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session // uid -> Session
	manual   *game.Manual
	idle     time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// NewManager creates a session manager. Sessions untouched for idle are
// dropped; idle <= 0 keeps them forever.
func NewManager(manual *game.Manual, idle time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		manual:   manual,
		idle:     idle,
		done:     make(chan struct{}),
	}
	if idle > 0 {
		m.ticker = time.NewTicker(time.Minute)
		go func() {
			for {
				select {
				case <-m.ticker.C:
					m.evict(time.Now())
				case <-m.done:
					return
				}
			}
		}()
	}
	return m
}

func (m *Manager) evict(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for uid, s := range m.sessions {
		if now.Sub(s.idleSince()) > m.idle {
			delete(m.sessions, uid)
			logger.Log.Debugf("session %s evicted", uid)
		}
	}
}

func (m *Manager) Get(uid string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[uid]
}

// LoadOrStore returns the session of uid, creating it with load when absent.
// created reports whether a new session was stored.
func (m *Manager) LoadOrStore(uid string, load func() Settings) (s *Session, created bool) {
	if s := m.Get(uid); s != nil {
		return s, false
	}

	// 读取设置可能访问存储，不持锁
	settings := load()

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[uid]; ok {
		return s, false
	}
	s = NewSession(uid, settings, nil)
	s.manual = m.manual
	m.sessions[uid] = s
	return s, true
}

func (m *Manager) Delete(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, uid)
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) Close() {
	if m.ticker != nil {
		m.ticker.Stop()
		close(m.done)
	}
}
