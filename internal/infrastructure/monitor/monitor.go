package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/infrastructure/storage"
)

// Counter reports the in-memory size of one collection.
type Counter interface {
	Name() string
	Count() int
}

// Monitor polls storage health and collection sizes on a fixed interval so
// the health endpoint never touches the database on the request path.
type Monitor struct {
	db       *storage.DB
	counters []Counter

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(db *storage.DB, counters []Counter, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		db:       db,
		counters: counters,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Storage
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	status := Status{
		Storage:     m.checkStorage(),
		Collections: make(map[string]int, len(m.counters)),
		LastCheck:   time.Now(),
	}
	for _, c := range m.counters {
		status.Collections[c.Name()] = c.Count()
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkStorage() bool {
	if m.db == nil {
		return false
	}
	if err := m.db.Ping(); err != nil {
		m.logger.Warn("storage ping failed", zap.Error(err))
		return false
	}
	return true
}
