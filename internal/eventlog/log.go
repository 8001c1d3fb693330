// Package eventlog provides a bounded, rate-limited archive of completed
// rounds: a lookup-by-round-ID ring buffer with a dual global/per-room
// rate limiter, keeping replay records for recently finished rounds.
package eventlog

import (
	"encoding/json"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"fightboard/internal/combat"
	"fightboard/internal/observability"
)

const (
	// BatchFlushSize is a nominal batch size; flush does not read it and
	// writes every pending record at once.
	BatchFlushSize = 32
	// BatchFlushInterval is how often the writer goroutine flushes.
	BatchFlushInterval = 250 * time.Millisecond
	// RoomLimiterCleanup is how often stale per-room limiters are swept.
	RoomLimiterCleanup = 5 * time.Minute
)

// Record is one completed round kept in the ring for later replay lookup.
type Record struct {
	RoundID     string          `json:"round_id"`
	RoundNumber int             `json:"round_number"`
	Winner      *combat.Side    `json:"winner,omitempty"`
	Draw        bool            `json:"draw"`
	Events      []combat.Event  `json:"events"`
	StoredAt    time.Time       `json:"stored_at"`
}

// roomLimiterEntry tracks per-room ingestion rate limiting.
type roomLimiterEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// Log is a bounded, rate-limited round archive. One Log is shared across
// every request handler in the process; ExecuteRound itself stays pure and
// knows nothing about this type.
type Log struct {
	capacity int
	ring     []Record
	index    map[string]int // round id -> ring slot
	writeHead uint64
	mu       sync.RWMutex

	globalLimiter *rate.Limiter
	roomLimiters  sync.Map // map[string]*roomLimiterEntry

	writerWg sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	pending  []Record
	pendingMu sync.Mutex

	filePath string
	file     *os.File
	fileMu   sync.Mutex

	droppedCount uint64
	totalCount   uint64
}

// New creates a bounded Log with the given ring capacity.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = 512
	}
	return &Log{
		capacity:      capacity,
		ring:          make([]Record, capacity),
		index:         make(map[string]int, capacity),
		globalLimiter: rate.NewLimiter(rate.Limit(200), 50),
		stopChan:      make(chan struct{}),
	}
}

// Start begins the async writer goroutine, appending newline-delimited JSON
// records to filePath. An empty filePath disables disk persistence; the
// in-memory ring keeps working regardless.
func (l *Log) Start(filePath string) error {
	if l.running.Load() {
		return nil
	}
	l.filePath = filePath
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		l.file = f
	}
	l.running.Store(true)
	l.writerWg.Add(2)
	go l.writerLoop()
	go l.cleanupLoop()
	return nil
}

// Stop gracefully shuts down the log, flushing any pending records.
func (l *Log) Stop() {
	l.stopOnce.Do(func() {
		l.running.Store(false)
		close(l.stopChan)
		l.writerWg.Wait()
		l.fileMu.Lock()
		if l.file != nil {
			l.file.Close()
		}
		l.fileMu.Unlock()
	})
}

// Store records a completed round, keyed by room (the game session the
// round belongs to) for rate-limiting purposes. Returns false if the round
// was dropped due to rate limiting (DoS protection); the caller should
// still treat ExecuteRound's own result as authoritative.
func (l *Log) Store(room string, rec Record) bool {
	if !l.globalLimiter.Allow() {
		atomic.AddUint64(&l.droppedCount, 1)
		observability.RecordEventLogDropped()
		return false
	}
	if room != "" {
		if lim := l.getRoomLimiter(room); !lim.Allow() {
			atomic.AddUint64(&l.droppedCount, 1)
			observability.RecordEventLogDropped()
			return false
		}
	}

	rec.StoredAt = time.Now()

	l.mu.Lock()
	slot := int(l.writeHead % uint64(l.capacity))
	if old := l.ring[slot]; old.RoundID != "" {
		delete(l.index, old.RoundID)
	}
	l.ring[slot] = rec
	l.index[rec.RoundID] = slot
	l.writeHead++
	l.mu.Unlock()

	observability.UpdateActiveRounds(l.Len())
	atomic.AddUint64(&l.totalCount, 1)

	l.pendingMu.Lock()
	l.pending = append(l.pending, rec)
	l.pendingMu.Unlock()

	return true
}

// Get retrieves a previously stored round by id. Returns false once the
// round has aged out of the ring.
func (l *Log) Get(roundID string) (Record, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	slot, ok := l.index[roundID]
	if !ok {
		return Record{}, false
	}
	rec := l.ring[slot]
	if rec.RoundID != roundID {
		return Record{}, false
	}
	return rec, true
}

// Len returns the number of rounds currently held in the ring.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.index)
}

// Stats returns ingestion counters for the /health or /metrics surface.
func (l *Log) Stats() map[string]uint64 {
	return map[string]uint64{
		"dropped": atomic.LoadUint64(&l.droppedCount),
		"total":   atomic.LoadUint64(&l.totalCount),
	}
}

func (l *Log) getRoomLimiter(room string) *rate.Limiter {
	if entry, ok := l.roomLimiters.Load(room); ok {
		e := entry.(*roomLimiterEntry)
		e.lastUsed = time.Now()
		return e.limiter
	}
	entry := &roomLimiterEntry{
		limiter:  rate.NewLimiter(rate.Limit(20), 5),
		lastUsed: time.Now(),
	}
	actual, _ := l.roomLimiters.LoadOrStore(room, entry)
	return actual.(*roomLimiterEntry).limiter
}

func (l *Log) writerLoop() {
	defer l.writerWg.Done()
	ticker := time.NewTicker(BatchFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			l.flush()
			return
		case <-ticker.C:
			l.flush()
		}
	}
}

func (l *Log) flush() {
	l.pendingMu.Lock()
	if len(l.pending) == 0 {
		l.pendingMu.Unlock()
		return
	}
	batch := l.pending
	l.pending = nil
	l.pendingMu.Unlock()

	if l.file == nil {
		return
	}
	l.fileMu.Lock()
	defer l.fileMu.Unlock()
	for _, rec := range batch {
		b, err := json.Marshal(rec)
		if err != nil {
			continue
		}
		l.file.Write(b)
		l.file.Write([]byte("\n"))
	}
}

func (l *Log) cleanupLoop() {
	defer l.writerWg.Done()
	ticker := time.NewTicker(RoomLimiterCleanup)
	defer ticker.Stop()
	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-RoomLimiterCleanup)
			l.roomLimiters.Range(func(key, value interface{}) bool {
				entry := value.(*roomLimiterEntry)
				if entry.lastUsed.Before(cutoff) {
					l.roomLimiters.Delete(key)
				}
				return true
			})
		}
	}
}
