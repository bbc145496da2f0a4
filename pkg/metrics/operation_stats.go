package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type Stats struct {
	InsertRPS float64
	DeleteRPS float64
	ReadRPS   float64
}

// OperationStats keeps per-second operation counts over a sliding window.
type OperationStats struct {
	insertCount uint64
	deleteCount uint64
	readCount   uint64

	mu            sync.Mutex
	insertHistory []uint64
	deleteHistory []uint64
	readHistory   []uint64
	windowSize    int

	quit     chan struct{}
	stopOnce sync.Once
}

func NewOperationStats(windowSize int) *OperationStats {
	if windowSize < 1 {
		windowSize = 1
	}
	stats := &OperationStats{
		insertHistory: make([]uint64, windowSize),
		deleteHistory: make([]uint64, windowSize),
		readHistory:   make([]uint64, windowSize),
		windowSize:    windowSize,
		quit:          make(chan struct{}),
	}

	return stats
}

func (rc *OperationStats) Start() {
	// Ticker to update window every second
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rc.UpdateWindow()
		case <-rc.quit:
			return
		}
	}
}

func (rc *OperationStats) Stop() {
	rc.stopOnce.Do(func() { close(rc.quit) })
}

func (rc *OperationStats) IncrementInsert() {
	atomic.AddUint64(&rc.insertCount, 1)
}

func (rc *OperationStats) IncrementDelete() {
	atomic.AddUint64(&rc.deleteCount, 1)
}

func (rc *OperationStats) IncrementRead() {
	atomic.AddUint64(&rc.readCount, 1)
}

func (rc *OperationStats) UpdateWindow() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	// Shift history to the left and store current counts
	copy(rc.insertHistory, rc.insertHistory[1:])
	copy(rc.deleteHistory, rc.deleteHistory[1:])
	copy(rc.readHistory, rc.readHistory[1:])

	rc.insertHistory[rc.windowSize-1] = atomic.SwapUint64(&rc.insertCount, 0)
	rc.deleteHistory[rc.windowSize-1] = atomic.SwapUint64(&rc.deleteCount, 0)
	rc.readHistory[rc.windowSize-1] = atomic.SwapUint64(&rc.readCount, 0)
}

func (rc *OperationStats) GetRPS() *Stats {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	var totalInsert, totalDelete, totalRead uint64
	for i := 0; i < rc.windowSize; i++ {
		totalInsert += rc.insertHistory[i]
		totalDelete += rc.deleteHistory[i]
		totalRead += rc.readHistory[i]
	}

	seconds := float64(rc.windowSize)
	return &Stats{
		InsertRPS: float64(totalInsert) / seconds,
		DeleteRPS: float64(totalDelete) / seconds,
		ReadRPS:   float64(totalRead) / seconds,
	}
}
