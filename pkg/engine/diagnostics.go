package engine

import (
	"log/slog"
	"slices"
	"sync"
	"time"
)

// FrameStats describes the work done by one call to [Engine.Frame].
type FrameStats struct {
	ID         uint64
	Dispatched int
	// Ticked is set when a ticker or timer was running as the frame began.
	Ticked   bool
	Duration time.Duration
}

// LogValue groups the stats for structured logs.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("id", s.ID),
		slog.Int("dispatched", s.Dispatched),
		slog.Bool("ticked", s.Ticked),
		slog.Duration("took", s.Duration),
	)
}

// FrameTimingBuffer keeps the durations of the most recent frames.
type FrameTimingBuffer struct {
	mu     sync.RWMutex
	window []time.Duration
	size   int
}

// NewFrameTimingBuffer keeps up to size samples, 60 when size is not
// positive.
func NewFrameTimingBuffer(size int) *FrameTimingBuffer {
	if size <= 0 {
		size = 60
	}
	return &FrameTimingBuffer{window: make([]time.Duration, 0, size), size: size}
}

// Add records d, evicting the oldest sample once the buffer is full.
func (b *FrameTimingBuffer) Add(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.window) == b.size {
		b.window = append(b.window[:0], b.window[1:]...)
	}
	b.window = append(b.window, d)
}

// Samples returns the recorded durations, oldest first.
func (b *FrameTimingBuffer) Samples() []time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.window) == 0 {
		return nil
	}
	return slices.Clone(b.window)
}

func (b *FrameTimingBuffer) Average() time.Duration {
	samples := b.Samples()
	if len(samples) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	return sum / time.Duration(len(samples))
}

func (b *FrameTimingBuffer) Max() time.Duration {
	if samples := b.Samples(); len(samples) > 0 {
		return slices.Max(samples)
	}
	return 0
}

func (b *FrameTimingBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.window)
}
