package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/tennis-predictor/internal/models"
)

type MockSink struct {
	mu      sync.Mutex
	Batches [][]models.Match
	Err     error
}

func (m *MockSink) InsertMatches(ctx context.Context, matches []models.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Batches = append(m.Batches, append([]models.Match(nil), matches...))
	return nil
}

func (m *MockSink) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.Batches {
		n += len(b)
	}
	return n
}

type MockRatings struct {
	mu     sync.Mutex
	Winner []string
}

func (m *MockRatings) ProcessMatch(a, b, surface string, y int) (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if y == 1 {
		m.Winner = append(m.Winner, a)
	} else {
		m.Winner = append(m.Winner, b)
	}
	return 0, 0.5
}

func (m *MockRatings) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Winner)
}

func TestEnqueueFull(t *testing.T) {
	// Create a pool manually to avoid starting workers
	cfg := PoolConfig{
		QueueSize: 1,
		Logger:    zap.NewNop(),
	}

	pool := &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.ctx = ctx
	pool.cancel = cancel
	defer cancel()

	// Fill the queue
	if !pool.Enqueue(&models.Match{PlayerA: "A", PlayerB: "B"}) {
		t.Fatal("Failed to enqueue first match")
	}

	start := time.Now()
	enqueued := pool.Enqueue(&models.Match{PlayerA: "C", PlayerB: "D"})
	duration := time.Since(start)

	if enqueued {
		t.Error("Enqueue should have returned false when queue is full")
	}
	if duration > 10*time.Millisecond {
		t.Errorf("Enqueue took too long (%v), expected immediate return", duration)
	}
	if pool.QueueDepth() != 1 {
		t.Errorf("QueueDepth() = %d, want 1", pool.QueueDepth())
	}
}

func TestPool_FlushOnStop(t *testing.T) {
	sink := &MockSink{}
	ratings := &MockRatings{}

	pool := NewPool(PoolConfig{
		BatchSize:     100,
		FlushInterval: time.Hour,
		Sink:          sink,
		Ratings:       ratings,
		Logger:        zap.NewNop(),
	})
	pool.Start(context.Background())

	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pool.Enqueue(&models.Match{Date: d.AddDate(0, 0, 2), PlayerA: "Late", PlayerB: "X", Y: 1})
	pool.Enqueue(&models.Match{Date: d, PlayerA: "Early", PlayerB: "X", Y: 1})
	pool.Enqueue(&models.Match{Date: d.AddDate(0, 0, 1), PlayerA: "X", PlayerB: "Middle", Y: 0})
	pool.Stop()

	if sink.Total() != 3 {
		t.Fatalf("sink received %d matches, want 3", sink.Total())
	}
	want := []string{"Early", "Middle", "Late"}
	if ratings.Count() != 3 {
		t.Fatalf("ratings applied %d matches, want 3", ratings.Count())
	}
	for i, w := range want {
		if ratings.Winner[i] != w {
			t.Errorf("rating update %d winner = %q, want %q", i, ratings.Winner[i], w)
		}
	}

	if pool.Enqueue(&models.Match{PlayerA: "A", PlayerB: "B"}) {
		t.Error("Enqueue after Stop should fail")
	}
}

func TestPool_BatchSizeFlush(t *testing.T) {
	sink := &MockSink{}
	pool := NewPool(PoolConfig{
		BatchSize:     2,
		FlushInterval: time.Hour,
		Sink:          sink,
		Logger:        zap.NewNop(),
	})
	pool.Start(context.Background())
	defer pool.Stop()

	pool.Enqueue(&models.Match{PlayerA: "A", PlayerB: "B", Y: 1})
	pool.Enqueue(&models.Match{PlayerA: "C", PlayerB: "D", Y: 1})

	deadline := time.Now().Add(2 * time.Second)
	for sink.Total() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sink.Total() != 2 {
		t.Errorf("sink received %d matches, want 2 after reaching batch size", sink.Total())
	}
}

func TestPool_SinkFailureSkipsRatings(t *testing.T) {
	ratings := &MockRatings{}
	pool := NewPool(PoolConfig{
		FlushInterval: time.Hour,
		Sink:          &MockSink{Err: errors.New("clickhouse down")},
		Ratings:       ratings,
		Logger:        zap.NewNop(),
	})
	pool.Start(context.Background())
	pool.Enqueue(&models.Match{PlayerA: "A", PlayerB: "B", Y: 1})
	pool.Stop()

	if ratings.Count() != 0 {
		t.Errorf("ratings updated %d times despite failed insert", ratings.Count())
	}
}

func TestNewPool_WorkerCount(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PoolConfig
		wantNum int
	}{
		{"Default", PoolConfig{}, 1},
		{"Ratings force one worker", PoolConfig{WorkerCount: 4, Ratings: &MockRatings{}}, 1},
		{"Sink only keeps count", PoolConfig{WorkerCount: 4, Sink: &MockSink{}}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Logger = zap.NewNop()
			pool := NewPool(tt.cfg)
			if pool.config.WorkerCount != tt.wantNum {
				t.Errorf("WorkerCount = %d, want %d", pool.config.WorkerCount, tt.wantNum)
			}
		})
	}
}
