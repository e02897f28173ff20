package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy     string
	Goroutines   int
	Duration     time.Duration
	Candidates   int // legal turns at the root
	Playouts     int
	FullPlayouts int
	Cutoff       int
	Nodes        int // states expanded by tree search
}

type MoveMetric struct {
	Step   int
	Player string
	Turn   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // empty when the game hit the turn cap
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	FinalState     string
}

type Collector interface {
	Start(strategy string, goroutines, cutoff int)
	SetCandidates(n int)
	AddPlayout(full bool)
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	strategy     string
	goroutines   int
	cutoff       int
	startTime    time.Time
	candidates   atomic.Int32
	playouts     atomic.Int32
	fullPlayouts atomic.Int32
	nodes        atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, goroutines, cutoff int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.candidates.Store(0)
	m.playouts.Store(0)
	m.fullPlayouts.Store(0)
	m.nodes.Store(0)
}

func (m *collector) SetCandidates(n int) {
	m.candidates.Store(int32(n))
}

func (m *collector) AddPlayout(full bool) {
	m.playouts.Add(1)
	if full {
		m.fullPlayouts.Add(1)
	}
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:     m.strategy,
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Candidates:   int(m.candidates.Load()),
		Playouts:     int(m.playouts.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoff:       m.cutoff,
		Nodes:        int(m.nodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, goroutines, cutoff int) {}
func (m *dummyCollector) SetCandidates(n int)                           {}
func (m *dummyCollector) AddPlayout(full bool)                          {}
func (m *dummyCollector) AddNode()                                      {}
func (m *dummyCollector) Complete() SearchMetric                        { return SearchMetric{} }
