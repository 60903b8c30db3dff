package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy string
	Depth    int
	Duration time.Duration
	Nodes    int // Boards visited, root included
	Leaves   int // Evaluator calls
	Prunes   int // Alpha-beta cut-offs
	Score    float64
}

type MoveMetric struct {
	Step      int
	Player    int // Seat
	Move      int
	ExtraTurn bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Seat
	Winner         int // Seat, 0 on a draw or when the turn limit is hit
	Banked         [2]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(strategy string, depth int)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete(score float64) SearchMetric
}

type collector struct {
	strategy  string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(strategy string, depth int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete(score float64) SearchMetric {
	return SearchMetric{
		Strategy: m.strategy,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Prunes:   int(m.prunes.Load()),
		Score:    score,
	}
}

// dummyCollector skips the counters but still labels each metric with the
// strategy and depth it was started with.
type dummyCollector struct {
	strategy string
	depth    int
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int) {
	m.strategy = strategy
	m.depth = depth
}

func (m *dummyCollector) AddNode()  {}
func (m *dummyCollector) AddLeaf()  {}
func (m *dummyCollector) AddPrune() {}

func (m *dummyCollector) Complete(score float64) SearchMetric {
	return SearchMetric{Strategy: m.strategy, Depth: m.depth, Score: score}
}
