package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	InPlace    bool
	Duration   time.Duration
	Nodes      int // Boards visited, root included
	Leaves     int // Depth-limit evaluations
	Terminals  int // Won or drawn boards
	Prunes     int // Alpha-beta cutoffs
}

type MoveMetric struct {
	Step   int
	Player string
	Column int
	Score  int
	SearchMetric
}

type GameMetric struct {
	ID             string // UUID
	StartingPlayer string
	Winner         string // Empty on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig describes one side of a matchup.
type AgentConfig struct {
	ID         int
	Random     bool // Uniformly random agent, search settings ignored
	Depth      int
	Goroutines int
	InPlace    bool
	Seed       uint64
}

type Collector interface {
	Start(depth, goroutines int, inPlace bool)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	inPlace    bool
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	terminals  atomic.Int64
	prunes     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth, goroutines int, inPlace bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.inPlace = inPlace
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.terminals.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		InPlace:    m.inPlace,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Terminals:  int(m.terminals.Load()),
		Prunes:     int(m.prunes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int, inPlace bool) {}
func (m *dummyCollector) AddNode()                                  {}
func (m *dummyCollector) AddLeaf()                                  {}
func (m *dummyCollector) AddTerminal()                              {}
func (m *dummyCollector) AddPrune()                                 {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
