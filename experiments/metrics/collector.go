package metrics

import "time"

type SearchMetric struct {
	Duration   time.Duration
	Nodes      int
	Terminals  int
	MaxDepth   int
	DepthLimit int
}

type MoveMetric struct {
	Step   int
	Player int // Cell value of the color that moved
	Column int
	Think  time.Duration
	SearchMetric
}

type GameMetric struct {
	GameID         string
	StartingPlayer string // Agent name
	Winner         string // Agent name, "" on a tie or aborted game
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depthLimit int)
	AddNode(depth int)
	AddTerminal()
	Complete() SearchMetric
}

// collector counts the nodes of one search. It is not safe for concurrent use.
type collector struct {
	depthLimit int
	startTime  time.Time
	nodes      int
	terminals  int
	maxDepth   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depthLimit int) {
	m.startTime = time.Now()
	m.depthLimit = depthLimit
	m.nodes = 0
	m.terminals = 0
	m.maxDepth = 0
}

func (m *collector) AddNode(depth int) {
	m.nodes++
	m.maxDepth = max(m.maxDepth, depth)
}

func (m *collector) AddTerminal() {
	m.terminals++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes,
		Terminals:  m.terminals,
		MaxDepth:   m.maxDepth,
		DepthLimit: m.depthLimit,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depthLimit int)   {}
func (m *dummyCollector) AddNode(depth int)      {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
