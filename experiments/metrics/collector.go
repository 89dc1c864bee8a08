package metrics

import (
	"time"

	"mctschess/game"
)

type SearchMetric struct {
	Episodes          int
	Cutoff            int
	Duration          time.Duration
	Nodes             int  // Nodes added to the tree
	FullPlayouts      int  // Rollouts that reached a terminal state
	CutoffPlayouts    int  // Rollouts evaluated after exhausting the depth limit
	TruncatedPlayouts int  // Rollouts stopped on a non-terminal state without legal moves
	IsFallback        bool // Root had no children, the move was drawn at random
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   string
	SearchMetric
}

type GameMetric struct {
	Result     game.Outcome
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(cutoff int)
	AddEpisode()
	AddNode()
	AddFullPlayout()
	AddCutoffPlayout()
	AddTruncatedPlayout()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(cutoff int) {
	m.startTime = time.Now()
	m.metric = SearchMetric{Cutoff: cutoff}
}

func (m *collector) AddEpisode() {
	m.metric.Episodes++
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddFullPlayout() {
	m.metric.FullPlayouts++
}

func (m *collector) AddCutoffPlayout() {
	m.metric.CutoffPlayouts++
}

func (m *collector) AddTruncatedPlayout() {
	m.metric.TruncatedPlayouts++
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(cutoff int)       {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) AddCutoffPlayout()      {}
func (m *dummyCollector) AddTruncatedPlayout()   {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
