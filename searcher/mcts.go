package searcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"mytikas/experiments/metrics"
	"mytikas/game"
	"mytikas/meta"
)

type Option func(mcts *MCTS)

// MCTS scores every legal turn by random playouts from the state it leads to
// and picks the turn with the best mean reward. Playouts stop after cutoff
// turns and fall back to a heuristic evaluation. It keeps no tree between
// searches. With a playout budget every turn gets the same number of
// playouts; with a time budget each worker spreads playouts by UCB1.
type MCTS struct {
	goroutines int
	duration   time.Duration
	playouts   int // per root turn
	cutoff     int
	seed       uint64
	evaluate   game.Evaluator
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithPlayouts(playouts int) Option {
	return func(m *MCTS) {
		if playouts > 0 {
			m.playouts = playouts
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	if goroutines <= 0 {
		goroutines = 1
	}
	m := &MCTS{ // Default values
		goroutines: goroutines,
		cutoff:     meta.WITH_CUTOFF,
		seed:       uint64(time.Now().UnixNano()),
		evaluate:   game.EvaluateAdvance,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.playouts <= 0 && m.duration <= 0 {
		m.playouts = meta.PLAYOUTS
	}
	return m
}

func (m *MCTS) String() string {
	if m.playouts <= 0 {
		return fmt.Sprintf("mcts,duration=%s,cutoff=%d,goroutines=%d,seed=%d", m.duration, m.cutoff, m.goroutines, m.seed)
	}
	return fmt.Sprintf("mcts,playouts=%d,cutoff=%d,goroutines=%d,seed=%d", m.playouts, m.cutoff, m.goroutines, m.seed)
}

func (m *MCTS) Search(state game.GameState) (game.Turn, metrics.SearchMetric, error) {
	turns, err := legalTurns(state, m)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	m.metrics.Start("mcts", m.goroutines, m.cutoff)
	m.metrics.SetCandidates(len(turns))

	var best int
	if len(turns) > 1 {
		rewards := m.Simulate(state, turns)
		for i, r := range rewards {
			if r > rewards[best] {
				best = i
			}
		}
		log.Debug().Msgf("mcts picked %s with mean reward %.3f of %d turns", turns[best], rewards[best], len(turns))
	}
	return turns[best], m.metrics.Complete(), nil
}

// Simulate returns the mean playout reward of each turn for the player to
// move in state.
func (m *MCTS) Simulate(state game.GameState, turns []game.Turn) []float64 {
	if len(turns) == 0 {
		return nil
	}
	children := make([]game.GameState, len(turns))
	for i, turn := range turns {
		children[i] = state.Play(turn)
	}
	st := &stats{
		player:   state.Player(),
		children: children,
		rewards:  make([]float64, len(turns)),
		visits:   make([]int, len(turns)),
	}
	if m.playouts > 0 {
		m.iterate(st)
	} else {
		m.countdown(st)
	}

	mean := make([]float64, len(turns))
	for i := range mean {
		if st.visits[i] > 0 {
			mean[i] = st.rewards[i] / float64(st.visits[i])
		}
	}
	return mean
}

type stats struct {
	player   game.Player
	children []game.GameState

	mu      sync.Mutex
	rewards []float64
	visits  []int
}

// worker accumulates results locally and merges them into s once.
type worker struct {
	rng     *rand.Rand
	rewards []float64
	visits  []int
}

func (m *MCTS) newWorker(id int, n int) *worker {
	return &worker{
		rng:     rand.New(rand.NewSource(m.seed + uint64(id))),
		rewards: make([]float64, n),
		visits:  make([]int, n),
	}
}

func (w *worker) merge(s *stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range w.rewards {
		s.rewards[i] += w.rewards[i]
		s.visits[i] += w.visits[i]
	}
}

func (m *MCTS) simulate(s *stats, w *worker, i int) {
	reward := rollout(s.children[i], s.player, m.cutoff, m.evaluate, w.rng, m.metrics)
	w.rewards[i] += reward
	w.visits[i]++
}

func (m *MCTS) iterate(s *stats) {
	task := make(chan int, m.playouts*len(s.children))
	for n := 0; n < m.playouts; n++ {
		for i := range s.children {
			task <- i
		}
	}
	close(task)

	var wg sync.WaitGroup
	for g := 0; g < m.goroutines; g++ {
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			defer w.merge(s)

			for i := range task {
				m.simulate(s, w, i)
			}
		}(m.newWorker(g, len(s.children)))
	}

	wg.Wait()
}

func (m *MCTS) countdown(s *stats) {
	done := make(chan any)
	var wg sync.WaitGroup

	for g := 0; g < m.goroutines; g++ {
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			defer w.merge(s)

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(s, w, w.choose())
				}
			}
		}(m.newWorker(g, len(s.children)))
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

// rollout plays random turns from state until the game ends or cutoff turns
// were played and returns the reward for player.
func rollout(state game.GameState, player game.Player, cutoff int, evaluate game.Evaluator, rng *rand.Rand, metrics metrics.Collector) float64 {
	depth := 0
	turns := game.GenerateTurns(state)
	// Rollout till game over or for cutoff number of turns
	for len(turns) > 0 && depth < cutoff {
		turn := turns[rng.Intn(len(turns))] // Random rollout policy
		state = state.Play(turn)
		turns = game.GenerateTurns(state)
		depth++
	}

	if len(turns) == 0 { // Game over before cutoff
		metrics.AddPlayout(true)
		return Loss + state.Result(player)*(Win-Loss)
	}

	// At cutoff, map the evaluation of the player to move onto [Loss, Win]
	metrics.AddPlayout(false)
	score := (evaluate(state) + 1) / 2
	if state.Player() != player {
		score = 1 - score
	}
	return Loss + score*(Win-Loss)
}
