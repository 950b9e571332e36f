package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *Minimax)

// Minimax picks columns with depth-limited minimax and alpha-beta pruning.
// Calls to ChooseMove are serialized.
type Minimax struct {
	mu         sync.Mutex
	alpha      int
	beta       int
	goroutines int
	inPlace    bool
	evaluate   game.Evaluator
	rand       *rand.Rand
	metrics    metrics.Collector
	collecting bool
}

// WithWindow sets the root alpha-beta window. Empty windows are ignored.
func WithWindow(alpha, beta int) Option {
	return func(m *Minimax) {
		if alpha < beta {
			m.alpha = alpha
			m.beta = beta
		}
	}
}

// WithRand injects the source used to shuffle move order.
func WithRand(r *rand.Rand) Option {
	return func(m *Minimax) {
		if r != nil {
			m.rand = r
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.rand = rand.New(rand.NewSource(seed))
	}
}

func WithEvaluator(evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithGoroutines searches root candidates on a pool of goroutines when n > 1.
func WithGoroutines(n int) Option {
	return func(m *Minimax) {
		if n > 0 {
			m.goroutines = n
		}
	}
}

// WithInPlace applies and undoes moves on one board per search instead of cloning per branch.
func WithInPlace() Option {
	return func(m *Minimax) {
		m.inPlace = true
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
		m.collecting = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		alpha:      DefaultAlpha,
		beta:       DefaultBeta,
		goroutines: 1,
		evaluate:   game.Score,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// ChooseMove searches depth plies ahead with player as the maximizing side and its
// opponent minimizing. The board is not modified. It panics if b has no valid column.
func (m *Minimax) ChooseMove(b *game.Board, depth int, player game.Player) (Result, metrics.SearchMetric) {
	if len(b.ValidColumns()) == 0 {
		panic("cannot choose a move: board has no valid columns")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.metrics.Start(depth, m.goroutines, m.inPlace)
	column, score := m.root(b.Clone(), depth, player)
	metric := m.metrics.Complete()

	event := log.Debug().
		Str("player", player.String()).
		Int("depth", depth).
		Int("column", column).
		Int("score", score)
	if m.collecting {
		event = event.Int("nodes", metric.Nodes)
	}
	event.Msg("chose move")

	return Result{Column: column, Score: score}, metric
}

// root shuffles the candidates of b and draws one seed per candidate, so every root branch
// replays the same move order whether it is searched sequentially or on the worker pool.
func (m *Minimax) root(b *game.Board, depth int, player game.Player) (int, int) {
	s := m.newSearch(player, m.rand)
	s.metrics.AddNode()
	columns := s.order(b)
	if score, ok := s.terminal(b, depth, columns, nil); ok {
		return columns[0], score
	}

	seeds := make([]uint64, len(columns))
	for i := range seeds {
		seeds[i] = m.rand.Uint64()
	}
	if m.goroutines > 1 {
		return m.parallel(b, depth, player, columns, seeds)
	}

	alpha := m.alpha
	best, value := columns[0], math.MinInt
	for i, column := range columns {
		score := m.branch(b, column, depth, alpha, player, seeds[i])
		if score > value {
			value, best = score, column
		}
		alpha = max(alpha, value)
		if alpha >= m.beta {
			if i < len(columns)-1 {
				s.metrics.AddPrune()
			}
			break
		}
	}
	return best, value
}

// parallel searches every root candidate on a pool of goroutines with the root window, then
// folds the scores in the shuffled order the way root does. Inside [alpha, beta] a score does
// not depend on alpha. Only a fail-high bound does, so a candidate that cuts the root after
// alpha was raised is searched again with the raised alpha.
func (m *Minimax) parallel(b *game.Board, depth int, player game.Player, columns []int, seeds []uint64) (int, int) {
	scores := make([]int, len(columns))

	task := make(chan int, len(columns))
	for i := range columns {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(columns)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := range task {
				scores[j] = m.branch(b.Clone(), columns[j], depth, m.alpha, player, seeds[j])
			}
		}()
	}
	wg.Wait()

	alpha := m.alpha
	best, value := columns[0], math.MinInt
	for i, column := range columns {
		score := scores[i]
		if alpha > m.alpha && score >= m.beta {
			score = m.branch(b, column, depth, alpha, player, seeds[i])
		}
		if score > value {
			value, best = score, column
		}
		alpha = max(alpha, value)
		if alpha >= m.beta {
			break
		}
	}
	return best, value
}

// branch scores the root candidate column with its own move-order source.
func (m *Minimax) branch(b *game.Board, column, depth, alpha int, player game.Player, seed uint64) int {
	s := m.newSearch(player, rand.New(rand.NewSource(seed)))
	return s.child(b, column, depth, alpha, m.beta, player)
}

func (m *Minimax) newSearch(player game.Player, r *rand.Rand) *search {
	return &search{
		maximizer: player,
		evaluate:  m.evaluate,
		rand:      r,
		inPlace:   m.inPlace,
		metrics:   m.metrics,
	}
}

// search holds the state of one recursive descent. It is not safe for concurrent use.
type search struct {
	maximizer game.Player
	evaluate  game.Evaluator
	rand      *rand.Rand
	inPlace   bool
	metrics   metrics.Collector
}

// order returns the valid columns of b in shuffled order.
func (s *search) order(b *game.Board) []int {
	columns := b.ValidColumns()
	s.rand.Shuffle(len(columns), func(i, j int) {
		columns[i], columns[j] = columns[j], columns[i]
	})
	return columns
}

// winner reports who holds a line on b. When last is set the parent board had no line,
// so only the token just placed can complete one.
func (s *search) winner(b *game.Board, last *game.Move) game.Player {
	if last != nil {
		if game.HasWinThrough(b, last.Player, last.Row, last.Column) {
			return last.Player
		}
		return game.Empty
	}
	for _, p := range []game.Player{s.maximizer, s.maximizer.Opponent()} {
		if game.HasWin(b, p) {
			return p
		}
	}
	return game.Empty
}

// terminal scores b when it ends the search: a line for either player, no column left, or
// no depth left.
func (s *search) terminal(b *game.Board, depth int, columns []int, last *game.Move) (int, bool) {
	if winner := s.winner(b, last); winner != game.Empty {
		s.metrics.AddTerminal()
		if winner == s.maximizer {
			return WinScore, true
		}
		return -WinScore, true
	}
	if len(columns) == 0 {
		s.metrics.AddTerminal()
		return 0, true
	}
	if depth <= 0 {
		s.metrics.AddLeaf()
		return s.evaluate(b, s.maximizer), true
	}
	return 0, false
}

// node returns the best column at b for toMove and its score. The column is the first of
// the shuffled order when b is terminal, or -1 if b has no valid column.
func (s *search) node(b *game.Board, depth, alpha, beta int, toMove game.Player, last *game.Move) (int, int) {
	s.metrics.AddNode()
	columns := s.order(b)
	best := -1
	if len(columns) > 0 {
		best = columns[0]
	}

	if score, ok := s.terminal(b, depth, columns, last); ok {
		return best, score
	}

	maximizing := toMove == s.maximizer
	value := math.MaxInt
	if maximizing {
		value = math.MinInt
	}
	for i, column := range columns {
		score := s.child(b, column, depth, alpha, beta, toMove)
		if maximizing {
			if score > value {
				value, best = score, column
			}
			alpha = max(alpha, value)
		} else {
			if score < value {
				value, best = score, column
			}
			beta = min(beta, value)
		}
		if alpha >= beta {
			if i < len(columns)-1 {
				s.metrics.AddPrune()
			}
			break
		}
	}
	return best, value
}

// child plays column for toMove and scores the resulting board one ply shallower.
func (s *search) child(b *game.Board, column, depth, alpha, beta int, toMove game.Player) int {
	board := b
	if !s.inPlace {
		board = b.Clone()
	}
	row, err := board.ApplyMove(column, toMove)
	if err != nil {
		panic(fmt.Sprintf("search played an invalid column: %v", err))
	}

	_, score := s.node(board, depth-1, alpha, beta, toMove.Opponent(), &game.Move{Player: toMove, Column: column, Row: row})

	if s.inPlace {
		if _, err := board.Undo(column); err != nil {
			panic(fmt.Sprintf("search failed to undo column %d: %v", column, err))
		}
	}
	return score
}
