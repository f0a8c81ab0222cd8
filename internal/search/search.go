// Package search finds the best move in a position with minimax and
// alpha-beta pruning over the legal move tree.
package search

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/eval"
)

// MateScore is the base score of a checkmate. Mates found with more depth
// left score higher, so the search prefers the quickest mate.
const MateScore = 100000

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 3

// Evaluator scores a position in centipawns, positive favouring White.
// Implementations used with more than one worker must be safe for
// concurrent use.
type Evaluator interface {
	Evaluate(board *chess.Board) int
}

// Searcher runs depth-limited searches and counts the nodes it visits.
// A Searcher is not safe for concurrent use; parallel root search gives
// each worker its own.
type Searcher struct {
	evaluator Evaluator
	workers   int
	logger    zerolog.Logger
	nodes     uint64
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithEvaluator replaces the default material and piece-square evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(s *Searcher) {
		if e != nil {
			s.evaluator = e
		}
	}
}

// WithWorkers searches root moves on n goroutines when n > 1.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithLogger sets the logger for root move and summary messages.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// NewSearcher creates a Searcher. By default it is sequential, uses
// eval.Evaluator and does not log.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		evaluator: eval.Evaluator{},
		workers:   1,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Nodes returns the number of nodes visited since the last reset.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// ResetNodes clears the node counter.
func (s *Searcher) ResetNodes() {
	s.nodes = 0
}

// Result is the outcome of a root search. A forced mate scores
// MateScore plus the depth left when the mated side ran out of moves, so
// mate scores exceed a flat MateScore by up to the search depth.
type Result struct {
	Move    chess.Move
	HasMove bool   // false when the side to move has no legal move
	Score   int    // centipawns, positive favouring White
	Nodes   uint64 // AlphaBeta calls below the root; the root is not counted
	Depth   int
	Status  chess.GameStatus // status of the searched position
}

// MoveText returns the best move as "<from> <to>", or "" without one.
func (r Result) MoveText() string {
	if !r.HasMove {
		return ""
	}
	return r.Move.From.String() + " " + r.Move.To.String()
}

// FindBestMove searches a FEN position with a default Searcher.
func FindBestMove(fen string, depth int) (Result, error) {
	return NewSearcher().FindBestMove(fen, depth)
}

// FindBestMove decodes the position and searches it to the given depth.
func (s *Searcher) FindBestMove(fen string, depth int) (Result, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return Result{}, err
	}
	return s.Search(board, depth)
}

// Search finds the best move for the side to move. White maximizes and
// Black minimizes; among equal scores the first move in generation order
// wins. The board is restored before returning.
//
// A position without legal moves returns errors.ErrNoLegalMoves together
// with a Result whose Status tells checkmate from stalemate.
func (s *Searcher) Search(board *chess.Board, depth int) (Result, error) {
	if depth < 1 {
		return Result{}, errors.Wrapf(errors.ErrInvalidDepth, "depth %d", depth)
	}

	start := time.Now()
	s.ResetNodes()

	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		status := engine.Status(board)
		return Result{Depth: depth, Nodes: s.nodes, Status: status},
			errors.Wrapf(errors.ErrNoLegalMoves, "%s", status)
	}

	var result Result
	if s.workers > 1 && len(moves) > 1 {
		result = s.searchParallel(board, moves, depth)
	} else {
		result = s.searchSequential(board, moves, depth)
	}
	result.Depth = depth
	result.Status = chess.InProgress

	s.logger.Info().
		Str("best", result.MoveText()).
		Int("score", result.Score).
		Uint64("nodes", result.Nodes).
		Int("depth", depth).
		Int("workers", s.workers).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")

	return result, nil
}

// searchSequential runs alpha-beta over the root moves, narrowing the window
// as better moves are found.
func (s *Searcher) searchSequential(board *chess.Board, moves []chess.Move, depth int) Result {
	maximizing := board.SideToMove() == chess.White
	alpha, beta := math.MinInt, math.MaxInt

	var best Result
	for _, move := range moves {
		undo := engine.MakeMove(board, move)
		score := s.AlphaBeta(board, depth-1, !maximizing, alpha, beta)
		engine.UnmakeMove(board, move, undo)

		s.logger.Debug().Str("move", move.String()).Int("score", score).Msg("root move")

		if !best.HasMove || better(score, best.Score, maximizing) {
			best.Move = move
			best.Score = score
			best.HasMove = true
		}
		if maximizing {
			alpha = max(alpha, best.Score)
		} else {
			beta = min(beta, best.Score)
		}
	}
	best.Nodes = s.nodes
	return best
}

// better reports whether score beats best for the side choosing.
func better(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// AlphaBeta returns the minimax value of the position searched to depth
// plies, skipping subtrees that cannot change the result. maximizing is
// true when White is to move at this node. Each call counts one node.
//
// Depth 0 returns the static evaluation. A node without legal moves scores
// a mate against the side to move, -(MateScore+depth) for White and
// MateScore+depth for Black, or 0 for stalemate.
func (s *Searcher) AlphaBeta(board *chess.Board, depth int, maximizing bool, alpha, beta int) int {
	s.nodes++
	if depth == 0 {
		return s.evaluator.Evaluate(board)
	}

	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		return terminalScore(board, depth, maximizing)
	}

	if maximizing {
		best := math.MinInt
		for _, move := range moves {
			undo := engine.MakeMove(board, move)
			score := s.AlphaBeta(board, depth-1, false, alpha, beta)
			engine.UnmakeMove(board, move, undo)

			best = max(best, score)
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range moves {
		undo := engine.MakeMove(board, move)
		score := s.AlphaBeta(board, depth-1, true, alpha, beta)
		engine.UnmakeMove(board, move, undo)

		best = min(best, score)
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// Minimax is AlphaBeta without pruning. It visits the whole tree and is
// kept as the reference AlphaBeta must agree with.
func (s *Searcher) Minimax(board *chess.Board, depth int, maximizing bool) int {
	s.nodes++
	if depth == 0 {
		return s.evaluator.Evaluate(board)
	}

	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		return terminalScore(board, depth, maximizing)
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, move := range moves {
		undo := engine.MakeMove(board, move)
		score := s.Minimax(board, depth-1, !maximizing)
		engine.UnmakeMove(board, move, undo)

		if better(score, best, maximizing) {
			best = score
		}
	}
	return best
}

// terminalScore scores a node whose side to move has no legal move.
func terminalScore(board *chess.Board, depth int, maximizing bool) int {
	if !engine.IsInCheck(board, board.SideToMove()) {
		return 0
	}
	if maximizing {
		return -(MateScore + depth)
	}
	return MateScore + depth
}
