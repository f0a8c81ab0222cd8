package search

import (
	"math"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// searchParallel searches every root move with a full window on its own
// board copy. Full windows give exact scores, so picking the lowest index
// among the best scores matches the sequential search.
func (s *Searcher) searchParallel(board *chess.Board, moves []chess.Move, depth int) Result {
	maximizing := board.SideToMove() == chess.White

	pool := worker.NewPool(s.rootSearchFunc(depth, !maximizing),
		worker.WithWorkers(s.workers),
		worker.WithBufferSize(len(moves)),
	)
	pool.Start()

	for i, move := range moves {
		child := board.Copy()
		engine.MakeMove(child, move)
		pool.Submit(worker.WorkItem{Index: i, Move: move, Board: child})
	}
	go pool.Close()

	scores := make([]int, len(moves))
	for r := range pool.Results() {
		scores[r.Index] = r.Score
		s.nodes += r.Nodes
		s.logger.Debug().Str("move", r.Move.String()).Int("score", r.Score).Msg("root move")
	}

	best := Result{Move: moves[0], Score: scores[0], HasMove: true}
	for i := 1; i < len(moves); i++ {
		if better(scores[i], best.Score, maximizing) {
			best.Move = moves[i]
			best.Score = scores[i]
		}
	}
	best.Nodes = s.nodes
	return best
}

// rootSearchFunc returns the worker function that searches one root move.
// Each call uses a fresh Searcher so node counts are not shared.
func (s *Searcher) rootSearchFunc(depth int, maximizing bool) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		child := &Searcher{evaluator: s.evaluator, workers: 1, logger: s.logger}
		score := child.AlphaBeta(item.Board, depth-1, maximizing, math.MinInt, math.MaxInt)
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Score: score,
			Nodes: child.nodes,
		}
	}
}
