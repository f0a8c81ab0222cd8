package output

import (
	"sort"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/search"
)

// Report collects everything computed for one position. Sections left nil
// were not requested.
type Report struct {
	FEN      string          `json:"fen"`
	Board    string          `json:"board,omitempty"`
	Play     *PlayReport     `json:"play,omitempty"`
	Analysis *AnalysisReport `json:"analysis,omitempty"`
	Search   *SearchReport   `json:"search,omitempty"`
	Perft    *PerftReport    `json:"perft,omitempty"`
	Legal    []string        `json:"legal,omitempty"`
	Eval     *EvalReport     `json:"eval,omitempty"`
	Attacks  *AttacksReport  `json:"attacks,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// PlayReport is the result of a move request.
type PlayReport struct {
	Move    string `json:"move"`
	Outcome string `json:"outcome"`
	FEN     string `json:"fen"`
	Error   string `json:"error,omitempty"`
}

// SearchReport is the result of a best-move search.
type SearchReport struct {
	BestMove string `json:"bestMove,omitempty"`
	Score    int    `json:"score"`
	Nodes    uint64 `json:"nodes"`
	Depth    int    `json:"depth"`
	Status   string `json:"status"`
}

// AnalysisReport compares a played move with the best move found in the
// position it was played from.
type AnalysisReport struct {
	Move     string `json:"move"`
	BestMove string `json:"bestMove,omitempty"`
	Score    int    `json:"score"`
	Nodes    uint64 `json:"nodes"`
	Depth    int    `json:"depth"`
	IsBest   bool   `json:"isBest"`
}

// PerftReport holds a perft count and optionally its per-move split.
type PerftReport struct {
	Depth  int          `json:"depth"`
	Nodes  uint64       `json:"nodes"`
	Divide []DivideLine `json:"divide,omitempty"`
}

// DivideLine is the perft count below one root move.
type DivideLine struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// EvalReport is the static evaluation of a position.
type EvalReport struct {
	Score   int    `json:"score"`
	Endgame bool   `json:"endgame"`
	Status  string `json:"status"`
	InCheck bool   `json:"inCheck"`
}

// AttacksReport lists the squares each colour attacks.
type AttacksReport struct {
	White []string `json:"white"`
	Black []string `json:"black"`
}

// NewPlayReport converts a move request result.
func NewPlayReport(moveText string, result engine.PlayResult, err error) *PlayReport {
	pr := &PlayReport{
		Move:    moveText,
		Outcome: result.Outcome.String(),
		FEN:     result.FEN,
	}
	if err != nil {
		pr.Error = err.Error()
	}
	return pr
}

// NewSearchReport converts a search result.
func NewSearchReport(result search.Result) *SearchReport {
	return &SearchReport{
		BestMove: result.MoveText(),
		Score:    result.Score,
		Nodes:    result.Nodes,
		Depth:    result.Depth,
		Status:   result.Status.String(),
	}
}

// NewAnalysisReport converts a move analysis.
func NewAnalysisReport(moveText string, a search.Analysis) *AnalysisReport {
	return &AnalysisReport{
		Move:     moveText,
		BestMove: a.Best.MoveText(),
		Score:    a.Best.Score,
		Nodes:    a.Best.Nodes,
		Depth:    a.Best.Depth,
		IsBest:   a.IsBest,
	}
}

// NewPerftReport builds a perft report; divide may be nil.
func NewPerftReport(depth int, nodes uint64, divide map[string]uint64) *PerftReport {
	pr := &PerftReport{Depth: depth, Nodes: nodes}
	if len(divide) == 0 {
		return pr
	}
	moves := make([]string, 0, len(divide))
	for m := range divide {
		moves = append(moves, m)
	}
	sort.Strings(moves)
	for _, m := range moves {
		pr.Divide = append(pr.Divide, DivideLine{Move: m, Nodes: divide[m]})
	}
	return pr
}

// NewAttacksReport expands the attack masks of both colours.
func NewAttacksReport(white, black uint64) *AttacksReport {
	return &AttacksReport{
		White: maskSquares(white),
		Black: maskSquares(black),
	}
}

// MoveStrings formats moves in UCI form, keeping generation order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

// maskSquares lists the squares set in a rank-major mask, a1 first.
func maskSquares(mask uint64) []string {
	squares := []string{}
	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		if mask&(1<<uint(i)) != 0 {
			squares = append(squares, chess.SquareFromIndex(i).String())
		}
	}
	return squares
}
