package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// isPathClear checks that every square strictly between from and to is empty.
// from and to must lie on a common rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq := from.Offset(fileDir, rankDir)
	for sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(fileDir, rankDir)
	}

	return true
}

// Direction tables shared by the attack test and the move generator.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)
