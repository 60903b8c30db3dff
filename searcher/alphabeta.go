package searcher

import (
	"mancala/game"

	"github.com/rs/zerolog/log"
)

// BestMoveAB is BestMove with alpha-beta pruning. It returns the same move and
// score as BestMove for the same inputs while visiting fewer boards.
func (s *Searcher) BestMoveAB(board game.Board, seat game.Seat, depth int) (Score, game.Move) {
	return s.bestChild(board, seat, depth, func(next game.Board) Score {
		// Every root move gets the full window, so node and prune counts
		// depend only on the subtree below that move
		return s.alphaBeta(next, seat.Opponent(), seat, depth-1, MinScore, MaxScore, false)
	})
}

// alphaBeta is fail-hard: results are clamped to [alpha, beta], and a value
// strictly inside the window is exact.
func (s *Searcher) alphaBeta(board game.Board, toMove, root game.Seat, depth int, alpha, beta Score, maximizing bool) Score {
	s.metrics.AddNode()

	if board.GameOver() || depth <= 0 {
		return s.leaf(board, root)
	}

	moves := board.LegalMoves(toMove)
	if len(moves) == 0 {
		log.Warn().Msgf("player %d has no legal moves on a board that is not over", toMove)
		if maximizing {
			return alpha
		}
		return beta
	}

	for _, move := range moves {
		next := board.Copy()
		next.MakeMove(toMove, move)
		v := s.alphaBeta(next, toMove.Opponent(), root, depth-1, alpha, beta, !maximizing)

		if maximizing {
			if v > alpha {
				alpha = v
			}
			if alpha >= beta {
				s.metrics.AddPrune()
				return alpha
			}
		} else {
			if v < beta {
				beta = v
			}
			if beta <= alpha {
				s.metrics.AddPrune()
				return beta
			}
		}
	}

	if maximizing {
		return alpha
	}
	return beta
}
