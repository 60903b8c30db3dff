package searcher

import (
	"mancala/game"

	"github.com/rs/zerolog/log"
)

// BestMove picks seat's move on board with a plain minimax search depth plies
// deep. It returns (MinScore, game.NoMove) when seat cannot move.
func (s *Searcher) BestMove(board game.Board, seat game.Seat, depth int) (Score, game.Move) {
	return s.bestChild(board, seat, depth, func(next game.Board) Score {
		return s.minimax(next, seat.Opponent(), seat, depth-1, false)
	})
}

// minimax backs up the value of board with toMove to play. Leaves are always
// scored for root, so maximizing nodes are root's turns and minimizing nodes
// are the opponent's.
func (s *Searcher) minimax(board game.Board, toMove, root game.Seat, depth int, maximizing bool) Score {
	s.metrics.AddNode()

	// Terminal boards ignore the remaining depth
	if board.GameOver() || depth <= 0 {
		return s.leaf(board, root)
	}

	best := MaxScore
	if maximizing {
		best = MinScore
	}

	moves := board.LegalMoves(toMove)
	if len(moves) == 0 {
		log.Warn().Msgf("player %d has no legal moves on a board that is not over", toMove)
		return best
	}

	for _, move := range moves {
		next := board.Copy()
		next.MakeMove(toMove, move)
		v := s.minimax(next, toMove.Opponent(), root, depth-1, !maximizing)
		if maximizing && v > best {
			best = v
		} else if !maximizing && v < best {
			best = v
		}
	}
	return best
}
