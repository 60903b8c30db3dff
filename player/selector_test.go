package player

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"

	"github.com/stretchr/testify/require"
)

type scriptedInput struct {
	moves    []game.Move
	err      error
	rejected []game.Move
}

func (s *scriptedInput) ReadMove(board game.Board, seat game.Seat) (game.Move, error) {
	if len(s.moves) == 0 {
		if s.err != nil {
			return game.NoMove, s.err
		}
		return game.NoMove, io.EOF
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, nil
}

func (s *scriptedInput) Reject(move game.Move) {
	s.rejected = append(s.rejected, move)
}

func TestChooseMove(t *testing.T) {
	heuristic := searcher.NewSearcher(searcher.WithEvaluator(searcher.NewHeuristic()))

	t.Run("minimax uses the player's ply", func(t *testing.T) {
		board := game.NewMancalaBoard(6, 4)
		s := NewSelector(WithSearcher(heuristic))
		_, want := heuristic.BestMove(board, game.One, 3)

		got, err := s.ChooseMove(Player{Seat: game.One, Strategy: Minimax, Ply: 3}, board)

		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("alpha-beta uses the player's ply", func(t *testing.T) {
		board := game.NewMancalaBoard(6, 4)
		board.MakeMove(game.One, 1)
		collector := metrics.NewCollector()
		s := NewSelector(WithSearcher(searcher.NewSearcher(
			searcher.WithEvaluator(searcher.NewHeuristic()),
			searcher.WithMetrics(collector),
		)))
		wantScore, want := heuristic.BestMoveAB(board, game.Two, 4)

		got, metric, err := s.Decide(Player{Seat: game.Two, Strategy: ABPrune, Ply: 4}, board)

		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, "abprune", metric.Strategy)
		require.Equal(t, 4, metric.Depth)
		require.Equal(t, wantScore, metric.Score)
		require.Positive(t, metric.Nodes)
	})

	t.Run("custom uses the configured bound, not the player's ply", func(t *testing.T) {
		board := game.NewMancalaBoard(4, 3)
		collector := metrics.NewCollector()
		s := NewSelector(
			WithSearcher(searcher.NewSearcher(searcher.WithMetrics(collector))),
			WithCustomPly(2),
		)
		_, want := searcher.NewSearcher().BestMoveAB(board, game.One, 2)

		got, metric, err := s.Decide(Player{Seat: game.One, Strategy: Custom, Ply: 7}, board)

		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, 2, metric.Depth)
		require.Equal(t, 2, s.CustomPly())
	})

	t.Run("custom defaults to 9 plies", func(t *testing.T) {
		require.Equal(t, 9, NewSelector().CustomPly())
	})

	t.Run("random picks legal moves reproducibly", func(t *testing.T) {
		board := game.NewMancalaBoard(6, 4)
		p := Player{Seat: game.One, Strategy: Random}
		s1 := NewSelector(WithSeed(3))
		s2 := NewSelector(WithSeed(3))

		for i := 0; i < 20; i++ {
			m1, err := s1.ChooseMove(p, board)
			require.NoError(t, err)
			m2, err := s2.ChooseMove(p, board)
			require.NoError(t, err)

			require.True(t, board.LegalMove(game.One, m1))
			require.Equal(t, m1, m2)
		}
	})

	t.Run("strategies without a search report no score", func(t *testing.T) {
		board := game.NewMancalaBoard(6, 4)
		s := NewSelector(WithInput(&scriptedInput{moves: []game.Move{2}}))

		_, random, err := s.Decide(Player{Seat: game.One, Strategy: Random}, board)
		require.NoError(t, err)
		require.Equal(t, "random", random.Strategy)
		require.True(t, math.IsNaN(random.Score))

		_, human, err := s.Decide(Player{Seat: game.Two, Strategy: Human}, board)
		require.NoError(t, err)
		require.Equal(t, "human", human.Strategy)
		require.True(t, math.IsNaN(human.Score))
	})

	t.Run("human is asked again until the move is legal", func(t *testing.T) {
		board, err := game.NewMancalaBoardFrom([]int{0, 2, 2}, []int{1, 1, 1}, 0, 0)
		require.NoError(t, err)
		input := &scriptedInput{moves: []game.Move{1, 9, 3}}
		s := NewSelector(WithInput(input))

		got, err := s.ChooseMove(Player{Seat: game.One, Strategy: Human}, board)

		require.NoError(t, err)
		require.Equal(t, game.Move(3), got)
		require.Equal(t, []game.Move{1, 9}, input.rejected)
	})

	t.Run("human input errors are returned", func(t *testing.T) {
		board := game.NewMancalaBoard(6, 4)
		boom := errors.New("boom")
		s := NewSelector(WithInput(&scriptedInput{err: boom}))

		_, err := s.ChooseMove(Player{Seat: game.One, Strategy: Human}, board)

		require.ErrorIs(t, err, boom)
	})

	t.Run("human without input", func(t *testing.T) {
		_, err := NewSelector().ChooseMove(Player{Seat: game.One, Strategy: Human}, game.NewMancalaBoard(6, 4))

		require.ErrorIs(t, err, ErrNoInput)
	})

	t.Run("unknown strategy is an error", func(t *testing.T) {
		_, err := NewSelector().ChooseMove(Player{Seat: game.One, Strategy: Strategy(42)}, game.NewMancalaBoard(6, 4))

		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("no legal moves gives NoMove for every strategy", func(t *testing.T) {
		board, err := game.NewMancalaBoardFrom([]int{0, 0}, []int{1, 1}, 3, 0)
		require.NoError(t, err)
		s := NewSelector(WithInput(&scriptedInput{}))

		for _, strategy := range []Strategy{Human, Random, Minimax, ABPrune, Custom} {
			got, err := s.ChooseMove(Player{Seat: game.One, Strategy: strategy, Ply: 2}, board)

			require.NoError(t, err, strategy.String())
			require.Equal(t, game.NoMove, got, strategy.String())
		}
	})

	t.Run("board is not modified", func(t *testing.T) {
		board := game.NewMancalaBoard(6, 4)
		before := board.Copy()
		s := NewSelector(WithSearcher(heuristic), WithCustomPly(3))

		for _, strategy := range []Strategy{Random, Minimax, ABPrune, Custom} {
			_, err := s.ChooseMove(Player{Seat: game.One, Strategy: strategy, Ply: 3}, board)
			require.NoError(t, err)
		}

		require.Equal(t, before, board)
	})
}

func TestConsoleInput(t *testing.T) {
	t.Run("skips lines that are not numbers", func(t *testing.T) {
		var out bytes.Buffer
		input := NewConsoleInput(strings.NewReader("abc\n 4 \n"), &out)

		move, err := input.ReadMove(game.NewMancalaBoard(6, 4), game.Two)

		require.NoError(t, err)
		require.Equal(t, game.Move(4), move)
		require.Contains(t, out.String(), "P1")
		require.Contains(t, out.String(), "Player 2, please enter your move: ")
		require.Contains(t, out.String(), `"abc" is not a cup number`)
	})

	t.Run("end of input", func(t *testing.T) {
		input := NewConsoleInput(strings.NewReader(""), io.Discard)

		_, err := input.ReadMove(game.NewMancalaBoard(6, 4), game.One)

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("with the selector", func(t *testing.T) {
		var out bytes.Buffer
		board, err := game.NewMancalaBoardFrom([]int{0, 2, 2}, []int{1, 1, 1}, 0, 0)
		require.NoError(t, err)
		s := NewSelector(WithInput(NewConsoleInput(strings.NewReader("1\n2\n"), &out)))

		move, err := s.ChooseMove(Player{Seat: game.One, Strategy: Human}, board)

		require.NoError(t, err)
		require.Equal(t, game.Move(2), move)
		require.Contains(t, out.String(), "1 is not valid")
	})
}
