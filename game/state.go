package game

import (
	"fmt"
	"strings"
)

// MancalaBoard is a Kalah-style board: each seat owns a row of playable cups
// and a score cup to the right of that row.
type MancalaBoard struct {
	cups       [2][]int
	scoreCups  [2]int
	extraTurn  bool
	totalBeads int
}

var _ Board = (*MancalaBoard)(nil)
var _ Features = (*MancalaBoard)(nil)

// NewMancalaBoard creates a board with the given number of cups per side and
// beads per cup.
func NewMancalaBoard(cups, beads int) *MancalaBoard {
	if cups <= 0 || beads < 0 {
		panic(fmt.Sprintf("invalid board size: %d cups, %d beads", cups, beads))
	}
	b := &MancalaBoard{totalBeads: 2 * cups * beads}
	for i := range b.cups {
		b.cups[i] = make([]int, cups)
		for j := range b.cups[i] {
			b.cups[i][j] = beads
		}
	}
	return b
}

// NewMancalaBoardFrom builds a board from explicit cup and score counts. Both
// rows must have the same length. A position that is already over is swept
// the same way a finishing move would sweep it.
func NewMancalaBoardFrom(p1Cups, p2Cups []int, p1Score, p2Score int) (*MancalaBoard, error) {
	if len(p1Cups) == 0 || len(p1Cups) != len(p2Cups) {
		return nil, fmt.Errorf("cup rows must be non-empty and of equal length, got %d and %d", len(p1Cups), len(p2Cups))
	}
	b := &MancalaBoard{scoreCups: [2]int{p1Score, p2Score}}
	b.cups[0] = append([]int(nil), p1Cups...)
	b.cups[1] = append([]int(nil), p2Cups...)
	b.totalBeads = p1Score + p2Score
	for _, row := range b.cups {
		for _, beads := range row {
			if beads < 0 {
				return nil, fmt.Errorf("negative bead count %d", beads)
			}
			b.totalBeads += beads
		}
	}
	if b.GameOver() {
		b.sweep()
	}
	return b, nil
}

func (b *MancalaBoard) NumCups() int {
	return len(b.cups[0])
}

func (b *MancalaBoard) LegalMoves(seat Seat) []Move {
	row := b.row(seat)
	moves := make([]Move, 0, len(row))
	for i, beads := range row {
		if beads > 0 {
			moves = append(moves, Move(i+1))
		}
	}
	return moves
}

func (b *MancalaBoard) LegalMove(seat Seat, move Move) bool {
	if !seat.Valid() {
		return false
	}
	row := b.row(seat)
	return move >= 1 && int(move) <= len(row) && row[move-1] > 0
}

// MakeMove sows the beads of the chosen cup and reports whether the mover
// goes again. A move that ends the game sweeps the remaining beads into
// their owners' score cups and never grants another turn.
func (b *MancalaBoard) MakeMove(seat Seat, move Move) bool {
	if !b.LegalMove(seat, move) {
		panic(fmt.Sprintf("illegal move %d for player %d", move, seat))
	}

	again := b.sow(seat, move)
	if b.GameOver() {
		b.sweep()
		again = false
	}
	b.extraTurn = again
	return again
}

func (b *MancalaBoard) sow(seat Seat, move Move) bool {
	own := index(seat)
	n := b.NumCups()

	side := own
	cup := int(move) - 1
	beads := b.cups[side][cup]
	b.cups[side][cup] = 0

	// Position cup == n is the score cup of side
	for beads > 0 {
		cup++
		if cup > n || (cup == n && side != own) {
			side = 1 - side
			cup = 0
		}
		if cup == n {
			b.scoreCups[own]++
		} else {
			b.cups[side][cup]++
		}
		beads--
	}

	if cup == n {
		return true
	}

	// Capture: last bead landed in an empty cup of our own
	if side == own && b.cups[side][cup] == 1 {
		opposite := n - 1 - cup
		b.scoreCups[own] += b.cups[side][cup] + b.cups[1-own][opposite]
		b.cups[side][cup] = 0
		b.cups[1-own][opposite] = 0
	}
	return false
}

func (b *MancalaBoard) sweep() {
	for side := range b.cups {
		for i, beads := range b.cups[side] {
			b.scoreCups[side] += beads
			b.cups[side][i] = 0
		}
	}
}

// GameOver is true once either row of playable cups is empty.
func (b *MancalaBoard) GameOver() bool {
	for _, row := range b.cups {
		if sum(row) == 0 {
			return true
		}
	}
	return false
}

// HasWon is true when the game is over and seat banked strictly more beads
// than its opponent. On a draw neither seat has won.
func (b *MancalaBoard) HasWon(seat Seat) bool {
	if !seat.Valid() || !b.GameOver() {
		return false
	}
	return b.scoreCups[index(seat)] > b.scoreCups[index(seat.Opponent())]
}

func (b *MancalaBoard) Copy() Board {
	c := &MancalaBoard{
		scoreCups:  b.scoreCups,
		extraTurn:  b.extraTurn,
		totalBeads: b.totalBeads,
	}
	for i := range b.cups {
		c.cups[i] = make([]int, len(b.cups[i]))
		copy(c.cups[i], b.cups[i])
	}
	return c
}

func (b *MancalaBoard) Banked(seat Seat) int {
	return b.scoreCups[index(seat)]
}

func (b *MancalaBoard) Cups(seat Seat) []int {
	row := b.row(seat)
	out := make([]int, len(row))
	copy(out, row)
	return out
}

func (b *MancalaBoard) GrantedExtraTurn() bool {
	return b.extraTurn
}

// TotalBeads is the number of beads in play, banked ones included. It never
// changes over a game.
func (b *MancalaBoard) TotalBeads() int {
	return b.totalBeads
}

// String draws player 2's row right to left on top so that cups face each
// other the way they do on a real board.
func (b *MancalaBoard) String() string {
	n := b.NumCups()
	var sb strings.Builder

	sb.WriteString("P2     ")
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%3d ", b.cups[1][i])
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "   %3d ", b.scoreCups[1])
	sb.WriteString(strings.Repeat("    ", n))
	fmt.Fprintf(&sb, "%3d\n", b.scoreCups[0])

	sb.WriteString("P1     ")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%3d ", b.cups[0][i])
	}
	sb.WriteString("\n")

	sb.WriteString("cup    ")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%3d ", i+1)
	}
	sb.WriteString("\n")
	return sb.String()
}

func (b *MancalaBoard) row(seat Seat) []int {
	return b.cups[index(seat)]
}

func index(seat Seat) int {
	if !seat.Valid() {
		panic(fmt.Sprintf("invalid seat %d", seat))
	}
	return int(seat) - 1
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
