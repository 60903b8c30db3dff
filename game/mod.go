package game

// Seat identifies one of the two players sitting at the board.
type Seat int

const (
	NoSeat Seat = 0
	One    Seat = 1
	Two    Seat = 2
)

// Opponent returns the other seat. Seats are fixed, so this is a plain lookup.
func (s Seat) Opponent() Seat {
	return 2 - s + 1
}

func (s Seat) Valid() bool {
	return s == One || s == Two
}

// Move is a cup number on the mover's side, starting at 1.
type Move int

// NoMove means the player cannot move. It is never a legal move.
const NoMove Move = -1

// Board is everything the search needs from the rules engine.
// MakeMove mutates in place, so search works on snapshots from Copy.
type Board interface {
	LegalMoves(seat Seat) []Move
	LegalMove(seat Seat, move Move) bool
	MakeMove(seat Seat, move Move) (again bool)
	GameOver() bool
	HasWon(seat Seat) bool
	Copy() Board
}

// Features exposes the per-player counters the heuristic evaluator reads.
type Features interface {
	Banked(seat Seat) int
	Cups(seat Seat) []int
	// GrantedExtraTurn reports whether the move that produced this board lets
	// the mover go again.
	GrantedExtraTurn() bool
}
