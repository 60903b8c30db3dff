// meta/meta.go
package meta

// DefaultCups is the number of playable cups per side.
const DefaultCups = 6

// DefaultBeads is the number of beads each cup starts with.
const DefaultBeads = 4

// DefaultCustomPly bounds the Custom strategy's alpha-beta depth. At 9 plies a
// standard board is searched in a few seconds.
const DefaultCustomPly = 9

// DefaultSeed seeds the Random strategy.
const DefaultSeed = 1

// MaxTurns stops runaway games. A standard game is far shorter.
const MaxTurns = 500

// Evaluator constants.
const (
	BaselineWin     = 100.0
	BaselineLoss    = 0.0
	BaselineNeutral = 50.0

	HeuristicWin       = 100.0
	HeuristicLoss      = -100.0
	HeuristicExtraTurn = 10.0
)
