package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mancala/game"
)

// ConsoleInput reads cup numbers, one per line.
type ConsoleInput struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsoleInput(in io.Reader, out io.Writer) *ConsoleInput {
	return &ConsoleInput{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadMove shows the board and prompts until a line parses as a number.
func (c *ConsoleInput) ReadMove(board game.Board, seat game.Seat) (game.Move, error) {
	if s, ok := board.(fmt.Stringer); ok {
		fmt.Fprint(c.out, s.String())
	}
	for {
		fmt.Fprintf(c.out, "Player %d, please enter your move: ", seat)
		if !c.scanner.Scan() {
			if err := c.scanner.Err(); err != nil {
				return game.NoMove, err
			}
			return game.NoMove, io.ErrUnexpectedEOF
		}

		line := strings.TrimSpace(c.scanner.Text())
		cup, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(c.out, "%q is not a cup number\n", line)
			continue
		}
		return game.Move(cup), nil
	}
}

func (c *ConsoleInput) Reject(move game.Move) {
	fmt.Fprintf(c.out, "%d is not valid\n", move)
}
