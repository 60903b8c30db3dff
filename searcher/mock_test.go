package searcher

import "mancala/game"

// node is a position in a hand-built game tree. Move i leads to children[i-1].
type node struct {
	value    Score
	terminal bool
	children []*node
}

func leaf(value Score) *node {
	return &node{value: value}
}

func branch(children ...*node) *node {
	return &node{children: children}
}

func over(value Score, children ...*node) *node {
	return &node{value: value, terminal: true, children: children}
}

type treeBoard struct {
	node   *node
	played []game.Move
}

func newTreeBoard(root *node) *treeBoard {
	return &treeBoard{node: root}
}

func (b *treeBoard) LegalMoves(seat game.Seat) []game.Move {
	moves := make([]game.Move, len(b.node.children))
	for i := range b.node.children {
		moves[i] = game.Move(i + 1)
	}
	return moves
}

func (b *treeBoard) LegalMove(seat game.Seat, move game.Move) bool {
	return move >= 1 && int(move) <= len(b.node.children)
}

func (b *treeBoard) MakeMove(seat game.Seat, move game.Move) bool {
	b.node = b.node.children[move-1]
	b.played = append(b.played, move)
	return false
}

func (b *treeBoard) GameOver() bool {
	return b.node.terminal
}

func (b *treeBoard) HasWon(seat game.Seat) bool {
	return false
}

func (b *treeBoard) Copy() game.Board {
	return &treeBoard{
		node:   b.node,
		played: append([]game.Move(nil), b.played...),
	}
}

// nodeValue scores a tree board by the value stored on its node.
var nodeValue = EvaluatorFunc(func(board game.Board, _ game.Seat) Score {
	return board.(*treeBoard).node.value
})

// featureless satisfies game.Board but not game.Features.
type featureless struct{ treeBoard }
