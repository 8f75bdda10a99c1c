// Package puzzle implements the classic 3×3 sliding-tile board as a
// search.Layout. Each move slides the blank into an adjacent cell at uniform
// cost 1, and no heuristic information is provided (Heuristic is identically
// zero), so the board is a pure uniform-cost / breadth-first domain.
//
// Encoding: exactly 9 characters over {1..8, '.'} in row-major order, with
// '.' marking the blank. Rendering is a 3-line grid with the blank shown as
// a space.
//
// Errors (sentinel):
//
//	– ErrBadLength if the encoding is not exactly 9 characters.
//	– ErrBadSymbol if the encoding contains a character outside {1..8, '.'}.
//	– ErrBadBlank if the encoding does not contain exactly one '.'.
package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/statesearch/search"
)

// Sentinel errors for Board construction.
var (
	// ErrBadLength indicates an encoding whose length is not 9.
	ErrBadLength = errors.New("puzzle: encoding must be exactly 9 characters")

	// ErrBadSymbol indicates a character outside the {1..8, '.'} alphabet.
	ErrBadSymbol = errors.New("puzzle: encoding may contain only 1..8 and '.'")

	// ErrBadBlank indicates an encoding without exactly one '.'. Sliding is
	// defined relative to the single blank cell, so a board with zero or
	// several blanks has no well-formed move set.
	ErrBadBlank = errors.New("puzzle: encoding must contain exactly one '.'")
)

// dim is the board side length; boards are always dim×dim.
const dim = 3

// Board is one immutable state of the 8-puzzle. The blank is stored as 0.
type Board struct {
	cells [dim * dim]int
	step  float64 // 1 for a state produced by a slide, 0 for a parsed root
}

// New parses a 9-character row-major encoding into a Board.
func New(s string) (Board, error) {
	if len(s) != dim*dim {
		return Board{}, fmt.Errorf("%w: got %d", ErrBadLength, len(s))
	}

	var b Board
	blanks := 0
	for i := 0; i < dim*dim; i++ {
		c := s[i]
		switch {
		case c == '.':
			b.cells[i] = 0
			blanks++
		case c >= '1' && c <= '8':
			b.cells[i] = int(c - '0')
		default:
			return Board{}, fmt.Errorf("%w: %q at position %d", ErrBadSymbol, c, i)
		}
	}
	if blanks != 1 {
		return Board{}, fmt.Errorf("%w: got %d", ErrBadBlank, blanks)
	}

	return b, nil
}

// Children returns the up-to-4 boards reachable by sliding the blank into an
// orthogonally adjacent cell.
func (b Board) Children() []search.Layout {
	blank := 0
	for i, v := range b.cells {
		if v == 0 {
			blank = i
			break
		}
	}
	row, col := blank/dim, blank%dim

	// N, S, W, E offsets in (row, col) space.
	moves := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	children := make([]search.Layout, 0, 4)
	for _, m := range moves {
		nr, nc := row+m[0], col+m[1]
		if nr < 0 || nr >= dim || nc < 0 || nc >= dim {
			continue
		}
		child := Board{cells: b.cells, step: 1}
		child.cells[blank], child.cells[nr*dim+nc] = child.cells[nr*dim+nc], 0
		children = append(children, child)
	}

	return children
}

// StepCost reports 1 for any slide; 0 for a board built by New.
func (b Board) StepCost() float64 { return b.step }

// IsGoal reports structural equality with goal.
func (b Board) IsGoal(goal search.Layout) bool {
	g, ok := goal.(Board)

	return ok && b.cells == g.cells
}

// Heuristic is identically zero: the puzzle domain is searched uninformed.
func (b Board) Heuristic(search.Layout) float64 { return 0 }

// Key returns the compact 9-character encoding, '.' marking the blank.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(dim * dim)
	for _, v := range b.cells {
		if v == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(byte('0' + v))
		}
	}

	return sb.String()
}

// String renders the board as three 3-character lines, blank as a space.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(dim * (dim + 1))
	for i, v := range b.cells {
		if v == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteByte(byte('0' + v))
		}
		if i%dim == dim-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
