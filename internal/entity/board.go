package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 9
	RowSize   = 3
)

// WinCombos - the eight winning lines in canonical order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major. It is a value type, so every copy is an independent snapshot.
type Board [BoardSize]string

func NewBoard() Board {
	return Board{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Row returns the three cells of row r (0..2).
func (that Board) Row(r int) [RowSize]string {
	return [RowSize]string{that[r*RowSize], that[r*RowSize+1], that[r*RowSize+2]}
}

// Line returns the mark occupying every cell of the first complete winning line, or EmptyCell.
func (that Board) Line() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// Result - X or O for a win, PlayerTie for a full board without a line, EmptyCell while in progress.
func (that Board) Result() string {
	if winner := that.Line(); winner != EmptyCell {
		return winner
	}

	// the game will continue until all the squares are full
	if !that.IsFull() {
		return EmptyCell
	}

	return PlayerTie
}

func IsPlayerMark(mark string) bool {
	return mark == PlayerX || mark == PlayerO
}
