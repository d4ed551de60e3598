package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const rowSeparator = "---+---+---\n"

// renderView - writes the board, the status line and the move list.
func (that *Server) renderView(writer io.Writer, view *entity.GameView) error {
	var b strings.Builder

	b.WriteString("\n")
	for r := 0; r < entity.RowSize; r++ {
		if r > 0 {
			b.WriteString(rowSeparator)
		}

		row := view.Board.Row(r)
		cells := make([]string, 0, entity.RowSize)
		for _, cell := range row {
			if cell == entity.EmptyCell {
				cell = that.emptyGlyph
			}
			cells = append(cells, " "+cell+" ")
		}
		b.WriteString(strings.Join(cells, "|"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(view.Status)
	b.WriteString("\n")

	for step, label := range view.Moves {
		marker := " "
		if step == view.Step {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %d. %s\n", marker, step, label)
	}

	if _, err := io.WriteString(writer, b.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}
