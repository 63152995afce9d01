// Package table renders small aligned tables (the session scoreboard) with
// ansipixels.
package table // import "fortio.org/blackjack/ansipixels/table"

import (
	"strings"

	"fortio.org/blackjack/ansipixels"
)

type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

type BorderStyle int

const (
	BorderNone         BorderStyle = iota // No borders at all
	BorderColumns                         // Only vertical lines between columns
	BorderOuter                           // Only a rounded box around the table
	BorderOuterColumns                    // Outer box + column separators
)

// WriteTable renders the table centered horizontally starting at line y and
// returns its width (outer border included when part of the lines).
func WriteTable(
	ap *ansipixels.AnsiPixels, y int, alignment []Alignment,
	columnSpacing int, rows [][]string, borderStyle BorderStyle,
) int {
	lines, width := CreateTableLines(ap, alignment, columnSpacing, rows, borderStyle)
	leftX := (ap.W - width) / 2
	for i, l := range lines {
		ap.WriteAtStr(leftX, y+i, l)
	}
	if borderStyle == BorderOuter {
		ap.DrawRoundBox(leftX-1, y-1, width+2, len(lines)+2)
	}
	return width
}

func horizontalLine(colWidths []int, columnSpacing int, left, middle, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for j, w := range colWidths {
		sb.WriteString(strings.Repeat(ansipixels.Horizontal, w+2*columnSpacing))
		if j < len(colWidths)-1 {
			sb.WriteString(middle)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

func pad(sb *strings.Builder, cell string, delta int, align Alignment) {
	switch align {
	case Left:
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", delta))
	case Center:
		sb.WriteString(strings.Repeat(" ", delta/2))
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", delta-delta/2))
	case Right:
		sb.WriteString(strings.Repeat(" ", delta))
		sb.WriteString(cell)
	}
}

// CreateTableLines formats rows into equal width lines. Every row must have
// len(alignment) cells.
func CreateTableLines(ap *ansipixels.AnsiPixels,
	alignment []Alignment,
	columnSpacing int,
	rows [][]string,
	borderStyle BorderStyle,
) ([]string, int) {
	ncols := len(alignment)
	colWidths := make([]int, ncols)
	cellWidths := make([][]int, len(rows))
	for i, row := range rows {
		if len(row) != ncols {
			panic("inconsistent number of columns in table")
		}
		cellWidths[i] = make([]int, ncols)
		for j, cell := range row {
			w := ap.ScreenWidth(cell)
			cellWidths[i][j] = w
			colWidths[j] = max(colWidths[j], w)
		}
	}
	columnBorders := borderStyle == BorderColumns || borderStyle == BorderOuterColumns
	outer := borderStyle == BorderOuterColumns
	width := 0
	for _, w := range colWidths {
		width += w
		if columnBorders {
			width += 2 * columnSpacing
		}
	}
	if ncols > 1 {
		if columnBorders {
			width += ncols - 1
		} else {
			width += columnSpacing * (ncols - 1)
		}
	}
	lines := make([]string, 0, len(rows)+2)
	if outer {
		width += 2
		lines = append(lines, horizontalLine(colWidths, columnSpacing,
			ansipixels.SquareTopLeft, ansipixels.TopT, ansipixels.SquareTopRight))
	}
	spacing := strings.Repeat(" ", columnSpacing)
	var sb strings.Builder
	for i, row := range rows {
		sb.Reset()
		if outer {
			sb.WriteString(ansipixels.Vertical)
		}
		for j, cell := range row {
			if columnBorders {
				sb.WriteString(spacing)
			}
			pad(&sb, cell, colWidths[j]-cellWidths[i][j], alignment[j])
			if columnBorders {
				sb.WriteString(spacing)
			}
			if j < ncols-1 {
				if columnBorders {
					sb.WriteString(ansipixels.Vertical)
				} else {
					sb.WriteString(spacing)
				}
			}
		}
		if outer {
			sb.WriteString(ansipixels.Vertical)
		}
		lines = append(lines, sb.String())
	}
	if outer {
		lines = append(lines, horizontalLine(colWidths, columnSpacing,
			ansipixels.SquareBottomLeft, ansipixels.BottomT, ansipixels.SquareBottomRight))
	}
	return lines, width
}
