package tui

import "strings"

// wrapCells splits styled cells into display lines: hard breaks on newline
// cells, soft wrap at width preferring the last space, falling back to a
// hard character break for unbroken runs wider than the line.
func wrapCells(cells []styledCell, width int) [][]styledCell {
	var lines [][]styledCell
	line := make([]styledCell, 0, 80)
	lineWidth := 0
	lastSpaceIdx := -1

	flush := func() {
		lines = append(lines, line)
		line = make([]styledCell, 0, 80)
		lineWidth = 0
		lastSpaceIdx = -1
	}

	for i := 0; i < len(cells); {
		item := cells[i]
		if item.isBreak {
			line = append(line, item)
			flush()
			i++
			continue
		}
		if width > 0 && lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				rest := append([]styledCell{}, line[lastSpaceIdx+1:]...)
				lines = append(lines, line[:lastSpaceIdx+1])
				line = rest
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				flush()
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	lines = append(lines, line)
	return lines
}

func renderLine(line []styledCell) string {
	var b strings.Builder
	for _, item := range line {
		b.WriteString(item.s)
	}
	return b.String()
}

func lineWidthOf(line []styledCell) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledCell) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}

// lineOf returns the index of the display line holding the cell at offset,
// or the last line when offset is past the final cell.
func lineOf(lines [][]styledCell, offset int) int {
	for i, line := range lines {
		for _, item := range line {
			if item.idx == offset {
				return i
			}
		}
	}
	if len(lines) == 0 {
		return 0
	}
	return len(lines) - 1
}
