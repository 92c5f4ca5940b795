package shell

import (
	"fmt"
	"strings"

	minigu "github.com/minigu-db/minigu-go"
)

// RenderTable renders a result as an aligned text table: one header row of
// column names over one line per data row. Results without a schema render
// as a row-count summary only.
func RenderTable(styles *Styles, result *minigu.Result) string {
	if styles == nil {
		styles = DefaultStyles()
	}

	if result == nil || len(result.Schema) == 0 {
		return styles.Dim.Render(fmt.Sprintf("(%d rows)", result.RowCount()))
	}

	widths := make([]int, len(result.Schema))
	for i, col := range result.Schema {
		widths[i] = len(col.Name)
	}

	cells := make([][]string, 0, len(result.Data))

	for _, row := range result.Data {
		line := make([]string, len(result.Schema))

		for i := range result.Schema {
			if i < len(row) {
				line[i] = formatCell(row[i])
			}

			if len(line[i]) > widths[i] {
				widths[i] = len(line[i])
			}
		}

		cells = append(cells, line)
	}

	var b strings.Builder

	for i, col := range result.Schema {
		if i > 0 {
			b.WriteString("  ")
		}

		b.WriteString(styles.Header.Render(pad(col.Name, widths[i])))
	}

	b.WriteString("\n")

	for _, line := range cells {
		for i, cell := range line {
			if i > 0 {
				b.WriteString("  ")
			}

			b.WriteString(styles.Cell.Render(pad(cell, widths[i])))
		}

		b.WriteString("\n")
	}

	b.WriteString(styles.Dim.Render(fmt.Sprintf("(%d rows)", result.RowCount())))

	return b.String()
}

func formatCell(v any) string {
	if v == nil {
		return "null"
	}

	return fmt.Sprint(v)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
