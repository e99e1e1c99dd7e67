package docx

import (
	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

// Border width in eighths of a point used for every table edge.
const tableBorderSize = 4

// AddTable appends a two-column table to the body. The first row pair is
// rendered bold and acts as the header; every other row is normal weight.
// All edges and inside gridlines get single-line borders. Returns the table,
// or nil when rows is empty.
func (d *Document) AddTable(rows [][2]string) *ooxml.Table {
	if len(rows) == 0 {
		d.logger.Warn("AddTable called with no rows; nothing added")
		return nil
	}

	single := func() *ooxml.Border {
		return &ooxml.Border{Val: "single", Size: tableBorderSize}
	}
	tbl := &ooxml.Table{
		Properties: &ooxml.TableProperties{
			Width: &ooxml.TableWidth{Width: 0, Type: "auto"},
			Borders: &ooxml.TableBorders{
				Top:     single(),
				Left:    single(),
				Bottom:  single(),
				Right:   single(),
				InsideH: single(),
				InsideV: single(),
			},
		},
		Grid: &ooxml.TableGrid{
			Columns: []ooxml.GridColumn{{Width: 2400}, {Width: 2400}},
		},
	}

	for i, pair := range rows {
		header := i == 0
		row := ooxml.TableRow{}
		for _, text := range pair {
			row.Cells = append(row.Cells, tableCell(text, header))
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	d.EnsureBody().Append(tbl)
	d.logger.Debug("added table with %d rows", len(rows))
	return tbl
}

func tableCell(text string, bold bool) ooxml.TableCell {
	run := &ooxml.Run{Text: &ooxml.Text{Content: text}}
	if bold {
		run.Properties = &ooxml.RunProperties{Bold: &ooxml.Empty{}}
	}
	p := &ooxml.Paragraph{}
	p.AppendRun(run)
	return ooxml.TableCell{Elements: []ooxml.BodyElement{p}}
}
