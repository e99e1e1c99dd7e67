package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

func TestAddTable(t *testing.T) {
	doc := quietDoc()
	tbl := doc.AddTable([][2]string{
		{"Name", "Value"},
		{"serial", "A-17"},
		{"owner", "QA"},
	})
	require.NotNil(t, tbl)
	require.Len(t, tbl.Rows, 3)

	for ri, row := range tbl.Rows {
		require.Len(t, row.Cells, 2, "row %d", ri)
	}

	// Header runs are bold, body runs carry no formatting.
	for ci, cell := range tbl.Rows[0].Cells {
		runs := cell.Elements[0].(*ooxml.Paragraph).Runs()
		require.Len(t, runs, 1)
		require.NotNil(t, runs[0].Properties, "header cell %d", ci)
		assert.NotNil(t, runs[0].Properties.Bold, "header cell %d", ci)
	}
	for _, cell := range tbl.Rows[1].Cells {
		runs := cell.Elements[0].(*ooxml.Paragraph).Runs()
		require.Len(t, runs, 1)
		assert.Nil(t, runs[0].Properties)
	}
}

func TestAddTableBorders(t *testing.T) {
	doc := quietDoc()
	tbl := doc.AddTable([][2]string{{"a", "b"}})
	require.NotNil(t, tbl.Properties)
	borders := tbl.Properties.Borders
	require.NotNil(t, borders)
	for name, b := range map[string]*ooxml.Border{
		"top":     borders.Top,
		"left":    borders.Left,
		"bottom":  borders.Bottom,
		"right":   borders.Right,
		"insideH": borders.InsideH,
		"insideV": borders.InsideV,
	} {
		require.NotNil(t, b, name)
		assert.Equal(t, "single", b.Val, name)
		assert.Equal(t, 4, b.Size, name)
	}
}

func TestAddTableEmptyRows(t *testing.T) {
	doc := quietDoc()
	assert.Nil(t, doc.AddTable(nil))
	assert.Nil(t, doc.AddTable([][2]string{}))
	assert.Empty(t, doc.EnsureBody().Tables())
}

func TestAddTableAppendsToBody(t *testing.T) {
	doc := quietDoc()
	doc.AddParagraph("before")
	doc.AddTable([][2]string{{"a", "b"}})

	elements := doc.EnsureBody().Elements
	require.Len(t, elements, 2)
	_, ok := elements[1].(*ooxml.Table)
	assert.True(t, ok, "table is the last body element")
}
