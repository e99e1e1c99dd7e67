package docx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

func TestAddCheckbox(t *testing.T) {
	doc := quietDoc()
	p := doc.AddCheckbox("agree", "I agree", true)
	require.NotNil(t, p)

	// Field structure: begin, bookmark start, instruction, end, bookmark
	// end, then the label run.
	require.Len(t, p.Content, 6)

	begin, ok := p.Content[0].(*ooxml.Run)
	require.True(t, ok)
	require.NotNil(t, begin.FieldChar)
	assert.Equal(t, ooxml.FieldCharBegin, begin.FieldChar.Type)
	ffData := begin.FieldChar.FormData
	require.NotNil(t, ffData)
	assert.Equal(t, "agree", ffData.Name)
	assert.True(t, ffData.Enabled)
	require.NotNil(t, ffData.CheckBox)
	assert.True(t, ffData.CheckBox.Checked)

	start, ok := p.Content[1].(*ooxml.BookmarkStart)
	require.True(t, ok)
	assert.Equal(t, "agree", start.Name)

	instr, ok := p.Content[2].(*ooxml.Run)
	require.True(t, ok)
	require.NotNil(t, instr.InstrText)
	assert.Equal(t, " FORMCHECKBOX ", instr.InstrText.Content)

	end, ok := p.Content[3].(*ooxml.Run)
	require.True(t, ok)
	require.NotNil(t, end.FieldChar)
	assert.Equal(t, ooxml.FieldCharEnd, end.FieldChar.Type)

	bEnd, ok := p.Content[4].(*ooxml.BookmarkEnd)
	require.True(t, ok)
	assert.Equal(t, start.ID, bEnd.ID, "bookmark end closes the start")

	label, ok := p.Content[5].(*ooxml.Run)
	require.True(t, ok)
	assert.Equal(t, " I agree", label.GetText())
}

func TestAddCheckboxGeneratedBookmark(t *testing.T) {
	doc := quietDoc()
	p := doc.AddCheckbox("", "label", false)

	start, ok := p.Content[1].(*ooxml.BookmarkStart)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(start.Name, "chk-"), "generated name %q", start.Name)
	assert.Greater(t, len(start.Name), len("chk-"))
}

func TestAddCheckboxBookmarkIDsUnique(t *testing.T) {
	doc := quietDoc()
	first := doc.AddCheckbox("a", "", false)
	second := doc.AddCheckbox("b", "", true)

	firstStart := first.Content[1].(*ooxml.BookmarkStart)
	secondStart := second.Content[1].(*ooxml.BookmarkStart)
	assert.NotEqual(t, firstStart.ID, secondStart.ID)
}

func TestAddCheckboxWithoutLabel(t *testing.T) {
	doc := quietDoc()
	p := doc.AddCheckbox("bare", "", false)
	assert.Len(t, p.Content, 5, "no label run is appended for an empty label")
}
