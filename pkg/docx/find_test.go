package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

func TestFindTextExact(t *testing.T) {
	doc := quietDoc()
	doc.AddParagraph("introduction chapter")
	want := doc.AddParagraph("chapter")
	doc.AddParagraph("chapter two")

	got, err := doc.FindText("chapter", MatchExact)
	require.NoError(t, err)
	assert.Same(t, want, got, "exact match must skip paragraphs that only contain the text")
}

func TestFindTextContains(t *testing.T) {
	doc := quietDoc()
	want := doc.AddParagraph("introduction chapter")
	doc.AddParagraph("chapter")

	got, err := doc.FindText("chapter", MatchContains)
	require.NoError(t, err)
	assert.Same(t, want, got, "substring match returns the first containing paragraph")
}

func TestFindTextNoMatch(t *testing.T) {
	doc := quietDoc()
	doc.AddParagraph("nothing here")

	_, err := doc.FindText("chapter", MatchExact)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = doc.FindText("chapter", MatchContains)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFindTextDescendsIntoTables(t *testing.T) {
	doc := quietDoc()
	doc.AddParagraph("before")
	doc.AddTable([][2]string{{"Key", "Value"}, {"serial", "A-17"}})

	p, err := doc.FindText("A-17", MatchExact)
	require.NoError(t, err)
	assert.Equal(t, "A-17", p.GetText())
}

func TestFindTextInTable(t *testing.T) {
	doc := quietDoc()
	doc.AddParagraph("serial")
	tbl := doc.AddTable([][2]string{{"Key", "Value"}, {"serial", "A-17"}})

	p, err := doc.FindTextInTable(tbl, "serial", MatchExact)
	require.NoError(t, err)
	assert.Equal(t, "serial", p.GetText())

	_, err = doc.FindTextInTable(tbl, "absent", MatchExact)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFindTextInTableNil(t *testing.T) {
	doc := quietDoc()
	_, err := doc.FindTextInTable(nil, "anything", MatchExact)
	assert.ErrorIs(t, err, ErrNilTable)
}

func TestMatchModeString(t *testing.T) {
	assert.Equal(t, "exact", MatchExact.String())
	assert.Equal(t, "contains", MatchContains.String())
	assert.Equal(t, "unknown", MatchMode(99).String())
}

func TestFindTextComparesPerRun(t *testing.T) {
	// A paragraph whose text is split across runs must not match exactly
	// on the concatenation.
	doc := quietDoc()
	p := doc.AddParagraph("chap")
	p.AppendRun(&ooxml.Run{Text: &ooxml.Text{Content: "ter"}})

	_, err := doc.FindText("chapter", MatchExact)
	assert.ErrorIs(t, err, ErrNoMatch)
}
