package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietDoc() *Document {
	return New(WithLogger(NewLogger(nil, LogOff)))
}

func TestDefineStyle(t *testing.T) {
	doc := quietDoc()

	assert.False(t, doc.StyleExists("Warning"))
	require.NoError(t, doc.DefineStyle("Warning", "Warning Text"))
	assert.True(t, doc.StyleExists("Warning"))
	assert.False(t, doc.StyleExists("warning"), "ids are case sensitive")
	assert.False(t, doc.StyleExists("Other"))
}

func TestDefineStyleDuplicateID(t *testing.T) {
	doc := quietDoc()
	require.NoError(t, doc.DefineStyle("Warning", "Warning Text"))

	err := doc.DefineStyle("Warning", "Another Name")
	assert.ErrorIs(t, err, ErrStyleExists)
}

func TestDefineStyleSurvivesRoundTrip(t *testing.T) {
	doc := quietDoc()
	require.NoError(t, doc.DefineStyle("Warning", "Warning Text"))

	data, err := doc.Bytes()
	require.NoError(t, err)
	reopened, err := OpenBytes(data, WithLogger(NewLogger(nil, LogOff)))
	require.NoError(t, err)
	assert.True(t, reopened.StyleExists("Warning"))
}

func TestBlankDocumentBuiltinStyles(t *testing.T) {
	doc := quietDoc()
	assert.True(t, doc.StyleExists("Normal"))
	assert.True(t, doc.StyleExists("ListParagraph"))
}
