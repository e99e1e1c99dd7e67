package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

func findingKinds(findings []Finding) []FindingKind {
	kinds := make([]FindingKind, len(findings))
	for i, f := range findings {
		kinds[i] = f.Kind
	}
	return kinds
}

func TestValidateCleanDocument(t *testing.T) {
	doc := quietDoc()
	doc.AddParagraph("text")
	_, err := doc.AddListItem(1, "item")
	require.NoError(t, err)
	doc.AddTable([][2]string{{"a", "b"}, {"c", "d"}})
	doc.AddCheckbox("agree", "ok", false)
	_, _, err = doc.SetCustomProperty("Project", Text("Tethys"))
	require.NoError(t, err)

	assert.Empty(t, doc.Validate(), "a document built through the API must validate clean")
	assert.Equal(t, 0, doc.ValidateCount())
}

func TestValidateUndefinedParagraphStyle(t *testing.T) {
	doc := quietDoc()
	doc.AddHeading("Title", "Heading1")

	findings := doc.Validate()
	require.Len(t, findings, 1)
	assert.Equal(t, FindingUnresolvedStyle, findings[0].Kind)
	assert.Contains(t, findings[0].Description, "Heading1")
	assert.Equal(t, "w:pStyle", findings[0].Node)

	// Defining the style clears the finding.
	require.NoError(t, doc.DefineStyle("Heading1", "Heading 1"))
	assert.Empty(t, doc.Validate())
}

func TestValidateUndefinedNumbering(t *testing.T) {
	doc := quietDoc()
	p := doc.AddParagraph("item")
	p.EnsureProperties().Numbering = &ooxml.NumberingProperties{Level: 0, NumID: 99}

	findings := doc.Validate()
	require.Len(t, findings, 1)
	assert.Equal(t, FindingUnresolvedNumber, findings[0].Kind)
}

func TestValidateRaggedTable(t *testing.T) {
	doc := quietDoc()
	tbl := doc.AddTable([][2]string{{"a", "b"}, {"c", "d"}})
	tbl.Rows[1].Cells = tbl.Rows[1].Cells[:1]

	findings := doc.Validate()
	require.Len(t, findings, 1)
	assert.Equal(t, FindingTableShape, findings[0].Kind)
	assert.Contains(t, findings[0].Description, "row 2")
}

func TestValidatePropertyIDGap(t *testing.T) {
	doc := quietDoc()
	_, _, err := doc.SetCustomProperty("a", Text("1"))
	require.NoError(t, err)
	_, _, err = doc.SetCustomProperty("b", Text("2"))
	require.NoError(t, err)

	custom, err := doc.customPart()
	require.NoError(t, err)
	custom.Properties[1].PID = 7

	findings := doc.Validate()
	require.Len(t, findings, 1)
	assert.Equal(t, FindingPropertyID, findings[0].Kind)
	assert.Equal(t, "b", findings[0].Node)
}

func TestValidateMissingPart(t *testing.T) {
	doc := quietDoc()
	delete(doc.parts, partContentTypes)

	kinds := findingKinds(doc.Validate())
	assert.Contains(t, kinds, FindingMissingPart)
}
