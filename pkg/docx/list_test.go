package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddListItemLevelMapping(t *testing.T) {
	tests := []struct {
		level     int
		wantIndex int
	}{
		{1, 0},
		{2, 1},
		{5, 4},
	}

	doc := quietDoc()
	for _, tt := range tests {
		p, err := doc.AddListItem(tt.level, "item")
		require.NoError(t, err)
		require.NotNil(t, p.Properties)
		require.NotNil(t, p.Properties.Numbering)
		assert.Equal(t, tt.wantIndex, p.Properties.Numbering.Level, "level %d", tt.level)
		assert.Equal(t, BulletNumberingID, p.Properties.Numbering.NumID)
		require.NotNil(t, p.Properties.Style)
		assert.Equal(t, "ListParagraph", p.Properties.Style.Val)
	}
}

func TestAddListItemInvalidLevel(t *testing.T) {
	doc := quietDoc()
	for _, level := range []int{0, -1} {
		_, err := doc.AddListItem(level, "item")
		assert.Error(t, err, "level %d", level)
	}
	assert.Empty(t, doc.EnsureBody().Elements)
}

func TestInsertListItemAfter(t *testing.T) {
	doc := quietDoc()
	first := doc.AddParagraph("first")
	doc.AddParagraph("last")

	item, err := doc.InsertListItemAfter(first, 1, "inserted")
	require.NoError(t, err)

	elements := doc.EnsureBody().Elements
	require.Len(t, elements, 3)
	assert.Same(t, item, elements[1], "item goes directly after the reference")
}

func TestInsertListItemAfterNilReference(t *testing.T) {
	doc := quietDoc()
	_, err := doc.InsertListItemAfter(nil, 1, "item")
	assert.ErrorIs(t, err, ErrNilParagraph)
}
