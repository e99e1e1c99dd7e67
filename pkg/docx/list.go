package docx

import (
	"fmt"

	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

// buildListItem constructs a paragraph carrying the fixed bullet numbering
// reference. level is a positive nesting depth; level 1 maps to indent
// level 0.
func buildListItem(level int, text string) (*ooxml.Paragraph, error) {
	if level < 1 {
		return nil, fmt.Errorf("list level must be positive, got %d", level)
	}
	p := &ooxml.Paragraph{
		Properties: &ooxml.ParagraphProperties{
			Style: &ooxml.StyleRef{Val: "ListParagraph"},
			Numbering: &ooxml.NumberingProperties{
				Level: level - 1,
				NumID: BulletNumberingID,
			},
		},
	}
	p.AppendRun(&ooxml.Run{Text: &ooxml.Text{Content: text}})
	return p, nil
}

// AddListItem appends an unnumbered (bulleted) list item at the given
// nesting level and returns the new paragraph for chaining.
func (d *Document) AddListItem(level int, text string) (*ooxml.Paragraph, error) {
	p, err := buildListItem(level, text)
	if err != nil {
		return nil, err
	}
	d.EnsureBody().Append(p)
	return p, nil
}

// InsertListItemAfter inserts an unnumbered list item immediately after ref
// and returns the new paragraph, so a sequence of items can be threaded into
// the middle of a document.
func (d *Document) InsertListItemAfter(ref *ooxml.Paragraph, level int, text string) (*ooxml.Paragraph, error) {
	if ref == nil {
		return nil, ErrNilParagraph
	}
	p, err := buildListItem(level, text)
	if err != nil {
		return nil, err
	}
	d.EnsureBody().InsertAfter(ref, p)
	return p, nil
}
