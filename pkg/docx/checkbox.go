package docx

import (
	"github.com/google/uuid"

	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

// AddCheckbox appends a paragraph holding a legacy two-state form-field
// checkbox bound to a bookmark, followed by the label text. When bookmark is
// empty a unique name is generated. Returns the paragraph.
func (d *Document) AddCheckbox(bookmark, label string, checked bool) *ooxml.Paragraph {
	if bookmark == "" {
		bookmark = "chk-" + uuid.NewString()
		d.logger.Debug("generated checkbox bookmark name %s", bookmark)
	}
	id := d.allocBookmarkID()

	p := &ooxml.Paragraph{}
	p.Content = append(p.Content,
		&ooxml.Run{
			FieldChar: &ooxml.FieldChar{
				Type: ooxml.FieldCharBegin,
				FormData: &ooxml.FormFieldData{
					Name:    bookmark,
					Enabled: true,
					CheckBox: &ooxml.CheckBox{
						Checked: checked,
						Default: false,
					},
				},
			},
		},
		&ooxml.BookmarkStart{ID: id, Name: bookmark},
		&ooxml.Run{InstrText: &ooxml.InstrText{Content: " FORMCHECKBOX "}},
		&ooxml.Run{FieldChar: &ooxml.FieldChar{Type: ooxml.FieldCharEnd}},
		&ooxml.BookmarkEnd{ID: id},
	)
	if label != "" {
		p.AppendRun(&ooxml.Run{Text: &ooxml.Text{Content: " " + label}})
	}

	d.EnsureBody().Append(p)
	return p
}
