package docx

import (
	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

// Fixed run appearance every defined style gets. The original tool
// parameterizes nothing beyond the id and display name.
const (
	styleFontName  = "Lucida Console"
	styleFontSize  = 24 // half-points
	styleRunColor  = "4F81BD"
	styleBasedOn   = "Normal"
	styleParagraph = "paragraph"
)

// StyleExists reports whether a paragraph style with the given id is defined.
// It returns false when the document has no styles part at all.
func (d *Document) StyleExists(id string) bool {
	styles := d.stylesPart()
	if styles == nil {
		return false
	}
	return styles.Lookup(styleParagraph, id) != nil
}

// DefineStyle creates a new paragraph style with the given id and display
// name, based on Normal, with a fixed bold italic accent-colored Lucida
// Console appearance. The id must not already be taken.
func (d *Document) DefineStyle(id, name string) error {
	if d.StyleExists(id) {
		return ErrStyleExists
	}
	styles := d.ensureStylesPart()
	styles.Styles = append(styles.Styles, ooxml.Style{
		Type:    styleParagraph,
		StyleID: id,
		Name:    name,
		BasedOn: styleBasedOn,
		Next:    id,
		RunProperties: &ooxml.RunProperties{
			Bold:   &ooxml.Empty{},
			Italic: &ooxml.Empty{},
			Color:  &ooxml.Color{Val: styleRunColor},
			Fonts:  &ooxml.Fonts{ASCII: styleFontName, HAnsi: styleFontName},
			Size:   &ooxml.Size{Val: styleFontSize},
			SizeCs: &ooxml.Size{Val: styleFontSize},
		},
	})
	d.logger.Debug("defined paragraph style %q (%s)", id, name)
	return nil
}
