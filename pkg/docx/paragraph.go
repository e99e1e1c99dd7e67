package docx

import (
	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

// RunOption configures the formatting of the text run a paragraph helper
// creates.
type RunOption func(*ooxml.RunProperties)

// Bold renders the run in bold.
func Bold() RunOption {
	return func(p *ooxml.RunProperties) {
		p.Bold = &ooxml.Empty{}
	}
}

// Italic renders the run in italics.
func Italic() RunOption {
	return func(p *ooxml.RunProperties) {
		p.Italic = &ooxml.Empty{}
	}
}

// Font sets the run's font family.
func Font(name string) RunOption {
	return func(p *ooxml.RunProperties) {
		p.Fonts = &ooxml.Fonts{ASCII: name, HAnsi: name}
	}
}

// FontSize sets the run's font size in half-points.
func FontSize(halfPoints int) RunOption {
	return func(p *ooxml.RunProperties) {
		p.Size = &ooxml.Size{Val: halfPoints}
		p.SizeCs = &ooxml.Size{Val: halfPoints}
	}
}

// buildParagraph assembles a paragraph with a single text run carrying the
// given options. Empty text produces a paragraph without runs.
func buildParagraph(text string, opts []RunOption) *ooxml.Paragraph {
	p := &ooxml.Paragraph{}
	if text == "" && len(opts) == 0 {
		return p
	}
	run := &ooxml.Run{Text: &ooxml.Text{Content: text}}
	if len(opts) > 0 {
		props := &ooxml.RunProperties{}
		for _, opt := range opts {
			opt(props)
		}
		run.Properties = props
	}
	p.AppendRun(run)
	return p
}

// AddParagraph appends a paragraph with the given text to the body and
// returns it for chaining.
func (d *Document) AddParagraph(text string, opts ...RunOption) *ooxml.Paragraph {
	p := buildParagraph(text, opts)
	d.EnsureBody().Append(p)
	return p
}

// InsertParagraphAfter inserts a paragraph immediately after ref and returns
// the new paragraph so successive insertions chain.
func (d *Document) InsertParagraphAfter(ref *ooxml.Paragraph, text string, opts ...RunOption) (*ooxml.Paragraph, error) {
	if ref == nil {
		return nil, ErrNilParagraph
	}
	p := buildParagraph(text, opts)
	d.EnsureBody().InsertAfter(ref, p)
	return p, nil
}

// AddHeading appends a paragraph tagged with the given paragraph style id.
//
// The style is not checked for existence: referencing an undefined id is
// accepted at call time and surfaces later as a validation finding. Use
// StyleExists to check beforehand.
func (d *Document) AddHeading(text, styleID string) *ooxml.Paragraph {
	p := d.AddParagraph(text)
	d.applyStyle(p, styleID)
	return p
}

// InsertHeadingAfter inserts a styled paragraph immediately after ref.
// The same undefined-style caveat as AddHeading applies.
func (d *Document) InsertHeadingAfter(ref *ooxml.Paragraph, text, styleID string) (*ooxml.Paragraph, error) {
	p, err := d.InsertParagraphAfter(ref, text)
	if err != nil {
		return nil, err
	}
	d.applyStyle(p, styleID)
	return p, nil
}

func (d *Document) applyStyle(p *ooxml.Paragraph, styleID string) {
	p.EnsureProperties().Style = &ooxml.StyleRef{Val: styleID}
	if !d.StyleExists(styleID) {
		d.logger.Debug("paragraph references undefined style %q", styleID)
	}
}
