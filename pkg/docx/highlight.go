package docx

import (
	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

// Highlight color applied by HighlightParagraph.
const highlightColor = "yellow"

// HighlightParagraph replaces the formatting of the paragraph's first run
// with a yellow highlight, preserving its text. It is a no-op when the
// paragraph has no runs or the first run has no text.
func (d *Document) HighlightParagraph(p *ooxml.Paragraph) {
	if p == nil {
		return
	}
	runs := p.Runs()
	if len(runs) == 0 {
		d.logger.Debug("highlight skipped: paragraph has no runs")
		return
	}
	first := runs[0]
	if first.GetText() == "" {
		d.logger.Debug("highlight skipped: first run has no text")
		return
	}
	first.Properties = &ooxml.RunProperties{
		Highlight: &ooxml.Highlight{Val: highlightColor},
	}
}
