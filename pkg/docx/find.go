package docx

import (
	"strings"

	"golang.org/x/text/collate"

	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

// MatchMode selects how FindText compares run text against the search text.
type MatchMode int

const (
	// MatchExact requires a run whose whole text equals the search text,
	// compared under the document's collation language.
	MatchExact MatchMode = iota
	// MatchContains requires a run whose text contains the search text as a
	// substring.
	MatchContains
)

func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchContains:
		return "contains"
	default:
		return "unknown"
	}
}

func (d *Document) collator() *collate.Collator {
	return collate.New(d.lang)
}

// FindText scans the body depth-first (paragraphs, then runs, then text) and
// returns the first paragraph containing a matching run. Paragraphs inside
// body tables are included. Returns ErrNoMatch when nothing matches.
func (d *Document) FindText(text string, mode MatchMode) (*ooxml.Paragraph, error) {
	var paragraphs []*ooxml.Paragraph
	for _, el := range d.EnsureBody().Elements {
		switch t := el.(type) {
		case *ooxml.Paragraph:
			paragraphs = append(paragraphs, t)
		case *ooxml.Table:
			paragraphs = append(paragraphs, t.Paragraphs()...)
		}
	}
	return d.findIn(paragraphs, text, mode)
}

// FindTextInTable restricts the scan to the paragraphs of one table.
func (d *Document) FindTextInTable(tbl *ooxml.Table, text string, mode MatchMode) (*ooxml.Paragraph, error) {
	if tbl == nil {
		return nil, ErrNilTable
	}
	return d.findIn(tbl.Paragraphs(), text, mode)
}

func (d *Document) findIn(paragraphs []*ooxml.Paragraph, text string, mode MatchMode) (*ooxml.Paragraph, error) {
	var col *collate.Collator
	if mode == MatchExact {
		col = d.collator()
	}
	for _, p := range paragraphs {
		for _, r := range p.Runs() {
			got := r.GetText()
			if got == "" {
				continue
			}
			switch mode {
			case MatchExact:
				if col.CompareString(got, text) == 0 {
					return p, nil
				}
			case MatchContains:
				if strings.Contains(got, text) {
					return p, nil
				}
			}
		}
	}
	d.logger.Debug("text %q not found (mode %s)", text, mode)
	return nil, ErrNoMatch
}
