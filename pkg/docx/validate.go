package docx

import (
	"fmt"
	"strings"

	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

// FindingKind classifies a validation finding.
type FindingKind string

const (
	FindingMissingPart      FindingKind = "missing-part"
	FindingMissingBody      FindingKind = "missing-body"
	FindingUnresolvedStyle  FindingKind = "unresolved-style"
	FindingUnresolvedNumber FindingKind = "unresolved-numbering"
	FindingPropertyID       FindingKind = "property-id"
	FindingPropertyFormat   FindingKind = "property-format"
	FindingTableShape       FindingKind = "table-shape"
)

// Finding is one validation problem: what is wrong, where, and in which part.
type Finding struct {
	Description string
	Kind        FindingKind
	Node        string
	Path        string
	Part        string
}

// Validate checks the document against the structural rules this library
// relies on and returns every finding. Findings are logged but never returned
// as errors: an invalid document is a result, not a failure. The checks cover
// the subset of the format this library writes, not the full schema.
func (d *Document) Validate() []Finding {
	var findings []Finding
	add := func(f Finding) {
		findings = append(findings, f)
		d.logger.Warn("validation: %s (kind=%s node=%s path=%s part=%s)",
			f.Description, f.Kind, f.Node, f.Path, f.Part)
	}

	for _, required := range []string{partContentTypes, partPackageRels, partDocument} {
		if _, ok := d.parts[required]; !ok {
			add(Finding{
				Description: fmt.Sprintf("required part %s is missing", required),
				Kind:        FindingMissingPart,
				Node:        required,
				Path:        "/",
				Part:        required,
			})
		}
	}

	if d.doc == nil || d.doc.Body == nil {
		add(Finding{
			Description: "document has no body",
			Kind:        FindingMissingBody,
			Node:        "w:document",
			Path:        "/w:document",
			Part:        partDocument,
		})
		d.logger.Info("validation finished with %d finding(s)", len(findings))
		return findings
	}

	styles := d.stylesPart()
	numberingXML := string(d.parts[partNumbering])

	checkParagraph := func(p *ooxml.Paragraph, path string) {
		if p.Properties == nil {
			return
		}
		if ref := p.Properties.Style; ref != nil && !d.styleDefined(styles, ref.Val) {
			add(Finding{
				Description: fmt.Sprintf("paragraph references undefined style %q", ref.Val),
				Kind:        FindingUnresolvedStyle,
				Node:        "w:pStyle",
				Path:        path + "/w:pPr/w:pStyle",
				Part:        partDocument,
			})
		}
		if num := p.Properties.Numbering; num != nil {
			marker := fmt.Sprintf(`w:numId="%d"`, num.NumID)
			if !strings.Contains(numberingXML, marker) {
				add(Finding{
					Description: fmt.Sprintf("paragraph references undefined numbering id %d", num.NumID),
					Kind:        FindingUnresolvedNumber,
					Node:        "w:numId",
					Path:        path + "/w:pPr/w:numPr",
					Part:        partDocument,
				})
			}
		}
		for ri, r := range p.Runs() {
			if r.Properties != nil && r.Properties.Style != nil && !d.styleDefined(styles, r.Properties.Style.Val) {
				add(Finding{
					Description: fmt.Sprintf("run references undefined style %q", r.Properties.Style.Val),
					Kind:        FindingUnresolvedStyle,
					Node:        "w:rStyle",
					Path:        fmt.Sprintf("%s/w:r[%d]/w:rPr/w:rStyle", path, ri+1),
					Part:        partDocument,
				})
			}
		}
	}

	for i, el := range d.doc.Body.Elements {
		path := fmt.Sprintf("/w:document/w:body/*[%d]", i+1)
		switch t := el.(type) {
		case *ooxml.Paragraph:
			checkParagraph(t, path)
		case *ooxml.Table:
			width := -1
			for ri := range t.Rows {
				cells := len(t.Rows[ri].Cells)
				if width == -1 {
					width = cells
				}
				if cells == 0 || cells != width {
					add(Finding{
						Description: fmt.Sprintf("table row %d has %d cells, expected %d", ri+1, cells, width),
						Kind:        FindingTableShape,
						Node:        "w:tr",
						Path:        fmt.Sprintf("%s/w:tr[%d]", path, ri+1),
						Part:        partDocument,
					})
				}
			}
			for pi, p := range t.Paragraphs() {
				checkParagraph(p, fmt.Sprintf("%s//w:p[%d]", path, pi+1))
			}
		}
	}

	d.validateCustomProps(add)

	d.logger.Info("validation finished with %d finding(s)", len(findings))
	return findings
}

// ValidateCount runs Validate and returns only the number of findings.
func (d *Document) ValidateCount() int {
	return len(d.Validate())
}

func (d *Document) styleDefined(styles *ooxml.Styles, id string) bool {
	if styles == nil {
		return false
	}
	for i := range styles.Styles {
		if styles.Styles[i].StyleID == id {
			return true
		}
	}
	return false
}

func (d *Document) validateCustomProps(add func(Finding)) {
	custom, err := d.customPart()
	if err != nil {
		add(Finding{
			Description: fmt.Sprintf("custom properties part is unreadable: %v", err),
			Kind:        FindingPropertyFormat,
			Node:        "Properties",
			Path:        "/Properties",
			Part:        partCustomProps,
		})
		return
	}
	for i := range custom.Properties {
		prop := &custom.Properties[i]
		path := fmt.Sprintf("/Properties/property[%d]", i+1)
		if prop.PID != i+2 {
			add(Finding{
				Description: fmt.Sprintf("property %q has id %d, expected %d", prop.Name, prop.PID, i+2),
				Kind:        FindingPropertyID,
				Node:        prop.Name,
				Path:        path,
				Part:        partCustomProps,
			})
		}
		if prop.FmtID != ooxml.PropertySetFormatID {
			add(Finding{
				Description: fmt.Sprintf("property %q has format id %q, expected %q", prop.Name, prop.FmtID, ooxml.PropertySetFormatID),
				Kind:        FindingPropertyFormat,
				Node:        prop.Name,
				Path:        path,
				Part:        partCustomProps,
			})
		}
	}
}
