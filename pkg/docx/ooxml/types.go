package ooxml

import (
	"encoding/xml"
	"io"
	"strings"
)

// Namespace URIs used across the document parts.
const (
	NSWordprocessing   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NSRelationships    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NSCustomProperties = "http://schemas.openxmlformats.org/officeDocument/2006/custom-properties"
	NSVariantTypes     = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
	NSXML              = "http://www.w3.org/XML/1998/namespace"
)

// BodyElement is implemented by elements that can appear directly in a body
// or a table cell (paragraphs and tables).
type BodyElement interface {
	isBodyElement()
}

// ParagraphContent is implemented by elements that can appear inside a
// paragraph (runs, bookmark markers).
type ParagraphContent interface {
	isParagraphContent()
}

// Empty marks a boolean toggle property such as w:b or w:i. A nil pointer
// means the toggle is absent; a non-nil pointer emits an empty element.
type Empty struct{}

// StyleRef references a style by id. The element name (w:pStyle, w:rStyle,
// w:basedOn, ...) is supplied by the containing marshaller.
type StyleRef struct {
	Val string `xml:"val,attr"`
}

// MarshalXML keeps the element name chosen by the caller and writes the id
// as a w:val attribute.
func (s StyleRef) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: s.Val}}
	return e.EncodeElement(struct{}{}, start)
}

// captureRaw consumes the element opened by start and returns its inner XML
// verbatim, re-prefixing namespaced names so the fragment can be written back
// into a w:-prefixed document. Used for subtrees we preserve but do not model,
// notably the trailing w:sectPr of a body.
func captureRaw(d *xml.Decoder, start xml.StartElement) ([]byte, error) {
	var buf strings.Builder
	writeOpen := func(t xml.StartElement) {
		buf.WriteString("<")
		buf.WriteString(prefixedName(t.Name))
		for _, attr := range t.Attr {
			buf.WriteString(" ")
			buf.WriteString(prefixedName(attr.Name))
			buf.WriteString(`="`)
			xmlEscape(&buf, attr.Value)
			buf.WriteString(`"`)
		}
		buf.WriteString(">")
	}

	writeOpen(start)
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			writeOpen(t)
		case xml.EndElement:
			depth--
			buf.WriteString("</")
			buf.WriteString(prefixedName(t.Name))
			buf.WriteString(">")
		case xml.CharData:
			xmlEscape(&buf, string(t))
		}
	}
	return []byte(buf.String()), nil
}

// prefixedName maps a namespace-resolved xml.Name back to its conventional
// prefixed form.
func prefixedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	prefix, ok := namespacePrefixes[n.Space]
	if !ok {
		return n.Local
	}
	return prefix + ":" + n.Local
}

var namespacePrefixes = map[string]string{
	NSWordprocessing: "w",
	NSRelationships:  "r",
	NSXML:            "xml",
	NSVariantTypes:   "vt",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
	"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
}

func xmlEscape(buf *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
}
