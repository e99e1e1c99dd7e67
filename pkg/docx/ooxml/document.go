package ooxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Document models word/document.xml.
type Document struct {
	Body *Body
}

// Body holds the ordered content of the document. SectPr carries the trailing
// section properties verbatim; Word rejects documents that lose them.
type Body struct {
	Elements []BodyElement
	SectPr   []byte
}

// Paragraphs returns the body's paragraphs in document order, skipping tables.
func (b *Body) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, el := range b.Elements {
		if p, ok := el.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the body's tables in document order.
func (b *Body) Tables() []*Table {
	var out []*Table
	for _, el := range b.Elements {
		if t, ok := el.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Append adds an element at the end of the body.
func (b *Body) Append(el BodyElement) {
	b.Elements = append(b.Elements, el)
}

// InsertAfter places el immediately after ref. When ref is not present in the
// body, el is appended at the end.
func (b *Body) InsertAfter(ref BodyElement, el BodyElement) {
	for i, existing := range b.Elements {
		if existing == ref {
			b.Elements = append(b.Elements[:i+1], append([]BodyElement{el}, b.Elements[i+1:]...)...)
			return
		}
	}
	b.Elements = append(b.Elements, el)
}

// UnmarshalXML decodes a body preserving the relative order of paragraphs and
// tables.
func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p Paragraph
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &p)
			case "tbl":
				var tbl Table
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &tbl)
			case "sectPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				b.SectPr = raw
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return nil
			}
		}
	}
}

// ParseDocument parses the bytes of word/document.xml.
func ParseDocument(data []byte) (*Document, error) {
	var raw struct {
		XMLName xml.Name `xml:"document"`
		Body    *Body    `xml:"body"`
	}
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Document{Body: raw.Body}, nil
}

// Marshal serializes the document back to word/document.xml bytes. The root
// element and the raw section properties are written by hand because the
// encoder cannot emit prefixed namespace declarations or verbatim fragments.
func (doc *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf, `<w:document xmlns:w=%q xmlns:r=%q>`, NSWordprocessing, NSRelationships)
	buf.WriteString("<w:body>")

	enc := xml.NewEncoder(&buf)
	if doc.Body != nil {
		for _, el := range doc.Body.Elements {
			var err error
			switch e := el.(type) {
			case *Paragraph:
				err = enc.EncodeElement(e, xml.StartElement{Name: xml.Name{Local: "w:p"}})
			case *Table:
				err = enc.EncodeElement(e, xml.StartElement{Name: xml.Name{Local: "w:tbl"}})
			}
			if err != nil {
				return nil, fmt.Errorf("failed to marshal body element: %w", err)
			}
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	if doc.Body != nil && len(doc.Body.SectPr) > 0 {
		buf.Write(doc.Body.SectPr)
	}

	buf.WriteString("</w:body></w:document>")
	return buf.Bytes(), nil
}
