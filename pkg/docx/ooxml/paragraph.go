package ooxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Paragraph is a block of text (w:p). Content preserves the order of runs and
// bookmark markers, which matters for form fields.
type Paragraph struct {
	Properties *ParagraphProperties
	Content    []ParagraphContent
}

func (p Paragraph) isBodyElement() {}

// Runs returns the paragraph's runs in order.
func (p *Paragraph) Runs() []*Run {
	var out []*Run
	for _, c := range p.Content {
		if r, ok := c.(*Run); ok {
			out = append(out, r)
		}
	}
	return out
}

// GetText returns the concatenated text of all runs.
func (p *Paragraph) GetText() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.GetText())
	}
	return sb.String()
}

// EnsureProperties returns the paragraph properties, creating them when
// absent. A style id can only be attached through properties, so helpers that
// set styles call this first.
func (p *Paragraph) EnsureProperties() *ParagraphProperties {
	if p.Properties == nil {
		p.Properties = &ParagraphProperties{}
	}
	return p.Properties
}

// AppendRun adds a run at the end of the paragraph.
func (p *Paragraph) AppendRun(r *Run) {
	p.Content = append(p.Content, r)
}

// UnmarshalXML decodes a paragraph preserving content order.
func (p *Paragraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			case "pPr":
				var props ParagraphProperties
				if err := d.DecodeElement(&props, &t); err != nil {
					return err
				}
				p.Properties = &props
			case "r":
				var r Run
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				p.Content = append(p.Content, &r)
			case "bookmarkStart":
				var b BookmarkStart
				if err := d.DecodeElement(&b, &t); err != nil {
					return err
				}
				p.Content = append(p.Content, &b)
			case "bookmarkEnd":
				var b BookmarkEnd
				if err := d.DecodeElement(&b, &t); err != nil {
					return err
				}
				p.Content = append(p.Content, &b)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return nil
			}
		}
	}
}

// MarshalXML writes the paragraph with w:-prefixed names, properties first.
func (p Paragraph) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:p"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Properties != nil {
		if err := e.EncodeElement(p.Properties, xml.StartElement{Name: xml.Name{Local: "w:pPr"}}); err != nil {
			return err
		}
	}
	for _, c := range p.Content {
		var err error
		switch el := c.(type) {
		case *Run:
			err = e.EncodeElement(el, xml.StartElement{Name: xml.Name{Local: "w:r"}})
		case *BookmarkStart:
			err = e.EncodeElement(el, xml.StartElement{Name: xml.Name{Local: "w:bookmarkStart"}})
		case *BookmarkEnd:
			err = e.EncodeElement(el, xml.StartElement{Name: xml.Name{Local: "w:bookmarkEnd"}})
		}
		if err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ParagraphProperties represents paragraph-level formatting (w:pPr).
type ParagraphProperties struct {
	Style         *StyleRef            `xml:"pStyle"`
	Numbering     *NumberingProperties `xml:"numPr"`
	RunProperties *RunProperties       `xml:"rPr"`
}

// MarshalXML writes paragraph properties, style reference first and the
// paragraph-default run properties last, matching Word's element order.
func (p ParagraphProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:pPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Style != nil {
		if err := e.EncodeElement(p.Style, xml.StartElement{Name: xml.Name{Local: "w:pStyle"}}); err != nil {
			return err
		}
	}
	if p.Numbering != nil {
		if err := e.EncodeElement(p.Numbering, xml.StartElement{Name: xml.Name{Local: "w:numPr"}}); err != nil {
			return err
		}
	}
	if p.RunProperties != nil {
		if err := e.EncodeElement(p.RunProperties, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// NumberingProperties ties a paragraph to a numbering definition (w:numPr):
// Level is the zero-based indent level (w:ilvl), NumID the definition id
// (w:numId).
type NumberingProperties struct {
	Level int `xml:"ilvl"`
	NumID int `xml:"numId"`
}

// UnmarshalXML reads the w:val attributes of ilvl and numId.
func (n *NumberingProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Ilvl struct {
			Val int `xml:"val,attr"`
		} `xml:"ilvl"`
		NumID struct {
			Val int `xml:"val,attr"`
		} `xml:"numId"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	n.Level = raw.Ilvl.Val
	n.NumID = raw.NumID.Val
	return nil
}

// MarshalXML writes the numbering reference with w:val attributes.
func (n NumberingProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:numPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	ilvl := xml.StartElement{
		Name: xml.Name{Local: "w:ilvl"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: fmt.Sprintf("%d", n.Level)}},
	}
	if err := e.EncodeElement(struct{}{}, ilvl); err != nil {
		return err
	}
	numID := xml.StartElement{
		Name: xml.Name{Local: "w:numId"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: fmt.Sprintf("%d", n.NumID)}},
	}
	if err := e.EncodeElement(struct{}{}, numID); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
