package ooxml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Run is a span of text with uniform formatting. Exactly one of Text, Break,
// FieldChar or InstrText is normally set; legacy form fields use runs that
// carry only field content.
type Run struct {
	Properties *RunProperties `xml:"rPr"`
	Text       *Text          `xml:"t"`
	Break      *Break         `xml:"br"`
	FieldChar  *FieldChar     `xml:"fldChar"`
	InstrText  *InstrText     `xml:"instrText"`
}

func (r Run) isParagraphContent() {}

// GetText returns the run's text content, or "" for non-text runs.
func (r *Run) GetText() string {
	if r.Text == nil {
		return ""
	}
	return r.Text.Content
}

// MarshalXML writes the run with w:-prefixed child elements.
func (r Run) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:r"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if r.Properties != nil {
		if err := e.EncodeElement(r.Properties, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}
	if r.FieldChar != nil {
		if err := e.EncodeElement(r.FieldChar, xml.StartElement{Name: xml.Name{Local: "w:fldChar"}}); err != nil {
			return err
		}
	}
	if r.InstrText != nil {
		if err := e.EncodeElement(r.InstrText, xml.StartElement{Name: xml.Name{Local: "w:instrText"}}); err != nil {
			return err
		}
	}
	if r.Text != nil {
		if err := e.EncodeElement(r.Text, xml.StartElement{Name: xml.Name{Local: "w:t"}}); err != nil {
			return err
		}
	}
	if r.Break != nil {
		if err := e.EncodeElement(r.Break, xml.StartElement{Name: xml.Name{Local: "w:br"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// RunProperties represents run-level formatting (w:rPr).
type RunProperties struct {
	Style     *StyleRef  `xml:"rStyle"`
	Fonts     *Fonts     `xml:"rFonts"`
	Bold      *Empty     `xml:"b"`
	Italic    *Empty     `xml:"i"`
	Color     *Color     `xml:"color"`
	Size      *Size      `xml:"sz"`
	SizeCs    *Size      `xml:"szCs"`
	Highlight *Highlight `xml:"highlight"`
}

// MarshalXML writes run properties in the order Word emits them.
func (p RunProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:rPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Style != nil {
		if err := e.EncodeElement(p.Style, xml.StartElement{Name: xml.Name{Local: "w:rStyle"}}); err != nil {
			return err
		}
	}
	if p.Fonts != nil {
		if err := e.EncodeElement(p.Fonts, xml.StartElement{Name: xml.Name{Local: "w:rFonts"}}); err != nil {
			return err
		}
	}
	if p.Bold != nil {
		if err := e.EncodeElement(struct{}{}, xml.StartElement{Name: xml.Name{Local: "w:b"}}); err != nil {
			return err
		}
	}
	if p.Italic != nil {
		if err := e.EncodeElement(struct{}{}, xml.StartElement{Name: xml.Name{Local: "w:i"}}); err != nil {
			return err
		}
	}
	if p.Color != nil {
		if err := e.EncodeElement(p.Color, xml.StartElement{Name: xml.Name{Local: "w:color"}}); err != nil {
			return err
		}
	}
	if p.Size != nil {
		if err := e.EncodeElement(p.Size, xml.StartElement{Name: xml.Name{Local: "w:sz"}}); err != nil {
			return err
		}
	}
	if p.SizeCs != nil {
		if err := e.EncodeElement(p.SizeCs, xml.StartElement{Name: xml.Name{Local: "w:szCs"}}); err != nil {
			return err
		}
	}
	if p.Highlight != nil {
		if err := e.EncodeElement(p.Highlight, xml.StartElement{Name: xml.Name{Local: "w:highlight"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Text is the character content of a run (w:t).
type Text struct {
	Space   string `xml:"space,attr"`
	Content string `xml:",chardata"`
}

// MarshalXML writes the text, declaring xml:space="preserve" whenever the
// content has significant leading or trailing whitespace.
func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:t"}
	if t.Space == "preserve" || strings.TrimSpace(t.Content) != t.Content {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Space: NSXML, Local: "space"},
			Value: "preserve",
		})
	}
	return e.EncodeElement(t.Content, start)
}

// Break is a line break (w:br).
type Break struct {
	Type string `xml:"type,attr,omitempty"`
}

// MarshalXML emits the break self-closed.
func (b Break) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:br"}
	start.Attr = nil
	if b.Type != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:type"}, Value: b.Type})
	}
	return e.EncodeElement(struct{}{}, start)
}

// Color is a text color in RRGGBB hex (w:color).
type Color struct {
	Val string `xml:"val,attr"`
}

// MarshalXML writes the color value as a w:val attribute.
func (c Color) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:color"}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: c.Val}}
	return e.EncodeElement(struct{}{}, start)
}

// Size is a font size in half-points (w:sz, w:szCs).
type Size struct {
	Val int `xml:"val,attr"`
}

// MarshalXML keeps the caller-supplied element name, adding the w: prefix if
// it is missing.
func (s Size) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if !strings.HasPrefix(start.Name.Local, "w:") {
		start.Name.Local = "w:" + start.Name.Local
	}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: fmt.Sprintf("%d", s.Val)}}
	return e.EncodeElement(struct{}{}, start)
}

// Fonts names the fonts for a run (w:rFonts). Only the script slots this
// library sets are modeled.
type Fonts struct {
	ASCII string `xml:"ascii,attr"`
	HAnsi string `xml:"hAnsi,attr,omitempty"`
}

// MarshalXML writes the font attributes with w: prefixes.
func (f Fonts) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:rFonts"}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:ascii"}, Value: f.ASCII}}
	if f.HAnsi != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:hAnsi"}, Value: f.HAnsi})
	}
	return e.EncodeElement(struct{}{}, start)
}

// Highlight is a text highlight color name such as "yellow" (w:highlight).
type Highlight struct {
	Val string `xml:"val,attr"`
}

// MarshalXML writes the highlight color as a w:val attribute.
func (h Highlight) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:highlight"}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: h.Val}}
	return e.EncodeElement(struct{}{}, start)
}
