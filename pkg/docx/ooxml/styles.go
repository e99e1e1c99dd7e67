package ooxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Styles models word/styles.xml.
type Styles struct {
	Styles []Style `xml:"style"`
}

// Lookup returns the style with the given id and type, or nil.
func (s *Styles) Lookup(styleType, id string) *Style {
	for i := range s.Styles {
		if s.Styles[i].Type == styleType && s.Styles[i].StyleID == id {
			return &s.Styles[i]
		}
	}
	return nil
}

// Style is one named formatting template (w:style).
type Style struct {
	Type          string         `xml:"type,attr"`
	StyleID       string         `xml:"styleId,attr"`
	Name          string         `xml:"-"`
	BasedOn       string         `xml:"-"`
	Next          string         `xml:"-"`
	RunProperties *RunProperties `xml:"rPr"`
}

// UnmarshalXML reads the style attributes and the w:val attributes of its
// name, basedOn and next children.
func (s *Style) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Type    string `xml:"type,attr"`
		StyleID string `xml:"styleId,attr"`
		Name    struct {
			Val string `xml:"val,attr"`
		} `xml:"name"`
		BasedOn struct {
			Val string `xml:"val,attr"`
		} `xml:"basedOn"`
		Next struct {
			Val string `xml:"val,attr"`
		} `xml:"next"`
		RunProperties *RunProperties `xml:"rPr"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	s.Type = raw.Type
	s.StyleID = raw.StyleID
	s.Name = raw.Name.Val
	s.BasedOn = raw.BasedOn.Val
	s.Next = raw.Next.Val
	s.RunProperties = raw.RunProperties
	return nil
}

// MarshalXML writes the style with w:-prefixed names and attributes.
func (s Style) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:style"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:type"}, Value: s.Type},
		{Name: xml.Name{Local: "w:styleId"}, Value: s.StyleID},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	refs := []struct {
		name string
		val  string
	}{
		{"w:name", s.Name},
		{"w:basedOn", s.BasedOn},
		{"w:next", s.Next},
	}
	for _, ref := range refs {
		if ref.val == "" {
			continue
		}
		el := xml.StartElement{
			Name: xml.Name{Local: ref.name},
			Attr: []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: ref.val}},
		}
		if err := e.EncodeElement(struct{}{}, el); err != nil {
			return err
		}
	}
	if s.RunProperties != nil {
		if err := e.EncodeElement(s.RunProperties, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ParseStyles parses the bytes of word/styles.xml.
func ParseStyles(data []byte) (*Styles, error) {
	var raw struct {
		XMLName xml.Name `xml:"styles"`
		Styles  []Style  `xml:"style"`
	}
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}
	return &Styles{Styles: raw.Styles}, nil
}

// Marshal serializes the styles part back to word/styles.xml bytes.
func (s *Styles) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf, `<w:styles xmlns:w=%q>`, NSWordprocessing)
	enc := xml.NewEncoder(&buf)
	for i := range s.Styles {
		if err := enc.EncodeElement(&s.Styles[i], xml.StartElement{Name: xml.Name{Local: "w:style"}}); err != nil {
			return nil, fmt.Errorf("failed to marshal style %q: %w", s.Styles[i].StyleID, err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteString("</w:styles>")
	return buf.Bytes(), nil
}
