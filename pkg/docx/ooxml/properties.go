package ooxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// PropertySetFormatID is the fixed format identifier every user-defined
// custom property carries.
const PropertySetFormatID = "{D5CDD505-2E9C-101B-9397-08002B2CF9AE}"

// Variant type element names used for custom property payloads.
const (
	VTLpwstr   = "lpwstr"
	VTBool     = "bool"
	VTI4       = "i4"
	VTR8       = "r8"
	VTFiletime = "filetime"
)

// CustomProperties models docProps/custom.xml.
type CustomProperties struct {
	Properties []CustomProperty
}

// Lookup returns the property with the given name, or nil.
func (c *CustomProperties) Lookup(name string) *CustomProperty {
	for i := range c.Properties {
		if c.Properties[i].Name == name {
			return &c.Properties[i]
		}
	}
	return nil
}

// Remove deletes the property with the given name and reports whether it was
// present.
func (c *CustomProperties) Remove(name string) bool {
	for i := range c.Properties {
		if c.Properties[i].Name == name {
			c.Properties = append(c.Properties[:i], c.Properties[i+1:]...)
			return true
		}
	}
	return false
}

// Renumber reassigns property ids contiguously starting at 2, the first id
// the property-set format allows for user-defined properties.
func (c *CustomProperties) Renumber() {
	for i := range c.Properties {
		c.Properties[i].PID = i + 2
	}
}

// CustomProperty is one name/value/type triple in the custom properties part.
type CustomProperty struct {
	FmtID string
	PID   int
	Name  string
	Value VariantValue
}

// VariantValue is a typed payload: Type is one of the VT* element names and
// Value its serialized text.
type VariantValue struct {
	Type  string
	Value string
}

// UnmarshalXML reads a property element and its single variant child.
func (p *CustomProperty) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "fmtid":
			p.FmtID = attr.Value
		case "pid":
			fmt.Sscanf(attr.Value, "%d", &p.PID)
		case "name":
			p.Name = attr.Value
		}
	}
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
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			p.Value = VariantValue{Type: t.Name.Local, Value: value}
		case xml.EndElement:
			if t.Name.Local == "property" {
				return nil
			}
		}
	}
}

// MarshalXML writes the property with its vt:-prefixed payload.
func (p CustomProperty) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "property"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "fmtid"}, Value: p.FmtID},
		{Name: xml.Name{Local: "pid"}, Value: fmt.Sprintf("%d", p.PID)},
		{Name: xml.Name{Local: "name"}, Value: p.Name},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	payload := xml.StartElement{Name: xml.Name{Local: "vt:" + p.Value.Type}}
	if err := e.EncodeElement(p.Value.Value, payload); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ParseCustomProperties parses the bytes of docProps/custom.xml.
func ParseCustomProperties(data []byte) (*CustomProperties, error) {
	var raw struct {
		XMLName    xml.Name         `xml:"Properties"`
		Properties []CustomProperty `xml:"property"`
	}
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse custom properties: %w", err)
	}
	return &CustomProperties{Properties: raw.Properties}, nil
}

// Marshal serializes the part back to docProps/custom.xml bytes.
func (c *CustomProperties) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf, `<Properties xmlns=%q xmlns:vt=%q>`, NSCustomProperties, NSVariantTypes)
	enc := xml.NewEncoder(&buf)
	for i := range c.Properties {
		if err := enc.EncodeElement(&c.Properties[i], xml.StartElement{Name: xml.Name{Local: "property"}}); err != nil {
			return nil, fmt.Errorf("failed to marshal property %q: %w", c.Properties[i].Name, err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteString("</Properties>")
	return buf.Bytes(), nil
}
