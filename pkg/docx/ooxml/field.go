package ooxml

import (
	"encoding/xml"
	"fmt"
)

// BookmarkStart opens a named bookmark (w:bookmarkStart).
type BookmarkStart struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

func (BookmarkStart) isParagraphContent() {}

// MarshalXML writes the bookmark start with w:-prefixed attributes.
func (b BookmarkStart) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:bookmarkStart"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:id"}, Value: fmt.Sprintf("%d", b.ID)},
		{Name: xml.Name{Local: "w:name"}, Value: b.Name},
	}
	return e.EncodeElement(struct{}{}, start)
}

// BookmarkEnd closes a bookmark by id (w:bookmarkEnd).
type BookmarkEnd struct {
	ID int `xml:"id,attr"`
}

func (BookmarkEnd) isParagraphContent() {}

// MarshalXML writes the bookmark end with a w:-prefixed id.
func (b BookmarkEnd) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:bookmarkEnd"}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:id"}, Value: fmt.Sprintf("%d", b.ID)}}
	return e.EncodeElement(struct{}{}, start)
}

// Field character types for w:fldChar.
const (
	FieldCharBegin    = "begin"
	FieldCharSeparate = "separate"
	FieldCharEnd      = "end"
)

// FieldChar delimits a complex field (w:fldChar). The begin character of a
// form field carries the field's data.
type FieldChar struct {
	Type     string         `xml:"fldCharType,attr"`
	FormData *FormFieldData `xml:"ffData"`
}

// MarshalXML writes the field character, including form data on begin chars.
func (f FieldChar) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:fldChar"}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:fldCharType"}, Value: f.Type}}
	if f.FormData == nil {
		return e.EncodeElement(struct{}{}, start)
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeElement(f.FormData, xml.StartElement{Name: xml.Name{Local: "w:ffData"}}); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// FormFieldData describes a legacy form field (w:ffData).
type FormFieldData struct {
	Name     string    `xml:"name"`
	Enabled  bool      `xml:"enabled"`
	CheckBox *CheckBox `xml:"checkBox"`
}

// UnmarshalXML reads the form field name, enabled toggle and checkbox data.
func (f *FormFieldData) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Name struct {
			Val string `xml:"val,attr"`
		} `xml:"name"`
		Enabled  *struct{} `xml:"enabled"`
		CheckBox *CheckBox `xml:"checkBox"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	f.Name = raw.Name.Val
	f.Enabled = raw.Enabled != nil
	f.CheckBox = raw.CheckBox
	return nil
}

// MarshalXML writes the form field data with w:-prefixed names.
func (f FormFieldData) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:ffData"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	name := xml.StartElement{
		Name: xml.Name{Local: "w:name"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: f.Name}},
	}
	if err := e.EncodeElement(struct{}{}, name); err != nil {
		return err
	}
	if f.Enabled {
		if err := e.EncodeElement(struct{}{}, xml.StartElement{Name: xml.Name{Local: "w:enabled"}}); err != nil {
			return err
		}
	}
	calc := xml.StartElement{
		Name: xml.Name{Local: "w:calcOnExit"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: "0"}},
	}
	if err := e.EncodeElement(struct{}{}, calc); err != nil {
		return err
	}
	if f.CheckBox != nil {
		if err := e.EncodeElement(f.CheckBox, xml.StartElement{Name: xml.Name{Local: "w:checkBox"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// CheckBox is the two-state checkbox payload of a form field (w:checkBox).
type CheckBox struct {
	Checked bool
	Default bool
}

// UnmarshalXML reads the default and checked states.
func (c *CheckBox) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Default *struct {
			Val string `xml:"val,attr"`
		} `xml:"default"`
		Checked *struct {
			Val string `xml:"val,attr"`
		} `xml:"checked"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	if raw.Default != nil {
		c.Default = raw.Default.Val == "1" || raw.Default.Val == "true"
	}
	if raw.Checked != nil {
		c.Checked = raw.Checked.Val == "1" || raw.Checked.Val == "true"
	}
	return nil
}

// MarshalXML writes the checkbox with auto sizing and its states.
func (c CheckBox) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:checkBox"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeElement(struct{}{}, xml.StartElement{Name: xml.Name{Local: "w:sizeAuto"}}); err != nil {
		return err
	}
	def := "0"
	if c.Default {
		def = "1"
	}
	defElem := xml.StartElement{
		Name: xml.Name{Local: "w:default"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: def}},
	}
	if err := e.EncodeElement(struct{}{}, defElem); err != nil {
		return err
	}
	if c.Checked {
		checked := xml.StartElement{
			Name: xml.Name{Local: "w:checked"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: "1"}},
		}
		if err := e.EncodeElement(struct{}{}, checked); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// InstrText is a field instruction such as FORMCHECKBOX (w:instrText).
type InstrText struct {
	Content string `xml:",chardata"`
}

// MarshalXML writes the instruction preserving surrounding whitespace.
func (i InstrText) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:instrText"}
	start.Attr = []xml.Attr{{
		Name:  xml.Name{Space: NSXML, Local: "space"},
		Value: "preserve",
	}}
	return e.EncodeElement(i.Content, start)
}
