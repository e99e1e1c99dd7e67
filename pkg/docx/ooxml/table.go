package ooxml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Table is a grid of rows and cells (w:tbl).
type Table struct {
	Properties *TableProperties `xml:"tblPr"`
	Grid       *TableGrid       `xml:"tblGrid"`
	Rows       []TableRow       `xml:"tr"`
}

func (t Table) isBodyElement() {}

// Paragraphs returns every paragraph inside the table, walking rows and cells
// in order.
func (t *Table) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for ri := range t.Rows {
		for ci := range t.Rows[ri].Cells {
			out = append(out, t.Rows[ri].Cells[ci].Paragraphs()...)
		}
	}
	return out
}

// MarshalXML writes the table with w:-prefixed names.
func (t Table) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tbl"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if t.Properties != nil {
		if err := e.EncodeElement(t.Properties, xml.StartElement{Name: xml.Name{Local: "w:tblPr"}}); err != nil {
			return err
		}
	}
	if t.Grid != nil {
		if err := e.EncodeElement(t.Grid, xml.StartElement{Name: xml.Name{Local: "w:tblGrid"}}); err != nil {
			return err
		}
	}
	for i := range t.Rows {
		if err := e.EncodeElement(&t.Rows[i], xml.StartElement{Name: xml.Name{Local: "w:tr"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableProperties represents table-level formatting (w:tblPr).
type TableProperties struct {
	Width   *TableWidth   `xml:"tblW"`
	Borders *TableBorders `xml:"tblBorders"`
}

// MarshalXML writes table properties with w:-prefixed names.
func (p TableProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Width != nil {
		if err := e.EncodeElement(p.Width, xml.StartElement{Name: xml.Name{Local: "w:tblW"}}); err != nil {
			return err
		}
	}
	if p.Borders != nil {
		if err := e.EncodeElement(p.Borders, xml.StartElement{Name: xml.Name{Local: "w:tblBorders"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableWidth sets the table width (w:tblW); type "auto" sizes to content.
type TableWidth struct {
	Width int    `xml:"w,attr"`
	Type  string `xml:"type,attr"`
}

// MarshalXML writes the width with w:-prefixed attributes.
func (w TableWidth) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblW"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:w"}, Value: fmt.Sprintf("%d", w.Width)},
		{Name: xml.Name{Local: "w:type"}, Value: w.Type},
	}
	return e.EncodeElement(struct{}{}, start)
}

// TableBorders holds the six table border edges (w:tblBorders).
type TableBorders struct {
	Top     *Border `xml:"top"`
	Left    *Border `xml:"left"`
	Bottom  *Border `xml:"bottom"`
	Right   *Border `xml:"right"`
	InsideH *Border `xml:"insideH"`
	InsideV *Border `xml:"insideV"`
}

// MarshalXML writes the borders in Word's fixed edge order.
func (b TableBorders) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblBorders"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	edges := []struct {
		name   string
		border *Border
	}{
		{"w:top", b.Top},
		{"w:left", b.Left},
		{"w:bottom", b.Bottom},
		{"w:right", b.Right},
		{"w:insideH", b.InsideH},
		{"w:insideV", b.InsideV},
	}
	for _, edge := range edges {
		if edge.border == nil {
			continue
		}
		if err := e.EncodeElement(edge.border, xml.StartElement{Name: xml.Name{Local: edge.name}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Border is a single border edge; Size is in eighths of a point.
type Border struct {
	Val  string `xml:"val,attr"`
	Size int    `xml:"sz,attr"`
}

// MarshalXML keeps the edge name chosen by the caller and writes the border
// attributes with w: prefixes.
func (b Border) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: b.Val},
		{Name: xml.Name{Local: "w:sz"}, Value: fmt.Sprintf("%d", b.Size)},
	}
	return e.EncodeElement(struct{}{}, start)
}

// TableGrid declares the table's columns (w:tblGrid).
type TableGrid struct {
	Columns []GridColumn `xml:"gridCol"`
}

// MarshalXML writes the grid columns with w:-prefixed names.
func (g TableGrid) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblGrid"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, col := range g.Columns {
		if err := e.EncodeElement(col, xml.StartElement{Name: xml.Name{Local: "w:gridCol"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GridColumn is one column declaration; Width is in twentieths of a point.
type GridColumn struct {
	Width int `xml:"w,attr"`
}

// MarshalXML writes the column width with a w: prefix.
func (c GridColumn) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:gridCol"}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "w:w"}, Value: fmt.Sprintf("%d", c.Width)}}
	return e.EncodeElement(struct{}{}, start)
}

// TableRow is one row of a table (w:tr).
type TableRow struct {
	Cells []TableCell `xml:"tc"`
}

// MarshalXML writes the row with w:-prefixed names.
func (r TableRow) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for i := range r.Cells {
		if err := e.EncodeElement(&r.Cells[i], xml.StartElement{Name: xml.Name{Local: "w:tc"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCell is one cell of a row (w:tc). Cells hold body elements; this
// library only ever puts paragraphs in them.
type TableCell struct {
	Elements []BodyElement
}

// Paragraphs returns the cell's paragraphs in order.
func (c *TableCell) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, el := range c.Elements {
		if p, ok := el.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// UnmarshalXML decodes a cell preserving element order.
func (c *TableCell) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
				c.Elements = append(c.Elements, &p)
			case "tbl":
				var tbl Table
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				c.Elements = append(c.Elements, &tbl)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "tc" {
				return nil
			}
		}
	}
}

// MarshalXML writes the cell with w:-prefixed names. An empty cell still gets
// one empty paragraph; Word rejects cells without block content.
func (c TableCell) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tc"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	elements := c.Elements
	if len(elements) == 0 {
		elements = []BodyElement{&Paragraph{}}
	}
	for _, el := range elements {
		var err error
		switch t := el.(type) {
		case *Paragraph:
			err = e.EncodeElement(t, xml.StartElement{Name: xml.Name{Local: "w:p"}})
		case *Table:
			err = e.EncodeElement(t, xml.StartElement{Name: xml.Name{Local: "w:tbl"}})
		}
		if err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
