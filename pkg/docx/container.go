package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Well-known part names inside the package.
const (
	partContentTypes = "[Content_Types].xml"
	partPackageRels  = "_rels/.rels"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partCoreProps    = "docProps/core.xml"
	partAppProps     = "docProps/app.xml"
	partCustomProps  = "docProps/custom.xml"
)

const (
	contentTypeCustomProps = "application/vnd.openxmlformats-officedocument.custom-properties+xml"
	relTypeCustomProps     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/custom-properties"
)

// readParts indexes every part of a docx ZIP archive by name and verifies the
// main document part is present.
func readParts(data []byte) (map[string][]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}
	parts := make(map[string][]byte, len(zr.File))
	for _, file := range zr.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open part %s: %w", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read part %s: %w", file.Name, err)
		}
		parts[file.Name] = content
	}
	if _, ok := parts[partDocument]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing %s", partDocument)
	}
	return parts, nil
}

// writeParts writes the parts map as a docx ZIP archive. Content types and
// package relationships go first, the rest in sorted order, so output is
// deterministic for a given parts map.
func writeParts(w io.Writer, parts map[string][]byte) error {
	zw := zip.NewWriter(w)
	names := make([]string, 0, len(parts))
	for name := range parts {
		if name == partContentTypes || name == partPackageRels {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	ordered := make([]string, 0, len(parts))
	for _, lead := range []string{partContentTypes, partPackageRels} {
		if _, ok := parts[lead]; ok {
			ordered = append(ordered, lead)
		}
	}
	ordered = append(ordered, names...)

	for _, name := range ordered {
		fw, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", name, err)
		}
		if _, err := fw.Write(parts[name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return zw.Close()
}

const blankContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/><Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/><Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/><Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/></Types>`

const blankPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/><Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/></Relationships>`

const blankDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/></Relationships>`

const blankDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body><w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1417" w:right="1417" w:bottom="1134" w:left="1417" w:header="708" w:footer="708" w:gutter="0"/></w:sectPr></w:body></w:document>`

const blankStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:style w:type="paragraph" w:styleId="Normal"><w:name w:val="Normal"/></w:style><w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/></w:style></w:styles>`

const blankCoreProps = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title></dc:title><dc:creator></dc:creator></cp:coreProperties>`

const blankAppProps = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"><Application>tethys-docx-go</Application></Properties>`

// BulletNumberingID is the numbering definition id every unnumbered list item
// references. Blank documents always carry this definition.
const BulletNumberingID = 1

// blankNumbering builds word/numbering.xml with one bullet abstract
// definition covering all nine indent levels, exposed as numbering id 1.
func blankNumbering() []byte {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	sb.WriteString(`<w:abstractNum w:abstractNumId="0">`)
	for lvl := 0; lvl < 9; lvl++ {
		fmt.Fprintf(&sb, `<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="&#61623;"/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr><w:rPr><w:rFonts w:ascii="Symbol" w:hAnsi="Symbol"/></w:rPr></w:lvl>`,
			lvl, 720*(lvl+1))
	}
	sb.WriteString(`</w:abstractNum>`)
	fmt.Fprintf(&sb, `<w:num w:numId="%d"><w:abstractNumId w:val="0"/></w:num>`, BulletNumberingID)
	sb.WriteString(`</w:numbering>`)
	return []byte(sb.String())
}

// blankParts returns the minimal part set of an empty document.
func blankParts() map[string][]byte {
	return map[string][]byte{
		partContentTypes: []byte(blankContentTypes),
		partPackageRels:  []byte(blankPackageRels),
		partDocument:     []byte(blankDocument),
		partDocumentRels: []byte(blankDocumentRels),
		partStyles:       []byte(blankStyles),
		partNumbering:    blankNumbering(),
		partCoreProps:    []byte(blankCoreProps),
		partAppProps:     []byte(blankAppProps),
	}
}

// ensureCustomPropsDeclared splices the custom-properties override into
// [Content_Types].xml and its relationship into _rels/.rels when missing.
// Existing documents opened from disk may predate any custom property.
func ensureCustomPropsDeclared(parts map[string][]byte) {
	ct := string(parts[partContentTypes])
	if !strings.Contains(ct, "/"+partCustomProps) {
		override := fmt.Sprintf(`<Override PartName="/%s" ContentType="%s"/>`, partCustomProps, contentTypeCustomProps)
		if idx := strings.LastIndex(ct, "</Types>"); idx >= 0 {
			parts[partContentTypes] = []byte(ct[:idx] + override + ct[idx:])
		}
	}

	rels := string(parts[partPackageRels])
	if !strings.Contains(rels, partCustomProps) {
		rel := fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="%s"/>`,
			nextRelationshipID(rels), relTypeCustomProps, partCustomProps)
		if idx := strings.LastIndex(rels, "</Relationships>"); idx >= 0 {
			parts[partPackageRels] = []byte(rels[:idx] + rel + rels[idx:])
		}
	}
}

// removeCustomPropsDeclared strips the custom-properties override from
// [Content_Types].xml and its relationship from _rels/.rels. Counterpart of
// ensureCustomPropsDeclared for when the part is dropped again.
func removeCustomPropsDeclared(parts map[string][]byte) {
	ct := string(parts[partContentTypes])
	if cut, ok := cutElement(ct, `<Override `, `PartName="/`+partCustomProps+`"`); ok {
		parts[partContentTypes] = []byte(cut)
	}

	rels := string(parts[partPackageRels])
	if cut, ok := cutElement(rels, `<Relationship `, `Target="`+partCustomProps+`"`); ok {
		parts[partPackageRels] = []byte(cut)
	}
}

// cutElement removes the first self-closed element that starts with open and
// contains marker, reporting whether one was found.
func cutElement(xmlStr, open, marker string) (string, bool) {
	idx := strings.Index(xmlStr, marker)
	if idx < 0 {
		return xmlStr, false
	}
	start := strings.LastIndex(xmlStr[:idx], open)
	if start < 0 {
		return xmlStr, false
	}
	end := strings.Index(xmlStr[idx:], "/>")
	if end < 0 {
		return xmlStr, false
	}
	return xmlStr[:start] + xmlStr[idx+end+len("/>"):], true
}

// nextRelationshipID picks the first rIdN not used in the relationships XML.
func nextRelationshipID(relsXML string) string {
	for n := 1; ; n++ {
		id := fmt.Sprintf("rId%d", n)
		if !strings.Contains(relsXML, `Id="`+id+`"`) {
			return id
		}
	}
}
