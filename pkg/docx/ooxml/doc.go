// Package ooxml defines the WordprocessingML structures this library reads
// and writes. A DOCX file is a ZIP archive of XML parts; the types here model
// the subset of word/document.xml, word/styles.xml and docProps/custom.xml
// that the docx package produces.
//
// The standard encoding/xml marshaller cannot emit prefixed names like w:p,
// so every element that ends up in a document part carries a hand-written
// MarshalXML. UnmarshalXML is implemented wherever element order matters
// (a body interleaves paragraphs and tables; a paragraph interleaves runs
// and bookmarks) because struct-tag decoding collects repeated children per
// field and loses their relative order.
package ooxml
