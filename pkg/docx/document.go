package docx

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/text/language"

	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

// Document is an open .docx package plus the parsed parts this library
// mutates. It is not safe for concurrent use: callers own the handle
// single-threaded for the duration of an edit session and are responsible
// for calling Save on every exit path they care about, because nothing is
// flushed to disk before then.
type Document struct {
	path  string
	parts map[string][]byte

	doc    *ooxml.Document
	styles *ooxml.Styles
	custom *ooxml.CustomProperties

	logger     *Logger
	lang       language.Tag
	bookmarkID int
}

// Option configures a Document handle.
type Option func(*Document)

// WithLogger injects the logger used for diagnostics. The default logs to
// stderr at info level.
func WithLogger(l *Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithLanguage sets the collation language used by exact-mode text search.
func WithLanguage(tag language.Tag) Option {
	return func(d *Document) {
		d.lang = tag
	}
}

func newDocument(opts ...Option) *Document {
	d := &Document{
		logger: DefaultLogger(),
		lang:   language.Und,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// New creates a blank document with an empty body and the minimal part set.
func New(opts ...Option) *Document {
	d := newDocument(opts...)
	d.parts = blankParts()
	doc, err := ooxml.ParseDocument(d.parts[partDocument])
	if err != nil {
		// The blank template is a compile-time constant; failing to parse
		// it is a programming error.
		panic(fmt.Sprintf("docx: blank document template is invalid: %v", err))
	}
	d.doc = doc
	d.EnsureBody()
	return d
}

// Open opens an existing .docx file.
func Open(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	d, err := OpenBytes(data, opts...)
	if err != nil {
		return nil, err
	}
	d.path = path
	return d, nil
}

// OpenBytes opens a document from in-memory .docx bytes.
func OpenBytes(data []byte, opts ...Option) (*Document, error) {
	d := newDocument(opts...)
	parts, err := readParts(data)
	if err != nil {
		return nil, NewDocumentError("open", "", err)
	}
	d.parts = parts
	doc, err := ooxml.ParseDocument(parts[partDocument])
	if err != nil {
		return nil, NewDocumentError("parse", partDocument, err)
	}
	d.doc = doc
	return d, nil
}

// EnsureBody attaches an empty body when the document has none. Calling it on
// a document that already has a body is a no-op, so repeated blank-document
// initialization never duplicates content.
func (d *Document) EnsureBody() *ooxml.Body {
	if d.doc == nil {
		d.doc = &ooxml.Document{}
	}
	if d.doc.Body == nil {
		d.doc.Body = &ooxml.Body{}
		d.logger.Debug("attached empty body to document")
	}
	return d.doc.Body
}

// Body returns the document body, creating it when absent.
func (d *Document) Body() *ooxml.Body {
	return d.EnsureBody()
}

// Logger returns the logger the handle was configured with.
func (d *Document) Logger() *Logger {
	return d.logger
}

// stylesPart returns the parsed styles part, or nil when the package has no
// styles part yet.
func (d *Document) stylesPart() *ooxml.Styles {
	if d.styles != nil {
		return d.styles
	}
	data, ok := d.parts[partStyles]
	if !ok {
		return nil
	}
	styles, err := ooxml.ParseStyles(data)
	if err != nil {
		d.logger.Warn("failed to parse styles part: %v", err)
		return nil
	}
	d.styles = styles
	return d.styles
}

// ensureStylesPart returns the styles part, creating an empty one on demand.
func (d *Document) ensureStylesPart() *ooxml.Styles {
	if s := d.stylesPart(); s != nil {
		return s
	}
	d.styles = &ooxml.Styles{}
	return d.styles
}

// customPart returns the parsed custom properties, creating an empty set on
// demand.
func (d *Document) customPart() (*ooxml.CustomProperties, error) {
	if d.custom != nil {
		return d.custom, nil
	}
	if data, ok := d.parts[partCustomProps]; ok {
		custom, err := ooxml.ParseCustomProperties(data)
		if err != nil {
			return nil, NewDocumentError("parse", partCustomProps, err)
		}
		d.custom = custom
	} else {
		d.custom = &ooxml.CustomProperties{}
	}
	return d.custom, nil
}

// allocBookmarkID hands out document-unique bookmark ids, starting above any
// id already present in the body.
func (d *Document) allocBookmarkID() int {
	if d.bookmarkID == 0 {
		maxID := 0
		for _, p := range d.EnsureBody().Paragraphs() {
			for _, c := range p.Content {
				if b, ok := c.(*ooxml.BookmarkStart); ok && b.ID > maxID {
					maxID = b.ID
				}
			}
		}
		d.bookmarkID = maxID
	}
	d.bookmarkID++
	return d.bookmarkID
}

// flush serializes the mutated parts back into the parts map.
func (d *Document) flush() error {
	docXML, err := d.doc.Marshal()
	if err != nil {
		return NewDocumentError("marshal", partDocument, err)
	}
	d.parts[partDocument] = docXML

	if d.styles != nil {
		stylesXML, err := d.styles.Marshal()
		if err != nil {
			return NewDocumentError("marshal", partStyles, err)
		}
		d.parts[partStyles] = stylesXML
	}

	if d.custom != nil {
		if len(d.custom.Properties) > 0 {
			customXML, err := d.custom.Marshal()
			if err != nil {
				return NewDocumentError("marshal", partCustomProps, err)
			}
			d.parts[partCustomProps] = customXML
			ensureCustomPropsDeclared(d.parts)
		} else {
			// Removing the last property must not leave a stale part
			// behind, or the property would reappear on reopen.
			delete(d.parts, partCustomProps)
			removeCustomPropsDeclared(d.parts)
		}
	}
	return nil
}

// Bytes serializes the document to .docx bytes.
func (d *Document) Bytes() ([]byte, error) {
	if err := d.flush(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeParts(&buf, d.parts); err != nil {
		return nil, NewDocumentError("write", d.path, err)
	}
	return buf.Bytes(), nil
}

// SaveAs writes the document to the given path and remembers it for later
// Save calls.
func (d *Document) SaveAs(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewDocumentError("save", path, err)
	}
	d.path = path
	d.logger.Debug("saved document to %s (%d bytes)", path, len(data))
	return nil
}

// Save writes the document back to the path it was opened from or last saved
// to.
func (d *Document) Save() error {
	if d.path == "" {
		return NewDocumentError("save", "", fmt.Errorf("document has no path; use SaveAs"))
	}
	return d.SaveAs(d.path)
}
