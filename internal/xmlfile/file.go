// Package xmlfile stores an address book in a single XML file.
//
// A File owns a validated path and exposes two operations: Save writes the
// whole book, replacing any previous content, and Load reads it back. Loading
// a path where no file exists yields an empty book. Every failure is an
// *Error wrapping one of the Err* kinds.
package xmlfile

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

const (
	// DefaultPath is used when New is called with an empty path.
	DefaultPath = "addressbook.xml"

	// Extension is the required, case-sensitive suffix of a storage path.
	Extension = ".xml"
)

// File is an XML storage file. It holds no state besides its path and is
// not safe for concurrent Save calls.
type File struct {
	path   string
	logger *slog.Logger
}

// Option configures a File.
type Option func(*File)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(f *File) {
		if l != nil {
			f.logger = l
		}
	}
}

// New validates path and returns a File for it. An empty path selects
// DefaultPath. Returns ErrInvalidPath if path does not end with Extension;
// the file itself need not exist.
func New(path string, opts ...Option) (*File, error) {
	if path == "" {
		path = DefaultPath
	}
	if !isValidPath(path) {
		return nil, &Error{Kind: ErrInvalidPath, Path: path}
	}
	f := &File{
		path:   path,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func isValidPath(path string) bool {
	return strings.HasSuffix(path, Extension)
}

// Path returns the storage file path.
func (f *File) Path() string {
	return f.path
}

// Save writes book to the storage file, overwriting it. The book is not
// modified. A failed write may leave the file truncated.
// Returns ErrWrite for I/O failures and ErrConversion for encoding failures.
func (f *File) Save(book types.AddressBook) (err error) {
	doc := addressBookToXML(book)

	out, err := os.Create(f.path)
	if err != nil {
		return f.fail(ErrWrite, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = f.fail(ErrWrite, cerr)
		}
	}()

	w := &errWriter{w: out}
	buf := bufio.NewWriter(w)
	if err := encode(buf, doc); err != nil {
		if w.err != nil {
			return f.fail(ErrWrite, w.err)
		}
		return f.fail(ErrConversion, err)
	}
	if err := buf.Flush(); err != nil {
		return f.fail(ErrWrite, err)
	}

	f.logger.Debug("saved address book", "path", f.path, "contacts", len(doc.Contacts))
	return nil
}

func encode(w io.Writer, doc addressBookXML) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// decode reads exactly one address book document from r. Comments,
// processing instructions and whitespace may follow the root element;
// anything else is an error.
func decode(r io.Reader, doc *addressBookXML) error {
	dec := xml.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		return err
	}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("unexpected element <%s> after root element", t.Name.Local)
		case xml.EndElement:
			return fmt.Errorf("unexpected end element </%s> after root element", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("unexpected text after root element")
			}
		case xml.Directive:
			return errors.New("unexpected directive after root element")
		}
	}
}

// Load reads the storage file. If nothing exists at the path, or the path is
// not a regular file, it returns an empty book and nil.
// Returns ErrParse for malformed XML, ErrMissingElements if any contact lacks
// a required field, and ErrInvalidValues if a present field fails validation.
// Missing fields are checked across the whole document before any value is
// validated.
func (f *File) Load() (types.AddressBook, error) {
	info, err := os.Stat(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("storage file not found, starting empty", "path", f.path)
		return types.AddressBook{}, nil
	}
	if err != nil {
		return types.AddressBook{}, f.fail(ErrRead, err)
	}
	if !info.Mode().IsRegular() {
		f.logger.Debug("storage path is not a regular file, starting empty", "path", f.path)
		return types.AddressBook{}, nil
	}

	in, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.AddressBook{}, f.fail(ErrInternal, err)
		}
		return types.AddressBook{}, f.fail(ErrRead, err)
	}
	defer in.Close()

	r := &errReader{r: in}
	var doc addressBookXML
	if err := decode(bufio.NewReader(r), &doc); err != nil {
		if r.err != nil {
			return types.AddressBook{}, f.fail(ErrRead, r.err)
		}
		return types.AddressBook{}, f.fail(ErrParse, err)
	}

	if doc.isAnyRequiredFieldMissing() {
		return types.AddressBook{}, f.fail(ErrMissingElements, doc.firstMissingField())
	}

	book, err := doc.toModel()
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			return types.AddressBook{}, f.fail(ErrInvalidValues, verr)
		}
		return types.AddressBook{}, f.fail(ErrInternal, err)
	}

	f.logger.Debug("loaded address book", "path", f.path, "contacts", book.Len())
	return book, nil
}

func (f *File) fail(kind, cause error) error {
	f.logger.Debug("storage operation failed", "path", f.path, "kind", kind, "error", cause)
	return &Error{Kind: kind, Path: f.path, Err: cause}
}

// errWriter records the first error from the underlying writer so that Save
// can tell I/O failures apart from encoding failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err != nil && e.err == nil {
		e.err = err
	}
	return n, err
}

// errReader records the first non-EOF read error.
type errReader struct {
	r   io.Reader
	err error
}

func (e *errReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err != nil && err != io.EOF && e.err == nil {
		e.err = err
	}
	return n, err
}
