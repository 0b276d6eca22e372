// Package storage provides the public API for the XML address book file.
// It exposes the constructor and error kinds while keeping the on-disk
// record shapes internal.
package storage

import (
	"github.com/mesh-intelligence/addressbook/internal/xmlfile"
)

// File is an address book storage file.
type File = xmlfile.File

// Option configures a File.
type Option = xmlfile.Option

// Error describes a failed storage operation.
type Error = xmlfile.Error

const (
	DefaultPath = xmlfile.DefaultPath
	Extension   = xmlfile.Extension
)

// Error kinds; match with errors.Is.
var (
	ErrInvalidPath     = xmlfile.ErrInvalidPath
	ErrWrite           = xmlfile.ErrWrite
	ErrConversion      = xmlfile.ErrConversion
	ErrParse           = xmlfile.ErrParse
	ErrRead            = xmlfile.ErrRead
	ErrMissingElements = xmlfile.ErrMissingElements
	ErrInvalidValues   = xmlfile.ErrInvalidValues
	ErrInternal        = xmlfile.ErrInternal
)

// WithLogger sets the logger used for debug output.
var WithLogger = xmlfile.WithLogger

// NewFile validates path and returns a storage File. An empty path selects
// DefaultPath.
//
// Example:
//
//	f, err := storage.NewFile("contacts.xml")
//	if err != nil {
//	    return err
//	}
//	book, err := f.Load()
func NewFile(path string, opts ...Option) (*File, error) {
	return xmlfile.New(path, opts...)
}
