// Package android implements reading and writing of Android strings.xml files
// for a platform-agnostic string set.
//
// Reading is deliberately tolerant: documents are scanned line by line with a
// handful of patterns instead of being decoded as XML, so hand-edited files
// that are not strictly well-formed still yield their entries. Only
// single-line <string> resources are understood; <string-array> and <plurals>
// are ignored.
//
// Values are converted between the Android escaped form and canonical text by
// the ordered pipelines in value.go.
package android

import "errors"

const (
	// FormatName identifies this codec.
	FormatName = "android"
	// Extension is the file extension of Android string resources.
	Extension = ".xml"
	// DefaultFileName is the resource file written into each values directory.
	DefaultFileName = "strings.xml"
	// BaseDirName is the resource directory of the default language.
	BaseDirName = "values"
)

// ErrInvalidEncoding is returned by ReadFile for documents that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// Registrar receives the entries found while parsing a document. It is the
// only way the parser touches the caller's string set.
type Registrar interface {
	// SetTranslation records value as the translation of key for lang.
	SetTranslation(key, lang, value string)
	// SetComment records the comment attached to key.
	SetComment(key, comment string)
}
