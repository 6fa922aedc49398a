package render

import (
	"errors"
	"strings"
)

// Format is an export target.
type Format string

const (
	FormatDoc  Format = "doc"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// ErrUnknownFormat is returned by ParseFormat for anything other than doc, html or pdf.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts the query-string spelling, case-insensitively.
// An empty value selects doc.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "doc", "word":
		return FormatDoc, nil
	case "html":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", ErrUnknownFormat
	}
}

// Ext is the file extension without the dot.
func (f Format) Ext() string {
	return string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatDoc:
		return "application/msword"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
