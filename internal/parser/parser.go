// Package parser normalizes raw statement files (CSV, OFX, QFX) into the
// shared transaction shape. It owns format detection and dispatches to the
// per-format parser packages.
package parser

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported statement file format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatOFX Format = "ofx"
	FormatQFX Format = "qfx"
)

// Detect determines the input format. The filename extension is
// authoritative when present; otherwise the content is sniffed for
// OFX/QFX markers. Anything unrecognized is treated as CSV.
func Detect(fileName, content string) Format {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".ofx":
		return FormatOFX
	case ".qfx":
		return FormatQFX
	}

	if IsQFX(content) {
		return FormatQFX
	}
	if IsOFX(content) {
		return FormatOFX
	}
	return FormatCSV
}

// IsOFX reports whether the content carries OFX markers: either the
// OFXHEADER declaration of the SGML variant or an <OFX> root element.
func IsOFX(content string) bool {
	head := sniffWindow(content)
	return strings.Contains(head, "OFXHEADER") || strings.Contains(head, "<OFX>")
}

// IsQFX reports whether the content is a Quicken QFX export: OFX content
// carrying the Intuit extension tags.
func IsQFX(content string) bool {
	head := sniffWindow(content)
	return IsOFX(content) && (strings.Contains(head, "INTU.BID") || strings.Contains(head, "INTU.USERID"))
}

// sniffWindow returns the upper-cased leading slice of the content used by
// the sniffing predicates. Statement markers always appear near the top.
func sniffWindow(content string) string {
	const window = 2048
	if len(content) > window {
		content = content[:window]
	}
	return strings.ToUpper(content)
}
