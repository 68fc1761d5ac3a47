// Package plist generates the property list files for synthesized wrapper
// app bundles.
package plist

import (
	"strings"
)

// EscapeXML escapes special characters for XML content.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// xmlHeader returns the standard XML header for property list files.
func xmlHeader() string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">`
}

// wrapPlist wraps content in a plist root element.
func wrapPlist(content string) string {
	return xmlHeader() + "\n" + `<plist version="1.0">` + "\n" + content + "\n" + `</plist>` + "\n"
}

// wrapDict wraps content in a dict element.
func wrapDict(content string) string {
	return `<dict>` + "\n" + content + "\n" + `</dict>`
}

// xmlKeyValue creates a key-value pair for XML plists.
func xmlKeyValue(key, value string) string {
	return "\t<key>" + EscapeXML(key) + "</key>\n\t<string>" + EscapeXML(value) + "</string>"
}
