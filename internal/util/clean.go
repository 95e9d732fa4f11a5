package util

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

const maxBinaryCheckBytes = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IsLikelyBinary reports whether the data looks like a binary file rather
// than delimited text. Checks only the leading bytes.
func IsLikelyBinary(data []byte) bool {
	if len(data) > maxBinaryCheckBytes {
		data = data[:maxBinaryCheckBytes]
	}
	return bytes.Contains(data, []byte{0})
}

// CleanUploadContent prepares raw uploaded bytes for CSV parsing: the UTF-8
// BOM (as written by spreadsheet exports) is stripped and the content is
// required to be valid UTF-8.
func CleanUploadContent(data []byte, src string) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8 text", src)
	}
	return string(data), nil
}
