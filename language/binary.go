package language

import "unicode/utf8"

// IsBinaryContent checks if the given byte slice appears to be binary content.
// It checks the first 512 bytes for null bytes, which indicates binary data.
func IsBinaryContent(data []byte) bool {
	checkSize := 512
	if len(data) < checkSize {
		checkSize = len(data)
	}

	for i := 0; i < checkSize; i++ {
		if data[i] == 0 {
			return true
		}
	}
	return false
}

// IsValidText reports whether data is decodable text: not binary and valid UTF-8.
// Binary masquerading under a source extension fails this check and is skipped.
func IsValidText(data []byte) bool {
	return !IsBinaryContent(data) && utf8.Valid(data)
}
