package imaging

import "strings"

// Base64SizeInBytes computes the decoded byte size of a data URL's base64
// payload from its string length, accounting for '=' padding:
// floor(len*3/4) minus 2 bytes for "==", 1 for a single "=", else 0.
// A plain base64 string (no "data:...," prefix) is measured the same way.
func Base64SizeInBytes(dataURL string) int {
	payload := dataURL
	if i := strings.IndexByte(dataURL, ','); i >= 0 {
		payload = dataURL[i+1:]
	}
	if payload == "" {
		return 0
	}

	padding := 0
	if strings.HasSuffix(payload, "==") {
		padding = 2
	} else if strings.HasSuffix(payload, "=") {
		padding = 1
	}

	return len(payload)*3/4 - padding
}
