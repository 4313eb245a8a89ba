package model

// EncodedImage is the artifact of the thumbnail pipeline: a data URL pairing
// a MIME type with a base64 payload, plus the measurements the caller needs
// to enforce its ceiling without re-parsing the URL.
type EncodedImage struct {
	// DataURL is "data:<mime>;base64,<payload>".
	DataURL string
	// MIME is the encoded format, e.g. "image/jpeg".
	MIME string
	// Width and Height are the encoded pixel dimensions after bounding.
	Width  int
	Height int
	// PayloadBytes is the decoded size of the base64 payload.
	PayloadBytes int
}
