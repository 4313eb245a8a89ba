package imaging

import (
	"strings"

	apperrors "github.com/eventdesk/eventdesk/internal/errors"
)

// MaxUploadBytes is the cheap upstream pre-filter ceiling: uploads over 5 MiB
// are rejected before any decode is attempted. This is independent of the
// encoded-size ceiling in Options.
const MaxUploadBytes = 5 << 20

// PrefilterUpload rejects obviously unusable uploads before the pipeline
// spends cycles decoding them: non-image MIME types and oversized payloads.
func PrefilterUpload(contentType string, size int64) error {
	mime := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if !strings.HasPrefix(mime, "image/") {
		return apperrors.UnsupportedTypef("unsupported upload type %q", contentType)
	}
	if size > MaxUploadBytes {
		return apperrors.SizeExceededf("upload is %d bytes, limit is %d", size, int64(MaxUploadBytes))
	}
	return nil
}
