package httpx

import (
	"log/slog"
	"net/http"

	apperrors "github.com/eventdesk/eventdesk/internal/errors"
)

// statusForCode maps the closed error taxonomy onto HTTP statuses.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeValidation, apperrors.ErrCodeDecodeFailed, apperrors.ErrCodeUnsupportedType:
		return http.StatusBadRequest
	case apperrors.ErrCodeSizeExceeded:
		return http.StatusRequestEntityTooLarge
	case apperrors.ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RenderError writes an application error as a JSON response. Errors outside
// the taxonomy render as internal; upstream and internal failures are logged,
// caller mistakes are not.
func RenderError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	status := statusForCode(code)

	if status >= http.StatusInternalServerError && logger != nil {
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", string(code),
			"error", err,
		)
	}

	WriteError(w, ErrorParams{Code: status, ErrCode: string(code), Err: err})
}
