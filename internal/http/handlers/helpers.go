package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"lavoro/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		if maxBytesExceeded(err) {
			return common.NewValidationError("request body too large", nil)
		}
		return common.NewValidationError("invalid json body", nil)
	}
	return nil
}

// idFromPath extracts the path segment at index (zero-based, leading
// slash stripped) and parses it as a UUID. "/jobs/<id>" has the id at
// index 1.
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index >= len(segments) || segments[index] == "" {
		return "", common.NewValidationError("missing id in path", nil)
	}
	parsed, err := common.ParseUUID(segments[index])
	if err != nil {
		return "", common.NewValidationError("invalid id in path", map[string]string{"id": "invalid uuid"})
	}
	return parsed, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}

// maxBytesExceeded reports whether decoding failed because the body hit
// the request size cap installed by the router.
func maxBytesExceeded(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
