package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard/internal/domain"
)

// getPathID extracts an integer task ID from the URL path parameters.
// A missing or non-integer value yields a ValidationError wrapping
// domain.ErrInvalidID, which the API reports as not found.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// rawTitle returns the title when raw holds a JSON string.
// It reports false for a missing, null or non-string title.
func rawTitle(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var title string
	if err := json.Unmarshal(raw, &title); err != nil {
		return "", false
	}
	return title, true
}
