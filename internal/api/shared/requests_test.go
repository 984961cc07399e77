package shared_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/taskboard/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priorityRequest struct {
	Priority *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"priority":"low"}`))
		var body priorityRequest

		require.NoError(t, shared.DecodeJSON(req, &body))
		require.NotNil(t, body.Priority)
		assert.Equal(t, "low", *body.Priority)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		var body priorityRequest

		assert.ErrorIs(t, shared.DecodeJSON(req, &body), shared.ErrEmptyBody)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"priority":`))
		var body priorityRequest

		err := shared.DecodeJSON(req, &body)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrEmptyBody)
	})
}

func TestValidateRequest(t *testing.T) {
	low, empty, bad := "low", "", "urgent"

	assert.NoError(t, shared.ValidateRequest(&priorityRequest{}))
	assert.NoError(t, shared.ValidateRequest(&priorityRequest{Priority: &low}))

	err := shared.ValidateRequest(&priorityRequest{Priority: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'priority'", "json tag names are used in errors")

	assert.Error(t, shared.ValidateRequest(&priorityRequest{Priority: &empty}))
}
