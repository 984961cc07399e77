package shared_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard/internal/api/shared"
	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, shared.GetTraceID(context.Background()))

	ctx := shared.SetTraceID(context.Background())
	traceID := shared.GetTraceID(ctx)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)

	other := shared.GetTraceID(shared.SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)

	assert.Equal(t, "fixed", shared.GetTraceID(shared.WithTraceID(context.Background(), "fixed")))
}
