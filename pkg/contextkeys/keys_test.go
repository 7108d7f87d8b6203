package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalID(t *testing.T) {
	ctx := context.Background()

	_, ok := PrincipalID(ctx)
	assert.False(t, ok)

	ctx = WithPrincipalID(ctx, "user-42")
	id, ok := PrincipalID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-42", id)
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, RequestID(ctx))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
}
