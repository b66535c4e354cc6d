//go:build production

package digest

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/pqhash/internal/logging"
)

func TestUnavailable_SilentInProductionBuilds(t *testing.T) {
	require.False(t, warnUnavailableEnabled)

	var buf bytes.Buffer
	hasher := New(WithLogger(logging.NewWriterLogger(&buf, false)), WithOrder(KindUnavailable))

	got, err := hasher.Hash(context.Background(), "{ a }")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, buf.String())
}
