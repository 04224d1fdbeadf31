package wall

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextReleaseIsIdempotent(t *testing.T) {
	var ctx Context

	require.NotPanics(t, func() {
		ctx.Release()
		ctx.Release()
	})
}

func TestLogLevelTableCoversWgpuLevels(t *testing.T) {
	for _, name := range []string{"OFF", "ERROR", "WARN", "INFO", "DEBUG", "TRACE"} {
		_, ok := logLevels[name]
		require.True(t, ok, "level %s", name)
	}
}
