package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, false)
	l.Infof("compressed %d bytes", 10)
	l.Errorf("failed: %v", "boom")
	l.Debugf("hidden")

	out := buf.String()
	require.Contains(t, out, "[INFO] compressed 10 bytes")
	require.Contains(t, out, "[ERROR] failed: boom")
	require.NotContains(t, out, "hidden")

	buf.Reset()
	New(&buf, true).Debugf("shown %d", 1)
	require.Contains(t, buf.String(), "[DEBUG] shown 1")
}
