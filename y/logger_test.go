package y

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, WARNING)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	require.Empty(t, buf.String())

	l.Warningf("warning %d", 3)
	require.Contains(t, buf.String(), "hashcalc ")
	require.Contains(t, buf.String(), "WARNING: warning 3")

	l.Errorf("error %d", 4)
	require.Contains(t, buf.String(), "ERROR: error 4")
}

func TestLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, DEBUG).Debugf("table built")
	require.Contains(t, buf.String(), "DEBUG: table built")
	require.NotNil(t, DefaultLogger())
}

func TestMetricsCounters(t *testing.T) {
	calls := NumChecksums("test-algo")
	hashed := BytesHashed("test-algo")
	NumChecksumsAdd("test-algo", 10)
	NumChecksumsAdd("test-algo", 5)
	require.Equal(t, calls+2, NumChecksums("test-algo"))
	require.Equal(t, hashed+15, BytesHashed("test-algo"))
	require.Equal(t, int64(0), BytesHashed("never-used"))
}
