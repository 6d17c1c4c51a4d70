package logging

import (
	"bytes"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	level := log.GetLevel()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(level)
	})
}

func TestSetup_Levels(t *testing.T) {
	restoreLogger(t)

	cases := []struct {
		in   string
		want log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{" WARN ", log.WarnLevel},
		{"trace", log.TraceLevel},
	}
	for _, tc := range cases {
		require.NoError(t, Setup(tc.in, nil), "level %q", tc.in)
		assert.Equal(t, tc.want, log.GetLevel(), "level %q", tc.in)
	}
}

func TestSetup_RejectsUnknownLevel(t *testing.T) {
	restoreLogger(t)
	require.NoError(t, Setup("error", nil))

	err := Setup("loud", nil)
	assert.Error(t, err)
	assert.Equal(t, log.ErrorLevel, log.GetLevel())
}

func TestSetup_WritesFields(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	require.NoError(t, Setup("info", &buf))

	log.WithField("sim", "battlefield").Debug("hidden")
	log.WithField("sim", "battlefield").Info("battlefield reset")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "battlefield reset")
	assert.Contains(t, out, "sim=battlefield")
}
