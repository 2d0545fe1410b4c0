package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", &buf)

	log.WithField("member_id", "me").Debug("Fix applied")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Fix applied", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "me", entry["member_id"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := New("chatty")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
