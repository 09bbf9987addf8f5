package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLines(t *testing.T) {
	var buf bytes.Buffer
	session := NewJSONLines(&buf).NewSession()

	require.NoError(t, session.Record(&Entry{CommandRun: &CommandRun{Line: "ls -la", ExitCode: 0}}))
	require.NoError(t, session.Record(&Entry{CommandRun: &CommandRun{Line: "bogus", ExitCode: 127}}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second Entry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "ls -la", first.CommandRun.Line)
	assert.Equal(t, 127, second.CommandRun.ExitCode)
	assert.NotEmpty(t, first.SessionID)
	assert.Equal(t, first.SessionID, second.SessionID, "session ID is stable within a session")
	assert.NotZero(t, first.TimestampMicros)
}
