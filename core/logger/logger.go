// Package logger is a standardized event logging framework for shell
// sessions. Events are recorded as newline-delimited JSON objects so they can
// be tailed and processed with standard tooling.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// Entry is one logged event. Exactly one of the event fields is set.
type Entry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart *SessionStart `json:"session_start,omitempty"`
	SessionEnd   *SessionEnd   `json:"session_end,omitempty"`
	Login        *Login        `json:"login,omitempty"`
	CommandRun   *CommandRun   `json:"command_run,omitempty"`
}

// SessionStart marks the beginning of an interactive or scripted session.
type SessionStart struct {
	User string `json:"user,omitempty"`
	Home string `json:"home,omitempty"`
}

// SessionEnd marks the end of a session.
type SessionEnd struct{}

// Login records an authentication attempt on the SSH front-end.
type Login struct {
	Success    bool   `json:"success"`
	Username   string `json:"username"`
	RemoteAddr string `json:"remote_addr"`
}

// CommandRun records one top-level input line and its outcome.
type CommandRun struct {
	Line           string `json:"line"`
	ExitCode       int    `json:"exit_code"`
	DurationMicros int64  `json:"duration_micros"`
}

// Recorder is a callback that stores events in an external datastore.
type Recorder func(e *Entry) error

// Logger captures session interaction events.
type Logger struct {
	Record Recorder
}

// NewJSONLines creates a Logger that exports events in newline-delimited
// JSON object format.
func NewJSONLines(w io.Writer) *Logger {
	return &Logger{
		Record: func(e *Entry) error {
			data, err := json.Marshal(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(data))
			return err
		},
	}
}

// NewNop creates a Logger that discards all events.
func NewNop() *Logger {
	return &Logger{Record: func(*Entry) error { return nil }}
}

// NewSession creates a logger with an attached random session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

// Record fills in the envelope fields of e and stores it.
func (l *SessionLogger) Record(e *Entry) error {
	e.TimestampMicros = time.Now().UnixMicro()
	e.SessionID = l.sessionID
	return l.logger.Record(e)
}
