package testutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogBuffer collects JSON log lines written through the global logger.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Entries decodes every captured line.
func (b *LogBuffer) Entries() []map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	var entries []map[string]interface{}
	for _, line := range strings.Split(b.buf.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Messages returns the message of every entry logged at level.
func (b *LogBuffer) Messages(level zerolog.Level) []string {
	var msgs []string
	for _, e := range b.Entries() {
		if e[zerolog.LevelFieldName] == level.String() {
			msg, _ := e[zerolog.MessageFieldName].(string)
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Contains reports whether any entry has the given message.
func (b *LogBuffer) Contains(msg string) bool {
	for _, e := range b.Entries() {
		if e[zerolog.MessageFieldName] == msg {
			return true
		}
	}
	return false
}

// CaptureLogs points the global logger at a buffer for the rest of the test
// and lowers the global level to trace. Both are restored on cleanup.
func CaptureLogs(t *testing.T) *LogBuffer {
	t.Helper()

	buf := &LogBuffer{}
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()

	log.Logger = zerolog.New(buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	return buf
}
