package terminal

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBuffer_Wraps(t *testing.T) {
	lb := NewLogBuffer(3)
	for i, msg := range []string{"a", "b", "c", "d"} {
		lb.Add(LogEntry{Message: msg, Time: time.Unix(int64(i), 0)})
	}

	recent := lb.GetRecent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Message)
	assert.Equal(t, "c", recent[1].Message)
	assert.Equal(t, "b", recent[2].Message)

	assert.Len(t, lb.GetRecent(2), 2)

	lb.Clear()
	assert.Empty(t, lb.GetRecent(0))
	assert.Zero(t, lb.Len())
}

func TestLogBufferHandler(t *testing.T) {
	lb := NewLogBuffer(10)
	logger := slog.New(NewLogBufferHandler(lb, slog.LevelInfo))

	logger.Debug("hidden")
	logger.Info("Song loaded", "name", "scale", "events", 30)
	logger.With("song", "twinkle").WithGroup("voice").Warn("Voice pool full", "note", 64)

	recent := lb.GetRecent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "Voice pool full song=twinkle voice.note=64", recent[0].Message)
	assert.Equal(t, slog.LevelWarn, recent[0].Level)
	assert.Equal(t, "Song loaded name=scale events=30", recent[1].Message)
}

func TestFormatLogEntry(t *testing.T) {
	ts := time.Date(2024, 1, 1, 13, 4, 5, 0, time.UTC)
	assert.Equal(t, "13:04:05 [WRN] careful", FormatLogEntry(LogEntry{Time: ts, Level: slog.LevelWarn, Message: "careful"}))
	assert.Equal(t, "13:04:05 [???] odd", FormatLogEntry(LogEntry{Time: ts, Level: slog.Level(2), Message: "odd"}))
}
