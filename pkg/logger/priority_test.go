package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stuffkit/pkg/logger"
)

func TestPriority_Level(t *testing.T) {
	t.Parallel()

	assert.Equal(t, logger.LevelVerbose, logger.PriorityVerbose.Level())
	assert.Equal(t, slog.LevelDebug, logger.PriorityDebug.Level())
	assert.Equal(t, slog.LevelInfo, logger.PriorityInfo.Level())
	assert.Equal(t, slog.LevelWarn, logger.PriorityWarn.Level())
	assert.Equal(t, slog.LevelError, logger.PriorityError.Level())
	assert.Equal(t, logger.LevelAssert, logger.PriorityAssert.Level())
	assert.Less(t, logger.LevelVerbose, slog.LevelDebug)
	assert.Greater(t, logger.LevelAssert, slog.LevelError)
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]logger.Priority{
		"verbose": logger.PriorityVerbose,
		"DEBUG":   logger.PriorityDebug,
		"":        logger.PriorityInfo,
		"warning": logger.PriorityWarn,
		"Error":   logger.PriorityError,
		"assert":  logger.PriorityAssert,
	} {
		got, err := logger.ParsePriority(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
		if name != "" && name != "warning" {
			assert.Equal(t, strings.ToLower(name), got.String())
		}
	}

	_, err := logger.ParsePriority("loud")
	assert.True(t, errors.Is(err, logger.ErrInvalidPriority))
}

func TestLog(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithPriority(logger.PriorityVerbose))

	logger.Log(context.Background(), log, logger.PriorityVerbose, "noisy", logger.Index(1))
	entry := decode(t, buf)
	assert.Equal(t, "VERBOSE", entry["level"])
	assert.Equal(t, "noisy", entry["msg"])
	assert.EqualValues(t, 1, entry["index"])

	buf.Reset()
	logger.Log(context.Background(), log, logger.PriorityAssert, "impossible")
	assert.Equal(t, "ASSERT", decode(t, buf)["level"])
}
