package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Extra slog levels for the ends of the priority ladder.
const (
	LevelVerbose slog.Level = slog.LevelDebug - 4
	LevelAssert  slog.Level = slog.LevelError + 4
)

// Priority is the importance of a log record.
type Priority int

const (
	PriorityVerbose Priority = iota
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityAssert
)

func (p Priority) String() string {
	switch p {
	case PriorityVerbose:
		return "verbose"
	case PriorityDebug:
		return "debug"
	case PriorityInfo:
		return "info"
	case PriorityWarn:
		return "warn"
	case PriorityError:
		return "error"
	case PriorityAssert:
		return "assert"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Level maps p onto a slog level.
func (p Priority) Level() slog.Level {
	switch p {
	case PriorityVerbose:
		return LevelVerbose
	case PriorityDebug:
		return slog.LevelDebug
	case PriorityWarn:
		return slog.LevelWarn
	case PriorityError:
		return slog.LevelError
	case PriorityAssert:
		return LevelAssert
	default:
		return slog.LevelInfo
	}
}

// ParsePriority accepts priority names case-insensitively, plus "warning".
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose":
		return PriorityVerbose, nil
	case "debug":
		return PriorityDebug, nil
	case "info", "":
		return PriorityInfo, nil
	case "warn", "warning":
		return PriorityWarn, nil
	case "error":
		return PriorityError, nil
	case "assert":
		return PriorityAssert, nil
	default:
		return PriorityInfo, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}

// Log emits msg at priority p.
func Log(ctx context.Context, l *slog.Logger, p Priority, msg string, attrs ...slog.Attr) {
	l.LogAttrs(ctx, p.Level(), msg, attrs...)
}
