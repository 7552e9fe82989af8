package logging

import (
	"log/slog"
	"testing"

	"github.com/matryer/is"
)

func TestParseLevel(t *testing.T) {
	is := is.New(t)

	is.Equal(slog.LevelDebug, ParseLevel("debug"))
	is.Equal(slog.LevelInfo, ParseLevel("info"))
	is.Equal(slog.LevelWarn, ParseLevel("warn"))
	is.Equal(slog.LevelError, ParseLevel("error"))
	is.Equal(slog.LevelError, ParseLevel("whatever"))
}
