package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/xeptore/sizeconv/config"
	"github.com/xeptore/sizeconv/constants"
	"github.com/xeptore/sizeconv/ttyutil"
)

func FromConfig(w io.Writer, conf config.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(conf.Level)
	if nil != err {
		panic("invalid logging level: " + conf.Level)
	}

	switch strings.ToLower(conf.Format) {
	case "json":
		return withContext(zerolog.New(w)).Level(level)
	case "pretty":
		return withContext(zerolog.New(console(w))).Level(level)
	default:
		panic("invalid logging format: " + conf.Format)
	}
}

func NewDefault(w io.Writer) zerolog.Logger {
	return withContext(zerolog.New(console(w))).Level(zerolog.InfoLevel)
}

// NewPlain returns a logger for messages meant for the person at the terminal:
// no timestamp, no build metadata and no stack.
func NewPlain(w io.Writer) zerolog.Logger {
	c := console(w)
	c.PartsExclude = []string{zerolog.TimestampFieldName}

	return zerolog.New(c).Level(zerolog.InfoLevel)
}

func console(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:          w,
		NoColor:      !ttyutil.IsTerminal(w),
		TimeFormat:   time.RFC3339,
		TimeLocation: time.UTC,
	}
}

func withContext(l zerolog.Logger) zerolog.Logger {
	return l.
		Hook(&stackHook{}).
		With().
		Timestamp().
		Str("version", constants.Version).
		Str("compile_time", constants.CompileTime).
		Logger()
}
