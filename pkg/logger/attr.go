package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a form field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Schema records the path of a schema file.
func Schema(path string) slog.Attr {
	return slog.String("schema", path)
}

// Lang records the language messages are rendered in.
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// RunID records the identifier of one CLI invocation.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Duration records how long an operation took.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component names the part of the program emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
