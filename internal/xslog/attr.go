package xslog

import (
	"log/slog"

	"github.com/garrettladley/ftracker/internal/version"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Code(code string) slog.Attr {
	const codeKey = "code"
	return slog.String(codeKey, code)
}

func Index(i int) slog.Attr {
	const indexKey = "index"
	return slog.Int(indexKey, i)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Format(format string) slog.Attr {
	const formatKey = "format"
	return slog.String(formatKey, format)
}

func Fields(fields map[string]string) slog.Attr {
	const fieldsKey = "fields"
	return slog.Any(fieldsKey, fields)
}
