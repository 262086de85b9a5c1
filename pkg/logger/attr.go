package logger

import (
	"log/slog"
	"time"
)

// Error returns an empty Attr for a nil err, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Form records which form a request targets, such as login or signup.
func Form(name string) slog.Attr {
	return slog.String("form", name)
}
