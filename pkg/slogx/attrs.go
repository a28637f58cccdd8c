package slogx

import (
	"log/slog"
)

const (
	// KeyLoggerName is the key for the component that emitted a record.
	KeyLoggerName = "logger"
	// KeyProvider is the key for the LLM provider serving a request.
	KeyProvider = "provider"
	// KeyModel is the key for the concrete model id.
	KeyModel = "model"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

// LoggerName creates a slog.Attr with the provided logger name.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}

// Provider tags a record with the provider identifier.
func Provider(name string) slog.Attr {
	return slog.String(KeyProvider, name)
}

// Model tags a record with the concrete model id.
func Model(name string) slog.Attr {
	return slog.String(KeyModel, name)
}

// Secret logs whether a secret is configured without ever emitting its value.
func Secret(key, value string) slog.Attr {
	if value == "" {
		return slog.String(key, "<unset>")
	}
	return slog.String(key, "<redacted>")
}

// Redacted is a string that renders as a placeholder when logged.
type Redacted string

// LogValue implements slog.LogValuer.
func (r Redacted) LogValue() slog.Value {
	if r == "" {
		return slog.StringValue("<unset>")
	}
	return slog.StringValue("<redacted>")
}
