// Package sl tem helpers para campos estruturados do slog.
package sl

import "log/slog"

// Err devolve um slog.Attr padronizado com a chave "error".
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
