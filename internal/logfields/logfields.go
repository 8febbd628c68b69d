package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyInput   = "input"
	KeyOutput  = "output"
	KeyPath    = "path"
	KeyPattern = "pattern"
	KeyMarker  = "marker"
	KeyKind    = "kind"
	KeyCount   = "count"
	KeyStage   = "stage"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Input(p string) slog.Attr   { return slog.String(KeyInput, p) }
func Output(p string) slog.Attr  { return slog.String(KeyOutput, p) }
func Path(p string) slog.Attr    { return slog.String(KeyPath, p) }
func Pattern(p string) slog.Attr { return slog.String(KeyPattern, p) }
func Marker(m string) slog.Attr  { return slog.String(KeyMarker, m) }
func Kind(k string) slog.Attr    { return slog.String(KeyKind, k) }
func Count(n int) slog.Attr      { return slog.Int(KeyCount, n) }
func Stage(s string) slog.Attr   { return slog.String(KeyStage, s) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
