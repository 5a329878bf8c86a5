package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPage       = "page"
	KeyTitle      = "title"
	KeyPath       = "path"
	KeyInput      = "input"
	KeyOutput     = "output"
	KeyCount      = "count"
	KeyStage      = "stage"
	KeyBuildID    = "build_id"
	KeyDurationMS = "duration_ms"
	KeyTheme      = "theme"
	KeyURL        = "url"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Page(name string) slog.Attr      { return slog.String(KeyPage, name) }
func Title(t string) slog.Attr        { return slog.String(KeyTitle, t) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Input(p string) slog.Attr        { return slog.String(KeyInput, p) }
func Output(p string) slog.Attr       { return slog.String(KeyOutput, p) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Theme(name string) slog.Attr     { return slog.String(KeyTheme, name) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
