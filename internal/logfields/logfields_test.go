package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Input", KeyInput, "index.html", Input("index.html")},
		{"Output", KeyOutput, "dist/index.html", Output("dist/index.html")},
		{"Path", KeyPath, "assets/app.js", Path("assets/app.js")},
		{"Pattern", KeyPattern, "assets/*.js", Pattern("assets/*.js")},
		{"Marker", KeyMarker, "inject:js", Marker("inject:js")},
		{"Kind", KeyKind, "script", Kind("script")},
		{"Stage", KeyStage, "remove", Stage("remove")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.attr.Key != c.attrKey {
				t.Errorf("expected key %q, got %q", c.attrKey, c.attr.Key)
			}
			if got := c.attr.Value.String(); got != c.attrVal {
				t.Errorf("expected value %q, got %q", c.attrVal, got)
			}
		})
	}
}

func TestErrorHelper(t *testing.T) {
	attr := Error(errors.New("boom"))
	if attr.Key != KeyError || attr.Value.String() != "boom" {
		t.Errorf("unexpected attr: %v", attr)
	}
	if got := Error(nil).Value.String(); got != "" {
		t.Errorf("nil error should render empty, got %q", got)
	}
}
