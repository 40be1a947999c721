package logger

import "testing"

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		l, err := New(level)
		if err != nil {
			t.Errorf("level %q: %v", level, err)
			continue
		}
		_ = l.Sync()
	}

	if _, err := New("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
