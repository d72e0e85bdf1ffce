package debug

import (
	"log/slog"
	"testing"
)

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"no", false},
		{"0", false},
	}
	for _, tt := range tests {
		t.Setenv("NBT_DEBUG_TEST", tt.val)
		if got := boolEnv("NBT_DEBUG_TEST"); got != tt.want {
			t.Errorf("%q: got %t", tt.val, got)
		}
	}
}

func TestLevel(t *testing.T) {
	defer Set(Decode(), Structure())
	Set(false, false)
	if Level() != slog.LevelInfo {
		t.Error(Level())
	}
	Set(false, true)
	if !Structure() || Level() != slog.LevelDebug {
		t.Error(Level())
	}
}
