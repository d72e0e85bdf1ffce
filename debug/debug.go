package debug

import (
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Decode    bool
	Structure bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("NBT_DEBUG_DECODE")
	d.Structure = boolEnv("NBT_DEBUG_STRUCTURE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Structure() bool {
	return d.Structure
}

// Set overrides the flags read from the environment.
func Set(decode, structure bool) {
	d.Decode = decode
	d.Structure = structure
}

// Level is the slog level verbose output should be logged at: Debug
// when any flag is on, otherwise Info.
func Level() slog.Level {
	if d.Decode || d.Structure {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
