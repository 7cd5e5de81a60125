package log

import (
	"fmt"
	"strings"
)

type Level int

const LevelTrace Level = -8
const LevelDebug Level = -4
const LevelInfo Level = 0
const LevelWarn Level = 4
const LevelError Level = 8
const LevelFatal Level = 12

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

// ParseLevel accepts a level name in any case, e.g. "debug" or "DEBUG".
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}
	return LevelInfo, fmt.Errorf("invalid log level: %q", s)
}

func (level Level) String() string {
	if s, ok := levelNames[level]; ok {
		return s
	}
	return "UNKNOWN"
}
