package logger

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level defines log severity. Higher values are more severe.
type Level int

const (
	// VerboseLevel enables verbose logging.
	VerboseLevel Level = iota
	// InfoLevel enables informational logging.
	InfoLevel
	// DebugLevel enables debug logging.
	DebugLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// SuccessLevel enables success logging.
	SuccessLevel
	// ErrorLevel enables error logging.
	ErrorLevel
)

var levelNames = [...]string{
	VerboseLevel: "verbose",
	InfoLevel:    "info",
	DebugLevel:   "debug",
	WarnLevel:    "warn",
	SuccessLevel: "success",
	ErrorLevel:   "error",
}

// AllLevels returns all supported levels in ascending order.
func AllLevels() []Level {
	return []Level{
		VerboseLevel,
		InfoLevel,
		DebugLevel,
		WarnLevel,
		SuccessLevel,
		ErrorLevel,
	}
}

// Valid reports whether l is one of the six defined levels.
func (l Level) Valid() bool {
	return l >= VerboseLevel && l <= ErrorLevel
}

// String returns the lowercase level name, which is also the name of the
// Logger method that logs at this level.
func (l Level) String() string {
	if !l.Valid() {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// Upper returns the name printed in console lines.
func (l Level) Upper() string {
	return strings.ToUpper(l.String())
}

// ParseLevel parses a level name (case-insensitive) or its ordinal.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "verbose":
		return VerboseLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "success":
		return SuccessLevel, nil
	case "error":
		return ErrorLevel, nil
	}
	if n, err := strconv.Atoi(name); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return VerboseLevel, errors.Errorf("unknown log level %q", s)
}
