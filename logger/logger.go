package logger

// Record describes the outcome of a logging call.
type Record struct {
	// AppName is the application name configured at call time, "" when unset.
	AppName string
	// Color is the resolved level color, "" when the call was filtered out
	// or the level has no color.
	Color Color
	// Message is the substituted message, or the raw template when filtered out.
	Message string
	Level   Level
	Tag     string

	emitted bool
}

// Emitted reports whether the call was written to the sink.
func (r Record) Emitted() bool {
	return r.emitted
}

// Logger writes tagged lines using a shared Settings.
type Logger struct {
	tag      string
	settings *Settings
}

// New returns a Logger for tag that reads the process-wide Globals.
func New(tag string) *Logger {
	return NewWithSettings(tag, Globals)
}

// NewWithSettings returns a Logger for tag bound to settings.
// A nil settings falls back to Globals.
func NewWithSettings(tag string, settings *Settings) *Logger {
	if settings == nil {
		settings = Globals
	}
	return &Logger{tag: tag, settings: settings}
}

// Tag returns the tag printed in every line.
func (l *Logger) Tag() string {
	return l.tag
}

// Settings returns the configuration this logger reads on every call.
func (l *Logger) Settings() *Settings {
	return l.settings
}

// Log writes message at level if level is at or above the configured minimum.
// Tokens {1}, {2}, ... in message are replaced by the matching params.
// Thread-safe for concurrent use.
func (l *Logger) Log(level Level, message string, params ...any) Record {
	snap := l.settings.snapshotFor(level)
	if level < snap.minLevel {
		return Record{
			AppName: snap.appName,
			Message: message,
			Level:   level,
			Tag:     l.tag,
		}
	}

	msg := substitute(message, params, snap.pretty)
	l.settings.write(snap.out, formatLine(snap, level, l.tag, msg))

	return Record{
		AppName: snap.appName,
		Color:   snap.color,
		Message: msg,
		Level:   level,
		Tag:     l.tag,
		emitted: true,
	}
}

// Verbose logs at VerboseLevel.
func (l *Logger) Verbose(message string, params ...any) Record {
	return l.Log(VerboseLevel, message, params...)
}

// Info logs at InfoLevel.
func (l *Logger) Info(message string, params ...any) Record {
	return l.Log(InfoLevel, message, params...)
}

// Debug logs at DebugLevel.
func (l *Logger) Debug(message string, params ...any) Record {
	return l.Log(DebugLevel, message, params...)
}

// Warn logs at WarnLevel.
func (l *Logger) Warn(message string, params ...any) Record {
	return l.Log(WarnLevel, message, params...)
}

// Success logs at SuccessLevel.
func (l *Logger) Success(message string, params ...any) Record {
	return l.Log(SuccessLevel, message, params...)
}

// Error logs at ErrorLevel.
func (l *Logger) Error(message string, params ...any) Record {
	return l.Log(ErrorLevel, message, params...)
}
