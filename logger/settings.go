package logger

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Environment variables read by LoadEnv.
const (
	EnvAppName    = "SLIMLOG_APP_NAME"
	EnvLevel      = "SLIMLOG_LEVEL"
	EnvPrettyJSON = "SLIMLOG_PRETTY_JSON"
	EnvColor      = "SLIMLOG_COLOR"
	EnvNoColor    = "NO_COLOR"
)

// Settings is the configuration consulted by every Logger holding it.
// Changes are visible to all holders on their next call.
// Thread-safe for concurrent use.
type Settings struct {
	mu         sync.RWMutex
	appName    string
	minLevel   Level
	colors     map[Level]Color
	prettyJSON bool
	colorize   bool
	out        io.Writer

	// writeMu serializes writes so lines from concurrent callers never interleave.
	writeMu sync.Mutex
	// now is swapped in tests.
	now func() time.Time
}

// Globals is the process-wide Settings used by loggers created with New.
var Globals = NewSettings()

// NewSettings returns Settings with the defaults: no app name, all levels
// enabled, default colors, pretty JSON, colored output to stdout.
func NewSettings() *Settings {
	s := &Settings{}
	s.Reset()
	return s
}

// Reset restores the defaults.
func (s *Settings) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appName = ""
	s.minLevel = VerboseLevel
	s.colors = map[Level]Color{}
	s.prettyJSON = true
	s.colorize = true
	s.out = os.Stdout
	s.now = time.Now
}

// AppName returns the application name, or "" when unset.
func (s *Settings) AppName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appName
}

// SetAppName sets the application name printed in every line. "" clears it.
func (s *Settings) SetAppName(name string) {
	s.mu.Lock()
	s.appName = name
	s.mu.Unlock()
}

// MinimumLevel returns the lowest level that is emitted.
func (s *Settings) MinimumLevel() Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minLevel
}

// SetMinimumLevel filters out every call below level.
// Values outside the defined levels are compared numerically: anything above
// ErrorLevel silences all output and anything below VerboseLevel enables it all.
func (s *Settings) SetMinimumLevel(level Level) {
	s.mu.Lock()
	s.minLevel = level
	s.mu.Unlock()
}

// Color returns the color used for level: the override if one is set,
// the default otherwise.
func (s *Settings) Color(level Level) Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colorLocked(level)
}

func (s *Settings) colorLocked(level Level) Color {
	if c, ok := s.colors[level]; ok {
		return c
	}
	return DefaultColor(level)
}

// SetColor overrides the color of a single level. An empty color removes the override.
func (s *Settings) SetColor(level Level, c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == "" {
		delete(s.colors, level)
		return
	}
	s.colors[level] = c
}

// SetColors replaces all overrides. Levels missing from colors use their defaults.
func (s *Settings) SetColors(colors map[Level]Color) {
	m := make(map[Level]Color, len(colors))
	for level, c := range colors {
		if c != "" {
			m[level] = c
		}
	}
	s.mu.Lock()
	s.colors = m
	s.mu.Unlock()
}

// ResetColors removes every override.
func (s *Settings) ResetColors() {
	s.SetColors(nil)
}

// PrettyJSON reports whether object parameters are indented.
func (s *Settings) PrettyJSON() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prettyJSON
}

// SetPrettyJSON toggles 2-space indentation of object parameters.
func (s *Settings) SetPrettyJSON(pretty bool) {
	s.mu.Lock()
	s.prettyJSON = pretty
	s.mu.Unlock()
}

// Colorize reports whether lines are wrapped in ANSI color sequences.
func (s *Settings) Colorize() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colorize
}

// SetColorize enables or disables ANSI color sequences in written lines.
// Records still carry the resolved color.
func (s *Settings) SetColorize(enabled bool) {
	s.mu.Lock()
	s.colorize = enabled
	s.mu.Unlock()
}

// Output returns the sink lines are written to.
func (s *Settings) Output() io.Writer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.out
}

// SetOutput sets the sink. A nil writer discards output.
func (s *Settings) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.mu.Lock()
	s.out = w
	s.mu.Unlock()
}

// DetectColor enables colors only when the sink can display them. A non-empty
// NO_COLOR or TERM=dumb disables them. Stdout follows fatih/color's NoColor
// switch; other sinks must be terminals.
func (s *Settings) DetectColor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colorize = colorSupported(s.out)
}

func colorSupported(w io.Writer) bool {
	if os.Getenv(EnvNoColor) != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if w == os.Stdout {
		return !color.NoColor
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LoadEnv applies configuration from environment variables. Values from
// the given dotenv files are used for keys missing from the process
// environment, which is never modified.
//
//	SLIMLOG_APP_NAME     application name
//	SLIMLOG_LEVEL        minimum level, by name or ordinal
//	SLIMLOG_PRETTY_JSON  boolean
//	SLIMLOG_COLOR        boolean
//	NO_COLOR             any non-empty value disables colors
//
// Unreadable files and invalid values are reported after every valid value
// has been applied.
func (s *Settings) LoadEnv(filenames ...string) error {
	var errs []string
	vars := map[string]string{}
	if len(filenames) > 0 {
		fileVars, err := godotenv.Read(filenames...)
		if err != nil {
			errs = append(errs, errors.Wrap(err, "read env files").Error())
		} else {
			vars = fileVars
		}
	}
	for _, key := range []string{EnvAppName, EnvLevel, EnvPrettyJSON, EnvColor, EnvNoColor} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	errs = append(errs, s.apply(vars)...)
	if len(errs) > 0 {
		return errors.Errorf("invalid logger configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

// apply sets every valid value in vars and describes the invalid ones.
func (s *Settings) apply(vars map[string]string) []string {
	var errs []string

	if v, ok := vars[EnvAppName]; ok {
		s.SetAppName(v)
	}
	if v, ok := vars[EnvLevel]; ok {
		level, err := ParseLevel(v)
		if err != nil {
			errs = append(errs, errors.Wrap(err, EnvLevel).Error())
		} else {
			s.SetMinimumLevel(level)
		}
	}
	if v, ok := vars[EnvPrettyJSON]; ok {
		pretty, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, errors.Wrap(err, EnvPrettyJSON).Error())
		} else {
			s.SetPrettyJSON(pretty)
		}
	}
	if v, ok := vars[EnvColor]; ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, errors.Wrap(err, EnvColor).Error())
		} else {
			s.SetColorize(enabled)
		}
	}
	if v, ok := vars[EnvNoColor]; ok && v != "" {
		s.SetColorize(false)
	}
	return errs
}

// LoadEnv applies environment configuration to Globals.
func LoadEnv(filenames ...string) error {
	return Globals.LoadEnv(filenames...)
}

// snapshot is the configuration read once per call.
type snapshot struct {
	appName  string
	minLevel Level
	color    Color
	pretty   bool
	colorize bool
	out      io.Writer
	now      time.Time
}

func (s *Settings) snapshotFor(level Level) snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		appName:  s.appName,
		minLevel: s.minLevel,
		color:    s.colorLocked(level),
		pretty:   s.prettyJSON,
		colorize: s.colorize,
		out:      s.out,
		now:      s.now(),
	}
}

func (s *Settings) write(w io.Writer, line string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, _ = io.WriteString(w, line)
}
