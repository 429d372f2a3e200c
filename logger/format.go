package logger

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// timestamp formats t as ISO-8601 in UTC with millisecond precision.
func timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// substitute replaces the first occurrence of each {N} token with the
// rendering of params[N-1]. The template is scanned once; substituted text is
// never rescanned, so values that themselves contain {N} are printed as is.
// Repeated, out-of-range and malformed tokens are left untouched.
func substitute(template string, params []any, pretty bool) string {
	if len(params) == 0 {
		return template
	}
	used := make([]bool, len(params))
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		if template[i] == '{' {
			if n, width, ok := placeholderAt(template[i:]); ok && n <= len(params) && !used[n-1] {
				used[n-1] = true
				b.WriteString(renderParam(params[n-1], pretty))
				i += width
				continue
			}
		}
		b.WriteByte(template[i])
		i++
	}
	return b.String()
}

// placeholderAt parses a {N} token at the start of s, N >= 1 without leading zeros.
func placeholderAt(s string) (n, width int, ok bool) {
	j := 1
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == 1 || j >= len(s) || s[j] != '}' || s[1] == '0' {
		return 0, 0, false
	}
	n, err := strconv.Atoi(s[1:j])
	if err != nil {
		return 0, 0, false
	}
	return n, j + 1, true
}

// renderParam converts a parameter to the text substituted for its token.
// Non-empty objects become JSON; everything else uses its plain text form.
// Panics raised by String, Error or MarshalJSON methods are contained.
func renderParam(v any, pretty bool) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "null"
	}

	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case json.RawMessage:
		if s, ok := marshal(t, pretty); ok {
			return s
		}
		return fmt.Sprint(v)
	case error, fmt.Stringer:
		// fmt recovers panics from Error and String.
		return fmt.Sprint(v)
	}

	rv = indirect(rv)
	if !rv.IsValid() {
		return "null"
	}
	if isObject(rv) {
		if s, ok := marshal(v, pretty); ok && (rv.Kind() != reflect.Struct || s != "{}") {
			return s
		}
	}
	return fmt.Sprint(rv.Interface())
}

// marshal encodes v as JSON. ok is false when encoding fails or panics.
func marshal(v any, pretty bool) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", false
	}
	return string(data), true
}

// indirect follows pointers and interfaces. It returns the zero Value on nil.
func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// isObject reports whether rv holds a non-empty map, slice, array or struct.
// Structs that encode to {} are rejected by the caller.
func isObject(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() > 0
	case reflect.Struct:
		return rv.NumField() > 0
	default:
		return false
	}
}

// formatLine builds one console line, newline included.
func formatLine(snap snapshot, level Level, tag, message string) string {
	var b strings.Builder
	if snap.colorize {
		b.WriteString(string(snap.color))
	}
	b.WriteByte('[')
	b.WriteString(timestamp(snap.now))
	b.WriteString("] - ")
	b.WriteString(level.Upper())
	if snap.appName != "" {
		b.WriteString(" - ")
		b.WriteString(snap.appName)
		b.WriteString(" -")
	} else {
		b.WriteString(" -")
	}
	b.WriteString(" #")
	b.WriteString(tag)
	b.WriteString(": ")
	b.WriteString(message)
	if snap.colorize {
		b.WriteString(string(Reset))
	}
	b.WriteByte('\n')
	return b.String()
}
