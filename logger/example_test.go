package logger_test

import (
	"fmt"
	"io"

	"github.com/mordilloSan/go-slimlogger/logger"
)

// This example logs one line per level with the process-wide settings.
func ExampleNew() {
	log := logger.New("server")
	log.Verbose("booting")
	log.Info("listening on {1}", 8080)
	log.Debug("config {1}", map[string]any{"port": 8080, "tls": false})
	log.Warn("slow request: {1}ms", 1200)
	log.Success("migrations applied")
	log.Error("failed to connect: {1}", "timeout")
}

// This example reads the record returned by a call instead of the console line.
func ExampleLogger_Info() {
	settings := logger.NewSettings()
	settings.SetOutput(io.Discard)
	settings.SetAppName("My App")

	rec := logger.NewWithSettings("server", settings).Info("My name is {1} and I have {2} years old right now", "Carlos", 28)
	fmt.Println(rec.AppName, rec.Level, rec.Tag)
	fmt.Println(rec.Message)
	// Output:
	// My App info server
	// My name is Carlos and I have 28 years old right now
}

// This example shows that calls below the minimum level are skipped.
func ExampleSettings_SetMinimumLevel() {
	settings := logger.NewSettings()
	settings.SetOutput(io.Discard)
	settings.SetMinimumLevel(logger.WarnLevel)

	log := logger.NewWithSettings("job", settings)
	fmt.Println(log.Debug("hidden {1}", 1).Emitted(), log.Warn("shown {1}", 2).Emitted())
	// Output: false true
}

// This example prints object parameters as compact JSON.
func ExampleSettings_SetPrettyJSON() {
	settings := logger.NewSettings()
	settings.SetOutput(io.Discard)
	settings.SetPrettyJSON(false)

	rec := logger.NewWithSettings("api", settings).Info("payload {1}", map[string]string{"hello": "world"})
	fmt.Println(rec.Message)
	// Output: payload {"hello":"world"}
}
