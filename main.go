package main

import (
	"fmt"
	"os"

	"github.com/mordilloSan/go-slimlogger/logger"
)

// Example demonstrating go-slimlogger usage.
func main() {
	// Usage: ./go-slimlogger [envfile...]
	// Example: ./go-slimlogger ./.env
	if err := logger.LoadEnv(os.Args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "logger configuration: %v\n", err)
	}

	log := logger.New("main")

	log.Verbose("starting with minimum level {1}", logger.Globals.MinimumLevel())
	log.Info("My name is {1} and I have {2} years old right now", "Carlos", 28)
	log.Debug("Hello World in JSON {1}", map[string]string{"hello": "world"})
	log.Warn("disk usage at {1}%", 91)
	log.Success("saved {1} records", 3)
	log.Error("request failed: {1}", fmt.Errorf("connection timeout"))

	// App name and colors apply to every logger on the next call.
	logger.Globals.SetAppName("My App")
	logger.Globals.SetColor(logger.DebugLevel, logger.BrightCyan)
	logger.New("worker").Debug("numbers {1}", []int{1, 2, 3})
}
