// README: Entry point; loads config, wires the parking system, and runs the command loop over stdin.
package main

import (
	"fmt"
	"os"

	"github.com/labstack/gommon/log"

	"github.com/tiago-firmino/iaed2024/internal/cli"
	"github.com/tiago-firmino/iaed2024/internal/config"
	"github.com/tiago-firmino/iaed2024/internal/modules/parking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := log.New("parksim")
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logLevel(cfg.LogLevel))

	sys := parking.NewSystemWithLimit(cfg.MaxParks)
	runner := cli.NewRunner(sys, os.Stdout, logger)

	if err := runner.Run(os.Stdin); err != nil {
		logger.Errorf("read stdin: %v", err)
		os.Exit(1)
	}
}

func logLevel(name string) log.Lvl {
	switch name {
	case "debug":
		return log.DEBUG
	case "info":
		return log.INFO
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.WARN
	}
}
