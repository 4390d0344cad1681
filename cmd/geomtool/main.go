// geomtool is a CLI for evaluating deterministic fixed-point geometry.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/fixgeom/internal/config"
	"github.com/Faultbox/fixgeom/internal/logger"
)

func main() {
	// Parse CLI flags
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	args := config.Args()
	if len(args) == 0 || args[0] == "help" {
		printUsage(os.Stdout)
		return
	}

	if err := run(cfg, args, os.Stdout); err != nil {
		logger.Debug("command failed", zap.Strings("args", args), zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			printUsage(os.Stderr)
		}
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `geomtool - deterministic Q16.16 geometry evaluator

Usage:
  geomtool [flags] <group> <op> [numbers...]

Flags:
  -config <file>   Config file (default ./geomtool.yaml, then user config dir)
  -degrees         Read angles in degrees
  -raw             Print raw Q16.16 integers
  -precision <n>   Digits after the decimal point
  -debug           Enable debug logging

Commands:
  scalar add|sub|mul|div a b         Fixed-point arithmetic
  scalar sqrt a                      Square root
  scalar sin|cos a                   Trigonometry (angle unit from config)
  scalar deg2rad|rad2deg a           Angle conversion
  vec add|sub|dot|cross x1 y1 x2 y2  Two-vector operations
  vec len|lensq|norm|abs|neg x y     One-vector operations
  vec scale x y s                    Multiply by a scalar
  vec rotate x y angle               Rotate counter-clockwise
  rect area|perimeter|aspect|canon|center x y w h
  rect contains x y w h px py        Half-open point test
  rect move|expand|contract x y w h dx dy
  rect contains-rect|intersects|intersection|union x y w h x2 y2 w2 h2

Examples:
  geomtool vec dot 2 3 1 4
  geomtool -degrees vec rotate 1 0 90
  geomtool rect intersection 0 0 10 10 5 5 15 15`)
}
