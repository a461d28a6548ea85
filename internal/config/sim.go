// Package config provides configuration helpers for go-floorcrew commands.
package config

import (
	"os"
	"strconv"
)

// Default simulation configuration.
const (
	DefaultPort       = "8090"
	DefaultQuality    = "high"
	DefaultPopulation = 12
	DefaultForklifts  = 2
)

// Port returns the dashboard port from FLOORCREW_PORT env var.
// Falls back to the provided default if not set.
func Port(defaultPort string) string {
	if p := os.Getenv("FLOORCREW_PORT"); p != "" {
		return p
	}
	return defaultPort
}

// Quality returns the render quality from FLOORCREW_QUALITY env var.
// Valid values: "low", "medium", "high", "ultra".
func Quality(defaultQuality string) string {
	switch q := os.Getenv("FLOORCREW_QUALITY"); q {
	case "low", "medium", "high", "ultra":
		return q
	}
	return defaultQuality
}

// Population returns the worker count from FLOORCREW_WORKERS env var.
func Population(defaultCount int) int {
	return intEnv("FLOORCREW_WORKERS", defaultCount)
}

// Forklifts returns the forklift count from FLOORCREW_FORKLIFTS env var.
func Forklifts(defaultCount int) int {
	return intEnv("FLOORCREW_FORKLIFTS", defaultCount)
}

// Seed returns the simulation RNG seed from FLOORCREW_SEED env var.
// Returns (0, false) when unset, meaning the caller should use a time seed.
func Seed() (int64, bool) {
	s := os.Getenv("FLOORCREW_SEED")
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// LogLevel returns the log level from FLOORCREW_LOG env var.
func LogLevel(defaultLevel string) string {
	if l := os.Getenv("FLOORCREW_LOG"); l != "" {
		return l
	}
	return defaultLevel
}

func intEnv(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
