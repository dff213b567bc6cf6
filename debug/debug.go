// Package debug holds trace switches read from the environment.
//
//	IOX_DEBUG_TOKENS=1    log every token the tokenizer emits
//	IOX_DEBUG_DISPATCH=1  log every type handler dispatch
//	IOX_DEBUG_SCHEMA=1    log schema compilation
package debug

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Tokens   bool
	Dispatch bool
	Schema   bool
}

var (
	d      *debug
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
)

func init() {
	d = &debug{}
	d.Tokens = boolEnv("IOX_DEBUG_TOKENS")
	d.Dispatch = boolEnv("IOX_DEBUG_DISPATCH")
	d.Schema = boolEnv("IOX_DEBUG_SCHEMA")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Dispatch() bool {
	return d.Dispatch
}
func Schema() bool {
	return d.Schema
}

// SetLogger replaces the logger trace output goes to.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Logf logs a formatted trace line. Maps and slices are rendered as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch args[i].(type) {
		case map[string]any, []any:
			d, err := json.Marshal(args[i])
			if err != nil {
				args[i] = fmt.Sprintf("%v", args[i])
				continue
			}
			args[i] = string(d)
		}
	}
	logger.Debug(fmt.Sprintf(msg, args...))
}
