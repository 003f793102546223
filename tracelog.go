// tracelog.go - minimal levelled logger for the MSX core

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"log"
	"os"
	"sync/atomic"
)

type logLevel int32

const (
	logLevelTrace logLevel = iota
	logLevelInfo
	logLevelWarn
	logLevelError
	logLevelOff
)

// Logger gates plain fmt-style diagnostics behind a runtime-adjustable
// level, the same four-level split (trace/info/warn/error) the distilled
// source's own logging used, expressed in the fmt/log idiom this codebase
// uses everywhere else instead of a structured logging library.
type Logger struct {
	level  atomic.Int32
	std    *log.Logger
}

// NewLogger returns a Logger writing to stderr at logLevelInfo.
func NewLogger() *Logger {
	l := &Logger{std: log.New(os.Stderr, "", log.Ltime)}
	l.level.Store(int32(logLevelInfo))
	return l
}

// SetLevel changes the minimum level that is actually written out.
func (l *Logger) SetLevel(level logLevel) { l.level.Store(int32(level)) }

func (l *Logger) enabled(level logLevel) bool { return int32(level) >= l.level.Load() }

func (l *Logger) Trace(format string, args ...any) {
	if l.enabled(logLevelTrace) {
		l.std.Printf("TRACE "+format, args...)
	}
}

func (l *Logger) Info(format string, args ...any) {
	if l.enabled(logLevelInfo) {
		l.std.Printf("INFO  "+format, args...)
	}
}

func (l *Logger) Warn(format string, args ...any) {
	if l.enabled(logLevelWarn) {
		l.std.Printf("WARN  "+format, args...)
	}
}

func (l *Logger) Error(format string, args ...any) {
	if l.enabled(logLevelError) {
		l.std.Printf("ERROR "+format, args...)
	}
}

// traceLog is the package-level logger shared by Machine and its
// peripherals, mirroring the package-level verbosity idiom this codebase
// uses in its own chip/bus files.
var traceLog = NewLogger()
