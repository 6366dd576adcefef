// Package logging is a tiny leveled logger that ends up in logcat on Android
// and on stdout everywhere else.
package logging

import (
	"fmt"
	"strings"
	"sync/atomic"
)

const LOG_TAG = "PulseHAL"

// LogPriority mirrors android_LogPriority so it can be handed to liblog as is.
type LogPriority int32

const (
	LogUnknown LogPriority = iota
	LogDefault
	LogVerbose
	LogDebug
	LogInfo
	LogWarn
	LogError
	LogFatal
	LogSilent
)

var (
	debug   atomic.Bool
	verbose atomic.Bool
)

func SetDebug(on bool)   { debug.Store(on) }
func SetVerbose(on bool) { verbose.Store(on) }

func DebugEnabled() bool   { return debug.Load() }
func VerboseEnabled() bool { return verbose.Load() }

// enabled reports whether prio should reach the backend at all.
func enabled(prio LogPriority) bool {
	switch prio {
	case LogVerbose:
		return verbose.Load()
	case LogDebug:
		return debug.Load()
	case LogSilent:
		return false
	}
	return true
}

func parseMsg(prio LogPriority, format string, replacements ...any) {
	if !enabled(prio) {
		return
	}
	msg := fmt.Sprintf(format, replacements...)
	//liblog adds its own line break
	msg = strings.TrimRight(msg, "\n")
	if msg != "" {
		logMsg(prio, msg)
	}
}

func Info(format string, replacements ...any) {
	parseMsg(LogInfo, format, replacements...)
}
func Warn(format string, replacements ...any) {
	parseMsg(LogWarn, format, replacements...)
}
func Error(format string, replacements ...any) {
	parseMsg(LogError, format, replacements...)
}
func Fatal(format string, replacements ...any) {
	parseMsg(LogFatal, format, replacements...)
}
func Verbose(format string, replacements ...any) {
	parseMsg(LogVerbose, format, replacements...)
}
func Debug(format string, replacements ...any) {
	parseMsg(LogDebug, format, replacements...)
}
