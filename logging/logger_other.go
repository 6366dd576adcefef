//go:build !android

package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	outputMu sync.Mutex
	output   io.Writer = os.Stdout
)

// SetOutput redirects log lines, mostly for tests. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	outputMu.Lock()
	defer outputMu.Unlock()
	prev := output
	output = w
	return prev
}

func logMsg(logPriority LogPriority, msg string) {
	prio := "Unknown"
	switch logPriority {
	case LogDefault:
		prio = "*"
	case LogVerbose:
		prio = "V"
	case LogDebug:
		prio = "D"
	case LogInfo:
		prio = "I"
	case LogWarn:
		prio = "W"
	case LogError:
		prio = "E"
	case LogFatal:
		prio = "F"
	}
	outputMu.Lock()
	fmt.Fprintf(output, "<%s> [%s] %s\n", prio, LOG_TAG, msg)
	outputMu.Unlock()
	if logPriority == LogFatal {
		os.Exit(1)
	}
}
