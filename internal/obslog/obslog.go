// Package obslog is the ambient structured-logging seam for the
// interpreter tower (SPEC_FULL.md §4.13). The core never requires a logger
// to function — every exported entry point works with the default,
// silent-until-configured logger — but when a caller wants trace visibility
// into convergence rounds nearing the ceiling or group and invoke go
// transitions, it can call Configure with its own *logrus.Logger.
package obslog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu  sync.RWMutex
	log = defaultLogger()
)

func defaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Configure replaces the package-level logger, e.g. with one the cmd/
// driver wires up to a --verbose flag.
func Configure(l *logrus.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Logger returns the currently configured logger.
func Logger() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}
