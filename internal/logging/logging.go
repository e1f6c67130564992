// Package logging provides the debug logger shared by the navigation
// machinery and the sync worker.
package logging

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Logger logs debug messages.
type Logger interface {
	Debugf(format string, args ...any)
}

// Nop discards all messages.
type Nop struct{}

func (Nop) Debugf(string, ...any) {}

// FileLogger appends timestamped debug lines to a file. Safe for
// concurrent use.
type FileLogger struct {
	mu sync.Mutex
	f  *os.File
}

func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{f: f}, nil
}

func (l *FileLogger) Debugf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.f, ts+" "+format+"\n", args...)
}

func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}
