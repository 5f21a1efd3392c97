// Package debug writes a timestamped trace of launchvol's frames, device
// changes and mixer calls to a file. Nothing is written until Enable is
// called, so the calls can stay in hot paths.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	out     *os.File
	enabled bool
	seen    = make(map[string]int) // LogEvery call counts by category+format
)

// DefaultPath is debug.log next to the config file
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "launchvol", "debug.log")
}

// Enable opens the log at DefaultPath
func Enable() error {
	return EnableAt(DefaultPath())
}

// EnableAt truncates logPath and logs to it until Disable. Calling it while
// already enabled keeps the current file.
func EnableAt(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}

	out, enabled = f, true
	writeLocked("debug", "launchvol trace started, pid %d", os.Getpid())
	return nil
}

func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		out.Close()
		out = nil
	}
	enabled = false
	clear(seen)
}

func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log appends one line tagged with category
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	writeLocked(category, format, args...)
}

// LogEvery logs the nth, 2nth, ... call with the same category and format.
// Frame ticks and pad writes go through here.
func LogEvery(n int, category, format string, args ...any) {
	if n <= 1 {
		Log(category, format, args...)
		return
	}

	mu.Lock()
	defer mu.Unlock()

	key := category + "\x00" + format
	seen[key]++
	if count := seen[key]; count%n == 0 {
		writeLocked(category, format+" (every %d, count=%d)", append(args, n, count)...)
	}
}

// writeLocked syncs after every line so a crash keeps the tail. mu must be held.
func writeLocked(category, format string, args ...any) {
	if !enabled || out == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %-10s %s\n", ts, category, fmt.Sprintf(format, args...))
	out.Sync()
}
