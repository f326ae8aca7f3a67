package pidfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// ErrSessionRunning is returned by Acquire when a live process holds the lock
var ErrSessionRunning = errors.New("another game session is already running")

// PIDFile guards the save slot against two interactive sessions writing to it at once
type PIDFile struct {
	path string
}

// New creates a new PIDFile manager
func New(path string) *PIDFile {
	return &PIDFile{path: path}
}

// Path returns the lock file location
func (p *PIDFile) Path() string {
	return p.path
}

// Acquire writes the current PID to the lock file.
// Stale or unreadable lock files left by a dead session are replaced.
func (p *PIDFile) Acquire() error {
	if pid, ok := p.holder(); ok {
		if pid != os.Getpid() && isProcessRunning(pid) {
			return fmt.Errorf("%w (PID %d)", ErrSessionRunning, pid)
		}
		_ = os.Remove(p.path)
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	pidData := fmt.Sprintf("%d\n", os.Getpid())
	if err := os.WriteFile(p.path, []byte(pidData), 0644); err != nil {
		return fmt.Errorf("failed to write lock file: %w", err)
	}

	return nil
}

// Release removes the lock file
func (p *PIDFile) Release() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// holder reads the PID in the lock file. ok is true when a file exists,
// pid is 0 when its contents are not a number.
func (p *PIDFile) holder() (pid int, ok bool) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, false
	}
	pid, err = strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, true
	}
	return pid, true
}

// isProcessRunning checks if a process with the given PID is running
func isProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// On Unix systems, FindProcess always succeeds
	// Signal 0 checks existence without delivering anything
	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}

	if errors.Is(err, syscall.EPERM) {
		// Process exists but we don't have permission (still running)
		return true
	}

	return false
}
