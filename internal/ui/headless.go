package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether the CLI may prompt and animate.
type HeadlessManager struct {
	forced *bool
	fd     uintptr
}

// NewHeadlessManager creates a HeadlessManager that inspects os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{fd: os.Stdin.Fd()}
}

// IsHeadless reports whether no terminal is attached. ForceHeadless
// overrides detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(h.fd) && !isatty.IsCygwinTerminal(h.fd)
}

// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
