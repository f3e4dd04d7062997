package commands

import (
	"errors"

	"go.trai.ch/mru/internal/core/domain"
)

// Exit codes returned by the mru binaries.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitInvalidIdentity = 2
	ExitLockTimeout     = 3
	ExitCorruptHistory  = 4
)

// ExitCode maps an execution error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrCorruptHistory):
		// A stored entry with an empty identity is corruption, not bad input.
		return ExitCorruptHistory
	case errors.Is(err, domain.ErrInvalidIdentity):
		return ExitInvalidIdentity
	case errors.Is(err, domain.ErrLockTimeout):
		return ExitLockTimeout
	default:
		return ExitFailure
	}
}
