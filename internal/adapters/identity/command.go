package identity

import (
	"strings"

	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/zerr"
)

// CommandNormalizer normalizes shell command lines: surrounding whitespace is
// trimmed and every inner run of whitespace becomes a single space.
type CommandNormalizer struct{}

// NewCommandNormalizer creates a CommandNormalizer.
func NewCommandNormalizer() *CommandNormalizer {
	return &CommandNormalizer{}
}

// Normalize returns the canonical form of raw.
func (*CommandNormalizer) Normalize(raw string) (domain.Identity, error) {
	if strings.ContainsRune(raw, 0) {
		return "", zerr.Wrap(domain.ErrInvalidIdentity, "command contains a NUL byte")
	}
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", zerr.Wrap(domain.ErrInvalidIdentity, "command is empty")
	}
	return domain.Identity(strings.Join(fields, " ")), nil
}
