// Package identity implements the normalization strategies that turn user
// input into history identities, and the liveness check used by prune.
package identity

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/zerr"
)

// PathNormalizer normalizes file paths: absolute, cleaned and with symlinks
// resolved for the part of the path that exists. The path itself does not
// have to exist.
type PathNormalizer struct {
	getwd   func() (string, error)
	homeDir func() (string, error)
}

// NewPathNormalizer creates a PathNormalizer relative to the process working directory.
func NewPathNormalizer() *PathNormalizer {
	return &PathNormalizer{
		getwd:   os.Getwd,
		homeDir: os.UserHomeDir,
	}
}

// Normalize returns the canonical form of raw.
func (n *PathNormalizer) Normalize(raw string) (domain.Identity, error) {
	if strings.TrimSpace(raw) == "" {
		return "", zerr.Wrap(domain.ErrInvalidIdentity, "path is empty")
	}
	if strings.ContainsRune(raw, 0) {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidIdentity, "path contains a NUL byte"), "path", raw)
	}

	p, err := n.expandHome(raw)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(p) {
		wd, err := n.getwd()
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrInvalidIdentity, "cannot resolve relative path"), "path", raw)
		}
		p = filepath.Join(wd, p)
	}

	return domain.Identity(resolveExisting(filepath.Clean(p))), nil
}

func (n *PathNormalizer) expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p, nil
	}
	home, err := n.homeDir()
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidIdentity, "cannot expand home directory"), "path", p)
	}
	return filepath.Join(home, p[1:]), nil
}

// resolveExisting evaluates symlinks in the longest existing prefix of p and
// appends the remainder unchanged.
func resolveExisting(p string) string {
	var rest []string
	cur := p
	for {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return p
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return p
		}
		rest = append([]string{filepath.Base(cur)}, rest...)
		cur = parent
	}
}
