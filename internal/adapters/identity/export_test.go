package identity

import "io/fs"

// SetGetwd replaces the working directory lookup.
func (n *PathNormalizer) SetGetwd(fn func() (string, error)) {
	n.getwd = fn
}

// SetHomeDir replaces the home directory lookup.
func (n *PathNormalizer) SetHomeDir(fn func() (string, error)) {
	n.homeDir = fn
}

// SetLstat replaces the stat call of the checker.
func (c *PathChecker) SetLstat(fn func(string) (fs.FileInfo, error)) {
	c.lstat = fn
}
