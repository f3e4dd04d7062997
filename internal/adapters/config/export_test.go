package config

// SetDefaultRoot replaces the lookup of the per-user root directory.
func (l *Loader) SetDefaultRoot(fn func() (string, error)) {
	l.defaultRoot = fn
}
