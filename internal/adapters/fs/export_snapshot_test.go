package fs

// SetRename replaces the rename step of Replace.
func (s *SnapshotStore) SetRename(fn func(oldpath, newpath string) error) {
	s.rename = fn
}
