package fs

import iofs "io/fs"

// SetReadDir replaces the directory lister for fault injection.
func (w *Walker) SetReadDir(fn func(dir string) ([]iofs.DirEntry, error)) {
	w.readDir = fn
}
