//go:build windows

package backend

import "os"

// No lock is taken on Windows: both functions are no-ops, so a
// FileBackend there does not keep other handles from opening, reading
// or writing the same file.
func flockExclusive(f *os.File) error { return nil }
func funlock(f *os.File) error        { return nil }
