package recorder

import "io/fs"

// Path is a file that FilesystemManager.Resolve has accepted as a
// fingerprint target: absolute, existing, and a regular file at resolve time.
type Path struct {
	absPath string
	info    fs.FileInfo
}

// NewPath is called by FilesystemManager implementations once validation
// has passed.
func NewPath(absPath string, info fs.FileInfo) *Path {
	return &Path{absPath: absPath, info: info}
}

func (p *Path) String() string {
	return p.absPath
}

// Info is the stat result captured by Resolve. It may be stale by the time
// the file is read; FilesystemManager.Stat fetches a fresh one.
func (p *Path) Info() fs.FileInfo {
	return p.info
}
