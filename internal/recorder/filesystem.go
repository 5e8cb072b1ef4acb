package recorder

import "io/fs"

// FilesystemManager is the service's only access to the files being
// fingerprinted, so tests can substitute an in-memory tree.
type FilesystemManager interface {
	// Resolve makes rawPath absolute and checks that it names a regular
	// file. Directories, devices, pipes and sockets are rejected.
	Resolve(rawPath string) (*Path, error)

	// ReadAll returns the complete file contents.
	ReadAll(path *Path) ([]byte, error)

	// Stat returns current metadata, not the copy cached in the Path.
	Stat(path *Path) (fs.FileInfo, error)
}
