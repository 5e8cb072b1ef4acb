package testutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"cfpr-go/internal/recorder"
)

// MockFile represents a file in the mock filesystem.
type MockFile struct {
	Content     []byte
	Size        int64 // reported by Stat; normally len(Content)
	Permissions fs.FileMode
	ModTime     time.Time
	IsDirectory bool
	ReadErr     error
}

// MockFilesystemManager is an in-memory filesystem for testing.
type MockFilesystemManager struct {
	files map[string]*MockFile
}

// NewMockFilesystemManager creates a new mock filesystem.
func NewMockFilesystemManager() *MockFilesystemManager {
	return &MockFilesystemManager{
		files: make(map[string]*MockFile),
	}
}

// AddFile adds a file to the mock filesystem.
func (m *MockFilesystemManager) AddFile(path string, content []byte) {
	m.AddFileWithSize(path, content, int64(len(content)))
}

// AddFileWithSize adds a file whose metadata size differs from its content,
// as seen when a file changes between stat and read.
func (m *MockFilesystemManager) AddFileWithSize(path string, content []byte, size int64) {
	m.files[m.abs(path)] = &MockFile{
		Content:     content,
		Size:        size,
		Permissions: 0644,
		ModTime:     time.Now(),
	}
}

// AddDirectory adds a directory to the mock filesystem.
func (m *MockFilesystemManager) AddDirectory(path string) {
	m.files[m.abs(path)] = &MockFile{
		Permissions: 0755 | fs.ModeDir,
		ModTime:     time.Now(),
		IsDirectory: true,
	}
}

// FailReads makes every ReadAll of path return err.
func (m *MockFilesystemManager) FailReads(path string, err error) {
	if file, ok := m.files[m.abs(path)]; ok {
		file.ReadErr = err
	}
}

func (m *MockFilesystemManager) Resolve(rawPath string) (*recorder.Path, error) {
	if rawPath == "" {
		return nil, fmt.Errorf("empty path")
	}
	absPath := m.abs(rawPath)

	file, ok := m.files[absPath]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", absPath)
	}
	if file.IsDirectory {
		return nil, fmt.Errorf("not a regular file: %s", absPath)
	}

	return recorder.NewPath(absPath, newMockFileInfo(absPath, file)), nil
}

func (m *MockFilesystemManager) ReadAll(path *recorder.Path) ([]byte, error) {
	file, ok := m.files[path.String()]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path.String())
	}
	if file.ReadErr != nil {
		return nil, file.ReadErr
	}
	return append([]byte(nil), file.Content...), nil
}

func (m *MockFilesystemManager) Stat(path *recorder.Path) (fs.FileInfo, error) {
	file, ok := m.files[path.String()]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path.String())
	}
	return newMockFileInfo(path.String(), file), nil
}

func (m *MockFilesystemManager) abs(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name     string
	mockFile *MockFile
}

func newMockFileInfo(absPath string, file *MockFile) *mockFileInfo {
	return &mockFileInfo{name: filepath.Base(absPath), mockFile: file}
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.mockFile.Size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mockFile.Permissions }
func (m *mockFileInfo) ModTime() time.Time { return m.mockFile.ModTime }
func (m *mockFileInfo) IsDir() bool        { return m.mockFile.IsDirectory }
func (m *mockFileInfo) Sys() any           { return m.mockFile }

// Compile-time check
var _ recorder.FilesystemManager = (*MockFilesystemManager)(nil)
