package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// NewOS returns the operating system filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// WriteIfAbsent writes data to path unless a file is already there, creating
// parent directories as needed. It reports whether the file was written.
func WriteIfAbsent(fs afero.Fs, path string, data []byte, perm os.FileMode) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return false, err
		}
	}

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return false, err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}
