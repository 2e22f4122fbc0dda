package pkg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unsafe"
)

// BytesToString reuses buf as the string backing; buf must not change afterwards.
func BytesToString(buf []byte) string {
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// EnsureParentDir creates the directory holding filePath, e.g. for a log file.
func EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return os.MkdirAll(dir, 0o755)
	case err != nil:
		return err
	case !info.IsDir():
		return fmt.Errorf("%s exists and is not a directory", dir)
	default:
		return nil
	}
}
