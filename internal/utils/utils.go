package utils

import (
	"os"
	"time"
)

// IsFile tests whether the given path exists and is a file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// IsDirectory tests whether the given path exists and is a directory.
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// Timestamp returns the current local time formatted for use in output
// file names.
func Timestamp() string {
	return time.Now().Format("20060102_150405")
}
