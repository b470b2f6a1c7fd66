// Package util provides file helpers for po operations.
package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/l10n-tools/po-fill-helper/flag"
	"github.com/l10n-tools/po-fill-helper/repository"
)

// Exist check if path is exist.
func Exist(name string) bool {
	if _, err := os.Stat(name); err == nil {
		return true
	}
	return false
}

// IsFile returns true if path is exist and is a file.
func IsFile(name string) bool {
	fi, err := os.Stat(name)
	if err != nil || fi.IsDir() {
		return false
	}
	return true
}

// IsDir returns true if path is exist and is a directory.
func IsDir(name string) bool {
	fi, err := os.Stat(name)
	if err != nil || !fi.IsDir() {
		return false
	}
	return true
}

// ResolvePoDir returns the po dir for this run. An absolute --po-dir is
// used as is; a relative one is resolved against the project root (the git
// worktree when running inside one, otherwise the current directory).
func ResolvePoDir() string {
	dir := flag.PoDir()
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(repository.WorkDirOrCwd(), dir)
}

// WriteFileAtomic writes data to fileName through a temporary file in the
// same directory followed by a rename, so an interrupted run never leaves
// a half-written catalog behind.
func WriteFileAtomic(fileName string, data []byte) error {
	dir := filepath.Dir(fileName)
	tmp, err := os.CreateTemp(dir, filepath.Base(fileName)+".tmp-*")
	if err != nil {
		return fmt.Errorf("fail to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("fail to write %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("fail to close %s: %w", tmpName, err)
	}
	if fi, err := os.Stat(fileName); err == nil {
		_ = os.Chmod(tmpName, fi.Mode())
	}
	return os.Rename(tmpName, fileName)
}
