// Package repository locates the project that owns the po catalogs.
package repository

import (
	"os"

	"github.com/jiangxin/goconfig"
)

// Repository holds repository and error.
type Repository struct {
	repository *goconfig.Repository
	error      error
}

var theRepository Repository

// Open will try to find repository in dir.
func (v *Repository) Open(dir string) error {
	v.repository, v.error = goconfig.FindRepository(dir)
	return v.error
}

// OpenRepository will try to find repository in dir. Running outside a git
// worktree is not an error; the po dir is then resolved against cwd.
func OpenRepository(dir string) {
	_ = theRepository.Open(dir)
}

// Opened returns true if a repository was successfully opened (e.g. when
// running inside a git worktree).
func Opened() bool {
	return theRepository.error == nil && theRepository.repository != nil
}

// Err returns the error from the last OpenRepository call, or nil if open succeeded.
func Err() error {
	return theRepository.error
}

// WorkDirOrCwd returns the root dir of the worktree when a repository is
// opened, otherwise the current working directory. The po dir given on the
// command line is resolved relative to this directory.
func WorkDirOrCwd() string {
	if Opened() {
		return theRepository.repository.WorkDir()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
