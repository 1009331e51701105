// Package errors provides sentinel errors and custom error types for the bgit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBareRepository indicates that the repository has no working directory
	ErrBareRepository = errors.New("bare repositories are not supported")

	// ErrEmptyPath indicates that a tree upsert was attempted with no path components
	ErrEmptyPath = errors.New("empty path")

	// ErrIdentityMissing indicates that no author identity could be resolved from git config
	ErrIdentityMissing = errors.New("git identity missing")

	// ErrConcurrentModification indicates that a branch ref moved between resolution and update
	ErrConcurrentModification = errors.New("branch moved concurrently")

	// ErrPushFailed indicates that pushing to the remote failed after a successful local commit
	ErrPushFailed = errors.New("push failed")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName  string
	TriedRemote bool
}

func (e *BranchNotFoundError) Error() string {
	if e.TriedRemote {
		return fmt.Sprintf("branch %s not found locally or on origin", e.BranchName)
	}
	return fmt.Sprintf("branch %s not found locally", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string, triedRemote bool) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName, TriedRemote: triedRemote}
}

// FileNotFoundError represents an error when the file to commit does not exist
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// NewFileNotFoundError creates a new FileNotFoundError
func NewFileNotFoundError(path string) *FileNotFoundError {
	return &FileNotFoundError{Path: path}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
