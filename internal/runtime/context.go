// Package runtime provides a context type that holds the repository,
// logger and prompt capability for use throughout the application. This
// avoids passing multiple parameters.
package runtime

import (
	"bgit.dev/bgit/internal/git"
	"bgit.dev/bgit/internal/tui"
)

// Confirmer asks the user a yes/no question. def is the answer proposed
// when the user just presses enter.
type Confirmer interface {
	Confirm(prompt string, def bool) (bool, error)
}

// Context provides access to the repository and output for commands
type Context struct {
	Repo      *git.Repository
	Splog     *tui.Splog
	Confirmer Confirmer
	RepoRoot  string
}

// NewContext creates a new context for the given repository
func NewContext(repo *git.Repository, confirmer Confirmer) *Context {
	return &Context{
		Repo:      repo,
		Splog:     tui.NewSplog(),
		Confirmer: confirmer,
		RepoRoot:  repo.Root(),
	}
}
