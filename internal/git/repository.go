package git

import (
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	bgiterrors "bgit.dev/bgit/internal/errors"
)

// Repository wraps a go-git repository together with its worktree root.
type Repository struct {
	*gogit.Repository
	root string
}

// OpenRepository opens the git repository containing path, discovering the
// .git directory upward from it. Bare repositories are rejected because
// there is no worktree to resolve repository-relative paths against.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", absPath, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if err == gogit.ErrIsBareRepository {
			return nil, bgiterrors.ErrBareRepository
		}
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &Repository{
		Repository: repo,
		root:       worktree.Filesystem.Root(),
	}, nil
}

// Root returns the worktree root directory of the repository.
func (r *Repository) Root() string {
	return r.root
}

// RelativePath returns the repository-relative slash-separated path for
// abs. Symlinks are resolved on both sides so that paths through
// symlinked directories still land inside the root.
func (r *Repository) RelativePath(abs string) (string, error) {
	realFile, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize %s: %w", abs, err)
	}
	realRoot, err := filepath.EvalSymlinks(r.root)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize repository root: %w", err)
	}

	rel, err := filepath.Rel(realRoot, realFile)
	if err != nil {
		return "", fmt.Errorf("could not compute repo-relative path for %s: %w", abs, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s is outside the repository root %s", abs, r.root)
	}
	return rel, nil
}

// BranchCommit returns the commit a local branch points at, or
// ErrBranchNotFound if the branch does not exist.
func (r *Repository) BranchCommit(branch string) (*object.Commit, error) {
	ref, err := r.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return nil, bgiterrors.NewBranchNotFoundError(branch, false)
	}
	commit, err := r.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s for branch %s: %w", ref.Hash(), branch, err)
	}
	return commit, nil
}

// RemoteBranchCommit returns the commit a remote-tracking branch points at.
func (r *Repository) RemoteBranchCommit(remote, branch string) (*object.Commit, error) {
	ref, err := r.Reference(plumbing.NewRemoteReferenceName(remote, branch), true)
	if err != nil {
		return nil, bgiterrors.NewBranchNotFoundError(branch, true)
	}
	commit, err := r.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s for %s/%s: %w", ref.Hash(), remote, branch, err)
	}
	return commit, nil
}

// HeadCommit returns the commit HEAD currently points at.
func (r *Repository) HeadCommit() (*object.Commit, error) {
	head, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}
	commit, err := r.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD commit %s: %w", head.Hash(), err)
	}
	return commit, nil
}

// CreateBranch creates a local branch ref pointing at commit.
func (r *Repository) CreateBranch(branch string, commit plumbing.Hash) error {
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(branch), commit)
	if err := r.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	return nil
}
