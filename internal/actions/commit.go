// Package actions implements the operations behind the bgit commands.
package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	bgiterrors "bgit.dev/bgit/internal/errors"
	"bgit.dev/bgit/internal/git"
	"bgit.dev/bgit/internal/runtime"
	"bgit.dev/bgit/internal/tui"
)

// CommitOptions contains options for the commit action
type CommitOptions struct {
	Branch      string
	Message     string
	Path        string
	Push        bool
	TrackRemote bool
	VerifyRef   bool
}

// CommitAction commits a single file to the target branch without
// touching the working tree of that branch. The pipeline runs strictly in
// order: resolve the base, write the blob, rebuild the tree along the
// path, create the commit, move the branch ref, then optionally push.
// The first failure aborts the remaining steps.
func CommitAction(ctx context.Context, opts CommitOptions, rt *runtime.Context) error {
	repo := rt.Repo

	absFile := opts.Path
	if !filepath.IsAbs(absFile) {
		absFile = filepath.Join(rt.RepoRoot, absFile)
	}
	if _, err := os.Stat(absFile); err != nil {
		return bgiterrors.NewFileNotFoundError(absFile)
	}

	rel, err := repo.RelativePath(absFile)
	if err != nil {
		return err
	}

	parentCommit, parentTree, created, err := ResolveBranchBase(ctx, rt, opts.Branch, opts.TrackRemote)
	if err != nil {
		return fmt.Errorf("resolving base for branch '%s': %w", opts.Branch, err)
	}
	if created {
		rt.Splog.Info("%s", tui.ColorNotice(fmt.Sprintf("✨ Created new branch '%s' from HEAD", opts.Branch)))
	}

	baseTree, err := repo.TreeObject(parentTree)
	if err != nil {
		return fmt.Errorf("failed to read tree %s: %w", parentTree, err)
	}

	blobHash, mode, err := repo.WriteBlobFromFile(absFile)
	if err != nil {
		return err
	}

	newTree, err := repo.UpsertTree(baseTree, strings.Split(rel, "/"), blobHash, mode)
	if err != nil {
		return fmt.Errorf("upserting %s: %w", rel, err)
	}

	ident, err := repo.ResolveIdentity()
	if err != nil {
		return err
	}

	message := opts.Message
	if message == "" {
		message = fmt.Sprintf("Update %s", rel)
	}

	newCommit, err := repo.CreateCommit(newTree, parentCommit, ident, message)
	if err != nil {
		return err
	}

	// Last-writer-wins by default; --verify-ref re-reads the ref and
	// refuses to clobber a concurrent move.
	expectOld := plumbing.ZeroHash
	if opts.VerifyRef {
		expectOld = parentCommit
	}
	if err := repo.AdvanceBranch(opts.Branch, newCommit, expectOld); err != nil {
		return err
	}

	rt.Splog.Info("✅ Committed %s to %s", rel, tui.ColorBranchName(opts.Branch))
	rt.Splog.Info("   commit %s", tui.ColorCommitHash(newCommit.String()))

	if opts.Push {
		// The commit exists locally whatever happens from here on; a
		// push failure must not read as a failed commit.
		if err := git.PushBranch(ctx, rt.RepoRoot, "origin", opts.Branch); err != nil {
			return fmt.Errorf("commit %s created locally, but: %w: %w", newCommit, bgiterrors.ErrPushFailed, err)
		}
		rt.Splog.Info("🚀 Pushed %s to origin", tui.ColorBranchName(opts.Branch))
	}

	return nil
}
