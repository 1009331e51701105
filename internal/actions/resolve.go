package actions

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	bgiterrors "bgit.dev/bgit/internal/errors"
	"bgit.dev/bgit/internal/git"
	"bgit.dev/bgit/internal/runtime"
)

// ResolveBranchBase determines the commit and tree a new commit on branch
// must be based on. Cases are tried in order: an existing local branch, a
// remote-tracking branch (when trackRemote is set, materialized as a new
// local branch at the remote tip), and finally creation from the current
// HEAD behind a confirmation prompt. created reports the HEAD-creation
// case so the caller can print a distinct notice.
func ResolveBranchBase(ctx context.Context, rt *runtime.Context, branch string, trackRemote bool) (commit, tree plumbing.Hash, created bool, err error) {
	if local, lerr := rt.Repo.BranchCommit(branch); lerr == nil {
		return local.Hash, local.TreeHash, false, nil
	}

	if trackRemote {
		// Refresh remote refs first. A failure here is not fatal:
		// resolution proceeds as if the remote ref were absent.
		if ferr := git.FetchRemote(ctx, rt.RepoRoot, "origin"); ferr != nil {
			rt.Splog.Debug("fetch origin failed: %v", ferr)
		}

		if remote, rerr := rt.Repo.RemoteBranchCommit("origin", branch); rerr == nil {
			if cerr := rt.Repo.CreateBranch(branch, remote.Hash); cerr != nil {
				return plumbing.ZeroHash, plumbing.ZeroHash, false, cerr
			}
			return remote.Hash, remote.TreeHash, false, nil
		}
	}

	prompt := fmt.Sprintf("Branch '%s' does not exist. Create it from HEAD?", branch)
	create, perr := rt.Confirmer.Confirm(prompt, true)
	if perr != nil {
		return plumbing.ZeroHash, plumbing.ZeroHash, false, perr
	}
	if !create {
		return plumbing.ZeroHash, plumbing.ZeroHash, false, bgiterrors.NewBranchNotFoundError(branch, trackRemote)
	}

	head, herr := rt.Repo.HeadCommit()
	if herr != nil {
		return plumbing.ZeroHash, plumbing.ZeroHash, false, herr
	}
	if cerr := rt.Repo.CreateBranch(branch, head.Hash); cerr != nil {
		return plumbing.ZeroHash, plumbing.ZeroHash, false, cerr
	}
	return head.Hash, head.TreeHash, true, nil
}
