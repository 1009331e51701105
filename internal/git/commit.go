package git

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	bgiterrors "bgit.dev/bgit/internal/errors"
)

// CreateCommit writes a commit object with a single parent. Author and
// committer are the same identity; the timestamp is taken at write time,
// so identical content still yields a distinct commit per invocation.
func (r *Repository) CreateCommit(tree, parent plumbing.Hash, ident Identity, message string) (plumbing.Hash, error) {
	sig := object.Signature{
		Name:  ident.Name,
		Email: ident.Email,
		When:  time.Now(),
	}

	commit := &object.Commit{
		TreeHash:     tree,
		ParentHashes: []plumbing.Hash{parent},
		Author:       sig,
		Committer:    sig,
		Message:      message,
	}

	obj := r.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to encode commit: %w", err)
	}
	hash, err := r.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to store commit: %w", err)
	}
	return hash, nil
}

// AdvanceBranch moves a local branch ref to commit. The default is a
// plain overwrite of the ref. When expectOld is non-zero the ref is
// re-read first and the move fails with ErrConcurrentModification if it
// no longer points at expectOld.
func (r *Repository) AdvanceBranch(branch string, commit, expectOld plumbing.Hash) error {
	refName := plumbing.NewBranchReferenceName(branch)

	if expectOld != plumbing.ZeroHash {
		current, err := r.Reference(refName, true)
		if err != nil {
			return fmt.Errorf("failed to re-read branch %s: %w", branch, err)
		}
		if current.Hash() != expectOld {
			return fmt.Errorf("branch %s moved from %s to %s: %w",
				branch, expectOld, current.Hash(), bgiterrors.ErrConcurrentModification)
		}
	}

	ref := plumbing.NewHashReference(refName, commit)
	if err := r.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("failed to update branch %s: %w", branch, err)
	}
	return nil
}
