package git

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"

	bgiterrors "bgit.dev/bgit/internal/errors"
)

// UpsertTree writes a new tree that equals base with the entry at the
// given path components replaced by target. Intermediate directories are
// created on demand; every sibling entry off the path keeps its hash, so
// unchanged subtrees are shared with the base snapshot. base may be nil,
// meaning an empty tree. Returns the hash of the new root tree.
func (r *Repository) UpsertTree(base *object.Tree, comps []string, target plumbing.Hash, mode filemode.FileMode) (plumbing.Hash, error) {
	if len(comps) == 0 {
		return plumbing.ZeroHash, bgiterrors.ErrEmptyPath
	}

	// Leaf level: replace or insert the file entry.
	if len(comps) == 1 {
		return r.writeTreeWith(base, object.TreeEntry{
			Name: comps[0],
			Mode: mode,
			Hash: target,
		})
	}

	name := comps[0]

	// An existing subtree of the same name becomes the child's base. A
	// same-named entry of any other kind is treated as absent and ends up
	// shadowed by the new directory.
	var childBase *object.Tree
	if base != nil {
		if entry := findEntry(base, name); entry != nil && entry.Mode == filemode.Dir {
			subtree, err := r.TreeObject(entry.Hash)
			if err != nil {
				return plumbing.ZeroHash, fmt.Errorf("failed to read subtree %s: %w", name, err)
			}
			childBase = subtree
		}
	}

	childHash, err := r.UpsertTree(childBase, comps[1:], target, mode)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	return r.writeTreeWith(base, object.TreeEntry{
		Name: name,
		Mode: filemode.Dir,
		Hash: childHash,
	})
}

// writeTreeWith writes a tree holding base's entries with entry replaced
// or appended, in git's canonical sort order.
func (r *Repository) writeTreeWith(base *object.Tree, entry object.TreeEntry) (plumbing.Hash, error) {
	var entries []object.TreeEntry
	if base != nil {
		for _, existing := range base.Entries {
			if existing.Name != entry.Name {
				entries = append(entries, existing)
			}
		}
	}
	entries = append(entries, entry)
	sortTreeEntries(entries)

	tree := &object.Tree{Entries: entries}
	obj := r.Storer.NewEncodedObject()
	if err := tree.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to encode tree: %w", err)
	}
	hash, err := r.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to store tree: %w", err)
	}
	return hash, nil
}

func findEntry(tree *object.Tree, name string) *object.TreeEntry {
	for i := range tree.Entries {
		if tree.Entries[i].Name == name {
			return &tree.Entries[i]
		}
	}
	return nil
}

// sortTreeEntries sorts entries in git's required order: byte order over
// names, with directories comparing as if their name had a trailing "/".
func sortTreeEntries(entries []object.TreeEntry) {
	sort.Slice(entries, func(i, j int) bool {
		nameI := entries[i].Name
		nameJ := entries[j].Name
		if entries[i].Mode == filemode.Dir {
			nameI += "/"
		}
		if entries[j].Mode == filemode.Dir {
			nameJ += "/"
		}
		return nameI < nameJ
	})
}
