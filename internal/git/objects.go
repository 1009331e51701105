package git

import (
	"fmt"
	"os"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"

	bgiterrors "bgit.dev/bgit/internal/errors"
)

// WriteBlobFromFile stores the contents of the file at path as a blob and
// returns its hash together with the tree entry mode derived from the
// file's permission bits: any execute bit yields the executable mode.
func (r *Repository) WriteBlobFromFile(path string) (plumbing.Hash, filemode.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return plumbing.ZeroHash, 0, bgiterrors.NewFileNotFoundError(path)
		}
		return plumbing.ZeroHash, 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	mode := filemode.Regular
	if info.Mode()&0o111 != 0 {
		mode = filemode.Executable
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return plumbing.ZeroHash, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	hash, err := r.writeBlob(content)
	if err != nil {
		return plumbing.ZeroHash, 0, err
	}
	return hash, mode, nil
}

func (r *Repository) writeBlob(content []byte) (plumbing.Hash, error) {
	obj := r.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(content)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to get blob writer: %w", err)
	}
	if _, err := writer.Write(content); err != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("failed to write blob content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to close blob writer: %w", err)
	}

	hash, err := r.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to store blob: %w", err)
	}
	return hash, nil
}
