package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	bgiterrors "bgit.dev/bgit/internal/errors"
	"bgit.dev/bgit/internal/git"
	"bgit.dev/bgit/testhelpers"
)

// isolateGlobalConfig points the global git config scopes at a throwaway
// home directory so the developer's real config cannot leak in.
func isolateGlobalConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func TestResolveIdentity(t *testing.T) {
	t.Run("resolves from repository config", func(t *testing.T) {
		isolateGlobalConfig(t)
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		ident, err := repo.ResolveIdentity()
		require.NoError(t, err)
		require.Equal(t, "Test User", ident.Name)
		require.Equal(t, "test@example.com", ident.Email)
	})

	t.Run("falls back to global config", func(t *testing.T) {
		home := isolateGlobalConfig(t)
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})

		// Clear the repo-level identity, supply a global one.
		require.NoError(t, scene.Repo.RunGitCommand("config", "--local", "--remove-section", "user"))
		globalConfig := "[user]\n\tname = Global User\n\temail = global@example.com\n"
		require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), []byte(globalConfig), 0644))

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		ident, err := repo.ResolveIdentity()
		require.NoError(t, err)
		require.Equal(t, "Global User", ident.Name)
		require.Equal(t, "global@example.com", ident.Email)
	})

	t.Run("fails when no scope has an identity", func(t *testing.T) {
		isolateGlobalConfig(t)
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})

		require.NoError(t, scene.Repo.RunGitCommand("config", "--local", "--remove-section", "user"))

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		_, err = repo.ResolveIdentity()
		require.ErrorIs(t, err, bgiterrors.ErrIdentityMissing)
	})
}
