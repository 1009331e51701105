package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"bgit.dev/bgit/internal/actions"
	bgiterrors "bgit.dev/bgit/internal/errors"
	"bgit.dev/bgit/testhelpers"
)

func TestCommitAction(t *testing.T) {
	t.Run("commits a file to a new branch without touching the worktree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})
		rt := newRuntime(t, scene, true)

		mainBefore, err := scene.Repo.RevParse("main")
		require.NoError(t, err)

		require.NoError(t, scene.Repo.CreateFile("b/c.txt", "hello", 0644))

		opts := actions.CommitOptions{Branch: "feature", Path: "b/c.txt"}
		require.NoError(t, actions.CommitAction(context.Background(), opts, rt))

		// The target branch got the file, the old content survives
		content, err := scene.Repo.ShowFile("feature", "b/c.txt")
		require.NoError(t, err)
		require.Equal(t, "hello", string(content))

		alpha, err := scene.Repo.ShowFile("feature", "a.txt")
		require.NoError(t, err)
		require.Equal(t, "alpha", string(alpha))

		// Default message names the repo-relative path
		subject, err := scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s", "feature")
		require.NoError(t, err)
		require.Equal(t, "Update b/c.txt", subject)

		// feature sits exactly one commit ahead of the old main tip
		parent, err := scene.Repo.RevParse("feature~1")
		require.NoError(t, err)
		require.Equal(t, mainBefore, parent)

		// main itself never moved
		mainAfter, err := scene.Repo.RevParse("main")
		require.NoError(t, err)
		require.Equal(t, mainBefore, mainAfter)
	})

	t.Run("uses the caller-supplied message", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})
		rt := newRuntime(t, scene, false)

		require.NoError(t, scene.Repo.CreateFile("doc.md", "docs", 0644))

		opts := actions.CommitOptions{Branch: "main", Path: "doc.md", Message: "docs: add doc"}
		require.NoError(t, actions.CommitAction(context.Background(), opts, rt))

		subject, err := scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s", "main")
		require.NoError(t, err)
		require.Equal(t, "docs: add doc", subject)
	})

	t.Run("records the executable mode for scripts", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})
		rt := newRuntime(t, scene, false)

		require.NoError(t, scene.Repo.CreateFile("tools/run.sh", "#!/bin/sh\n", 0755))

		opts := actions.CommitOptions{Branch: "main", Path: "tools/run.sh"}
		require.NoError(t, actions.CommitAction(context.Background(), opts, rt))

		mode, err := scene.Repo.FileModeAt("main", "tools/run.sh")
		require.NoError(t, err)
		require.Equal(t, "100755", mode)
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})
		rt := newRuntime(t, scene, false)

		opts := actions.CommitOptions{Branch: "main", Path: "missing.txt"}
		err := actions.CommitAction(context.Background(), opts, rt)
		var notFound *bgiterrors.FileNotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("pushes the branch when requested", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		rt := newRuntime(t, scene, false)

		require.NoError(t, scene.Repo.CreateFile("pushed.txt", "pushed", 0644))
		opts := actions.CommitOptions{Branch: "main", Path: "pushed.txt", Push: true}
		require.NoError(t, actions.CommitAction(context.Background(), opts, rt))

		localTip, err := scene.Repo.RevParse("main")
		require.NoError(t, err)

		remoteRefs, err := scene.Repo.RunGitCommandAndGetOutput("ls-remote", "origin", "refs/heads/main")
		require.NoError(t, err)
		require.Contains(t, remoteRefs, localTip)
	})

	t.Run("reports a push failure distinctly from the local commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})

		require.NoError(t, scene.Repo.RunGitCommand("remote", "add", "origin", "/nonexistent/remote"))

		rt := newRuntime(t, scene, false)

		mainBefore, err := scene.Repo.RevParse("main")
		require.NoError(t, err)

		require.NoError(t, scene.Repo.CreateFile("pushed.txt", "pushed", 0644))
		opts := actions.CommitOptions{Branch: "main", Path: "pushed.txt", Push: true}
		err = actions.CommitAction(context.Background(), opts, rt)
		require.ErrorIs(t, err, bgiterrors.ErrPushFailed)

		// The local commit still happened
		mainAfter, err := scene.Repo.RevParse("main")
		require.NoError(t, err)
		require.NotEqual(t, mainBefore, mainAfter)

		content, err := scene.Repo.ShowFile("main", "pushed.txt")
		require.NoError(t, err)
		require.Equal(t, "pushed", string(content))
	})

	t.Run("verified commit succeeds on a quiet branch", func(t *testing.T) {
		// The conflicting case (ref moves between resolution and the
		// move) is pinned at the ref level in the git package tests.
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})
		rt := newRuntime(t, scene, false)

		require.NoError(t, scene.Repo.CreateFile("g.txt", "g", 0644))
		opts := actions.CommitOptions{Branch: "main", Path: "g.txt", VerifyRef: true}
		require.NoError(t, actions.CommitAction(context.Background(), opts, rt))

		content, err := scene.Repo.ShowFile("main", "g.txt")
		require.NoError(t, err)
		require.Equal(t, "g", string(content))
	})

	t.Run("creates the branch and reports it when confirmed", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "alpha", "init")
		})
		rt := newRuntime(t, scene, true)

		require.NoError(t, scene.Repo.CreateFile("new.txt", "new", 0644))
		opts := actions.CommitOptions{Branch: "feature/foo", Path: "new.txt"}
		require.NoError(t, actions.CommitAction(context.Background(), opts, rt))

		require.True(t, scene.Repo.BranchExists("feature/foo"))
		content, err := scene.Repo.ShowFile("feature/foo", "new.txt")
		require.NoError(t, err)
		require.Equal(t, "new", string(content))
	})
}
