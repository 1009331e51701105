package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/config"

	bgiterrors "bgit.dev/bgit/internal/errors"
)

// Identity is the author/committer identity resolved from git config.
type Identity struct {
	Name  string
	Email string
}

// ResolveIdentity reads user.name and user.email from the repository
// config, falling back to the global and system scopes. Both fields must
// be present somewhere in the chain.
func (r *Repository) ResolveIdentity() (Identity, error) {
	cfg, err := r.ConfigScoped(config.SystemScope)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to read git config: %w", err)
	}

	if cfg.User.Name == "" || cfg.User.Email == "" {
		return Identity{}, fmt.Errorf("user.name and user.email must be set in git config: %w", bgiterrors.ErrIdentityMissing)
	}

	return Identity{Name: cfg.User.Name, Email: cfg.User.Email}, nil
}
