package repository

import (
	"context"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/schema"
	"github.com/visionfocus/focushours/internal/store"
)

// loadUser returns the stored user, synthesizing the default when absent.
func (r *Repository) loadUser(ctx context.Context) (*domain.User, bool, error) {
	var u domain.User
	found, err := store.GetJSON(ctx, r.kv, schema.KeyUser, &u)
	if err != nil {
		return nil, false, r.persistErr(ctx, "load user", err)
	}
	if !found {
		return domain.NewUser(r.now()), false, nil
	}
	return &u, true, nil
}

func (r *Repository) saveUser(ctx context.Context, u *domain.User) error {
	if err := store.SetJSON(ctx, r.kv, schema.KeyUser, u); err != nil {
		return r.persistErr(ctx, "save user", err)
	}
	return nil
}

// GetUser returns the device user, creating the empty default on first access.
func (r *Repository) GetUser(ctx context.Context) (*domain.User, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	u, found, err := r.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := r.saveUser(ctx, u); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// SetUser replaces the user.
func (r *Repository) SetUser(ctx context.Context, u domain.User) error {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return err
	}
	return r.saveUser(ctx, &u)
}

// UpdateUser merges patch into the stored user.
func (r *Repository) UpdateUser(ctx context.Context, patch domain.UserPatch) (*domain.User, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	u, _, err := r.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	patch.Apply(u)
	if err := r.saveUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
