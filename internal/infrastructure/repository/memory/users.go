package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

type UserRepository struct {
	s *Store
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func cloneUser(u *entity.User) *entity.User {
	c := clone(u)
	c.Roles = append([]entity.UserRole(nil), u.Roles...)
	return c
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return fmt.Errorf("email %q: %w", user.Email, entity.ErrDuplicate)
		}
	}
	user.ID = r.s.nextID("users")
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	return cloneUser(u), nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", email, entity.ErrNotFound)
}

func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[int64]*entity.User, len(ids))
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			out[id] = cloneUser(u)
		}
	}
	return out, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return nil, notFound("user", user.ID)
	}
	for id, existing := range r.s.users {
		if id != user.ID && strings.EqualFold(existing.Email, user.Email) {
			return nil, fmt.Errorf("email %q: %w", user.Email, entity.ErrDuplicate)
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}
