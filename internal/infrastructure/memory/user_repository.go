package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/imnahmed17/user-order-api/internal/domain/entity"
	"github.com/imnahmed17/user-order-api/internal/domain/repository"
)

// UserRepository stores user documents in process memory. It mirrors the
// MongoDB repository's semantics (soft-delete exclusion, uniqueness among
// non-deleted users, atomic order append) for tests and lightweight usage.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

func clone(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	c.Hobbies = append([]string(nil), u.Hobbies...)
	c.Orders = append([]entity.Order(nil), u.Orders...)
	return &c
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.IsDeleted {
			continue
		}
		if existing.UserID == u.UserID || existing.Username == u.Username || existing.Email == u.Email {
			return repository.ErrDuplicateKey
		}
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.UserID] = clone(u)
	return nil
}

func (r *UserRepository) FindAll(_ context.Context) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		if u.IsDeleted {
			continue
		}
		out = append(out, *clone(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepository) FindByID(_ context.Context, userID string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	if !ok || u.IsDeleted {
		return nil, repository.ErrNotFound
	}
	return clone(u), nil
}

func (r *UserRepository) Replace(_ context.Context, userID string, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[userID]
	if !ok || existing.IsDeleted {
		return repository.ErrNotFound
	}
	replaced := clone(u)
	replaced.CreatedAt = existing.CreatedAt
	replaced.UpdatedAt = time.Now().UTC()
	replaced.IsDeleted = false
	u.UpdatedAt = replaced.UpdatedAt
	delete(r.users, userID)
	r.users[replaced.UserID] = replaced
	return nil
}

func (r *UserRepository) SoftDelete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok || u.IsDeleted {
		return repository.ErrNotFound
	}
	u.IsDeleted = true
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *UserRepository) AppendOrder(_ context.Context, userID string, o entity.Order) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok || u.IsDeleted {
		return nil, repository.ErrNotFound
	}
	u.Orders = append(u.Orders, o)
	u.UpdatedAt = time.Now().UTC()
	return append([]entity.Order(nil), u.Orders...), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
