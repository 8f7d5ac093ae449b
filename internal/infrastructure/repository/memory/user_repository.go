package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-hub/internal/domain/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]user.User
	byEmail map[string]string
}

func NewUserRepository(users ...user.User) *UserRepository {
	r := &UserRepository{
		byID:    make(map[string]user.User, len(users)),
		byEmail: make(map[string]string, len(users)),
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byEmail[user.NormalizeEmail(u.Email)] = u.ID
	}

	return r
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := user.NormalizeEmail(u.Email)
	if _, exists := r.byEmail[email]; exists {
		return user.ErrEmailTaken
	}
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID

	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	return u, ok, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[user.NormalizeEmail(email)]
	if !ok {
		return user.User{}, false, nil
	}

	return r.byID[id], true, nil
}
