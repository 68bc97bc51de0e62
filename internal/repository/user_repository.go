package repository

import (
	"context"
	"time"

	"github.com/iliyamo/flight-booking/internal/model"
	"github.com/iliyamo/flight-booking/internal/store"
	"github.com/iliyamo/flight-booking/internal/utils"
)

// UserRepo is the identity store: it registers users and resolves
// credentials against the shared in-memory dataset.
type UserRepo struct{ Store *store.Store }

func NewUserRepo(s *store.Store) *UserRepo { return &UserRepo{Store: s} }

// Create registers a user and returns the stored record. Emails are
// matched exactly (case-sensitive). The bcrypt digest is computed before
// the store lock is taken so hashing never stalls other requests; the
// duplicate check runs again under the lock.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, cost int) (model.User, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}

	r.Store.Mu.Lock()
	defer r.Store.Mu.Unlock()
	for _, u := range r.Store.Users {
		if u.Email == email {
			return model.User{}, ErrEmailExists
		}
	}
	u := &model.User{
		ID:           r.Store.NextUserID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	r.Store.Users = append(r.Store.Users, u)
	return *u, nil
}

// GetByEmail fetches a user by exact email match.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	r.Store.Mu.Lock()
	defer r.Store.Mu.Unlock()
	for _, u := range r.Store.Users {
		if u.Email == email {
			return *u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	r.Store.Mu.Lock()
	defer r.Store.Mu.Unlock()
	for _, u := range r.Store.Users {
		if u.ID == id {
			return *u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}
