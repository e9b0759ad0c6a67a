// Package memory provides an in-memory implementation of the user
// repository. The collection lives for the lifetime of the process and is
// guarded by a single mutex: reads and writes are fully serialized so id
// assignment, uniqueness, and pagination always observe a consistent
// collection.
package memory

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	domain "user-rest-service/internal/domain/user"
)

// UserRepository stores users in process memory. It owns every User
// instance it holds and only ever hands out copies, so callers can never
// mutate the collection behind its back.
type UserRepository struct {
	mu    sync.Mutex
	users []domain.User
	log   *zap.Logger
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository(log *zap.Logger) *UserRepository {
	return &UserRepository{log: log}
}

// nextID computes the id for a new user as max(existing ids)+1, or 1 when
// the collection is empty. The maximum is recomputed on every create, so
// deleting the highest-id user frees its id for the next insert. Callers
// must hold r.mu.
func (r *UserRepository) nextID() int64 {
	var maxID int64
	for i := range r.users {
		if r.users[i].ID > maxID {
			maxID = r.users[i].ID
		}
	}
	return maxID + 1
}

// Create assigns a fresh id, canonicalizes name and email, and appends the
// user to the collection. Field validity and email uniqueness are the
// caller's responsibility; Create does not re-check them.
func (r *UserRepository) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := domain.User{
		ID:    r.nextID(),
		Name:  strings.TrimSpace(u.Name),
		Age:   u.Age,
		Email: strings.ToLower(strings.TrimSpace(u.Email)),
	}
	r.users = append(r.users, stored)

	r.log.Debug("user stored", zap.Int64("id", stored.ID), zap.Int("total", len(r.users)))

	out := stored
	return &out, nil
}

// GetByID returns a copy of the user with the given id, or nil when no
// such user exists.
func (r *UserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			out := r.users[i]
			return &out, nil
		}
	}
	return nil, nil
}

// Update overwrites name, age, and email on the existing record in place,
// preserving its id, and returns a copy of the updated user. Returns nil
// when the id is absent. Like Create, it trusts the caller for validation.
func (r *UserRepository) Update(_ context.Context, id int64, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Name = strings.TrimSpace(u.Name)
			r.users[i].Age = u.Age
			r.users[i].Email = strings.ToLower(strings.TrimSpace(u.Email))
			out := r.users[i]
			return &out, nil
		}
	}
	return nil, nil
}

// Delete removes the user with the given id and reports whether a matching
// record was found.
func (r *UserRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.log.Debug("user removed", zap.Int64("id", id), zap.Int("total", len(r.users)))
			return true, nil
		}
	}
	return false, nil
}

// List returns a copy of the users in the requested page window
// [(page-1)*pageSize, page*pageSize), clipped to the collection bounds,
// plus the total user count. An out-of-range page yields an empty slice.
func (r *UserRepository) List(_ context.Context, page, pageSize int64) ([]domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := int64(len(r.users))

	// Out-of-range detection compares against the page count rather than
	// the window start: (page-1)*pageSize can overflow int64 for huge page
	// values, wrapping negative or aliasing an earlier window.
	totalPages := (total + pageSize - 1) / pageSize
	if page > totalPages {
		return []domain.User{}, total, nil
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	out := make([]domain.User, end-start)
	copy(out, r.users[start:end])
	return out, total, nil
}

// EmailExists reports whether any user holds the given email address,
// compared case-insensitively. A user whose id equals excludeID is never
// considered a match; pass 0 to exclude nobody.
func (r *UserRepository) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == excludeID {
			continue
		}
		if strings.EqualFold(r.users[i].Email, email) {
			return true, nil
		}
	}
	return false, nil
}
