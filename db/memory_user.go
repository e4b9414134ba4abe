package db

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var _ UserStore = (*MemoryUserStore)(nil)

// MemoryUserStore is an in-process UserStore with the same visible
// semantics as the Mongo implementation: soft-deleted users are invisible,
// email is unique among live users, rotation is conditional on the old
// token. It backs the service and HTTP test suites.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[bson.ObjectID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[bson.ObjectID]models.User)}
}

func (s *MemoryUserStore) Create(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.Email = normalizeEmail(user.Email)
	for _, u := range s.users {
		if !u.IsDeleted && u.Email == user.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	now := time.Now().UTC()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id bson.ObjectID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok || u.IsDeleted {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = normalizeEmail(email)
	for _, u := range s.users {
		if !u.IsDeleted && u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryUserStore) Find(_ context.Context, q Query) ([]models.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.User
	for _, u := range s.users {
		if !u.IsDeleted && matchUser(u, q.Conditions) {
			matched = append(matched, u)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := int(q.Offset())
	if start > len(matched) {
		start = len(matched)
	}
	end := min(start+q.PageSize, len(matched))
	return matched[start:end], total, nil
}

func (s *MemoryUserStore) Update(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[user.ID]
	if !ok || current.IsDeleted {
		return ErrNotFound
	}

	current.Name = user.Name
	current.Email = normalizeEmail(user.Email)
	current.Age = user.Age
	current.Gender = user.Gender
	current.Address = user.Address
	current.Role = user.Role
	current.Company = user.Company
	current.UpdatedBy = user.UpdatedBy
	current.UpdatedAt = time.Now().UTC()
	s.users[user.ID] = current
	return nil
}

func (s *MemoryUserStore) SoftDelete(_ context.Context, id bson.ObjectID, by models.Stamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok || u.IsDeleted {
		return ErrNotFound
	}

	now := time.Now().UTC()
	u.IsDeleted = true
	u.DeletedAt = &now
	u.DeletedBy = &by
	s.users[id] = u
	return nil
}

func (s *MemoryUserStore) Restore(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok || !u.IsDeleted {
		return ErrNotFound
	}

	u.IsDeleted = false
	u.DeletedAt = nil
	u.DeletedBy = nil
	s.users[id] = u
	return nil
}

func (s *MemoryUserStore) SetRefreshToken(_ context.Context, id bson.ObjectID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok || u.IsDeleted {
		return ErrNotFound
	}
	u.RefreshToken = token
	s.users[id] = u
	return nil
}

func (s *MemoryUserStore) RotateRefreshToken(_ context.Context, id bson.ObjectID, old, next string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok || u.IsDeleted || u.RefreshToken != old {
		return ErrNotFound
	}
	u.RefreshToken = next
	s.users[id] = u
	return nil
}

func (s *MemoryUserStore) FindByRefreshToken(_ context.Context, token string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if !u.IsDeleted && u.RefreshToken != "" && u.RefreshToken == token {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func matchUser(u models.User, conds []Condition) bool {
	for _, c := range conds {
		var field string
		switch c.Field {
		case "name":
			field = u.Name
		case "email":
			field = u.Email
		case "role":
			field = string(u.Role)
		case "company._id":
			if u.Company == nil {
				return false
			}
			field = u.Company.ID.Hex()
		default:
			continue
		}

		value, ok := c.Value.(string)
		if !ok {
			return false
		}
		switch c.Op {
		case OpMatch:
			if !strings.Contains(strings.ToLower(field), strings.ToLower(value)) {
				return false
			}
		default:
			if field != value {
				return false
			}
		}
	}
	return true
}
