package db

import (
	"context"
	"errors"

	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	// ErrNotFound covers both a missing document and a conditional update
	// whose predicate matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when an email is already taken by a
	// non-deleted user.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserStore persists user records, including the single-slot refresh token
// that backs the session lifecycle. Lookups never return soft-deleted users.
type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Find(ctx context.Context, q Query) ([]models.User, int64, error)
	Update(ctx context.Context, user models.User) error
	SoftDelete(ctx context.Context, id bson.ObjectID, by models.Stamp) error
	Restore(ctx context.Context, id bson.ObjectID) error

	// SetRefreshToken unconditionally overwrites the stored token. An empty
	// token clears the slot (logout).
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error

	// RotateRefreshToken replaces old with next only if old is still the
	// stored value; ErrNotFound signals a lost rotation race or a revoked
	// token.
	RotateRefreshToken(ctx context.Context, id bson.ObjectID, old, next string) error

	FindByRefreshToken(ctx context.Context, token string) (models.User, error)
}

// CompanyStore persists company records.
type CompanyStore interface {
	Create(ctx context.Context, company models.Company) (models.Company, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Company, error)
	Find(ctx context.Context, q Query) ([]models.Company, int64, error)
	Update(ctx context.Context, company models.Company) error
	SoftDelete(ctx context.Context, id bson.ObjectID, by models.Stamp) error
	Restore(ctx context.Context, id bson.ObjectID) error
}

// JobStore persists job postings.
type JobStore interface {
	Create(ctx context.Context, job models.Job) (models.Job, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Job, error)
	Find(ctx context.Context, q Query) ([]models.Job, int64, error)
	Update(ctx context.Context, job models.Job) error
	SoftDelete(ctx context.Context, id bson.ObjectID, by models.Stamp) error
	Restore(ctx context.Context, id bson.ObjectID) error
}
