package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken is returned when creating or updating a user with an email
// that already belongs to a non-deleted user.
var ErrEmailTaken = errors.New("email already exists")

// UserService implements user CRUD on top of the store: registration,
// administrative creation, listing, update, soft delete and restore.
type UserService struct {
	users db.UserStore
}

func NewUserService(users db.UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates a self-service account. The role is always "user";
// privilege escalation goes through Create.
func (s *UserService) Register(ctx context.Context, form forms.RegisterForm) (models.User, error) {
	hash, err := hashPassword(form.Password)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.Create(ctx, models.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: hash,
		Age:      form.Age,
		Gender:   form.Gender,
		Address:  form.Address,
		Role:     models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	slog.Info("user registered", "user_id", user.ID.Hex())
	return user, nil
}

// Create is the administrative variant: role and company come from the
// form, and the new record is stamped with its creator.
func (s *UserService) Create(ctx context.Context, form forms.CreateUserForm, by models.Identity) (models.User, error) {
	hash, err := hashPassword(form.Password)
	if err != nil {
		return models.User{}, err
	}

	company, err := companyRef(form.Company)
	if err != nil {
		return models.User{}, err
	}

	stamp := by.Stamp()
	user, err := s.users.Create(ctx, models.User{
		Name:      form.Name,
		Email:     form.Email,
		Password:  hash,
		Age:       form.Age,
		Gender:    form.Gender,
		Address:   form.Address,
		Role:      models.Role(form.Role),
		Company:   company,
		CreatedBy: &stamp,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	slog.Info("user created", "user_id", user.ID.Hex(), "by", by.Email)
	return user, nil
}

func (s *UserService) List(ctx context.Context, q db.Query) (models.List[models.User], error) {
	users, total, err := s.users.Find(ctx, q)
	if err != nil {
		return models.List[models.User]{}, err
	}
	return models.NewList(users, q.Current, q.PageSize, total), nil
}

func (s *UserService) Get(ctx context.Context, id bson.ObjectID) (models.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies the mutable fields. An email change is checked against
// live users first; the partial unique index backstops the check.
func (s *UserService) Update(ctx context.Context, id bson.ObjectID, form forms.UpdateUserForm, by models.Identity) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if form.Email != user.Email {
		if _, err := s.users.FindByEmail(ctx, form.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, db.ErrNotFound) {
			return err
		}
	}

	company, err := companyRef(form.Company)
	if err != nil {
		return err
	}

	stamp := by.Stamp()
	user.Name = form.Name
	user.Email = form.Email
	user.Age = form.Age
	user.Gender = form.Gender
	user.Address = form.Address
	user.Role = models.Role(form.Role)
	user.Company = company
	user.UpdatedBy = &stamp

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *UserService) Remove(ctx context.Context, id bson.ObjectID, by models.Identity) error {
	return s.users.SoftDelete(ctx, id, by.Stamp())
}

func (s *UserService) Restore(ctx context.Context, id bson.ObjectID) error {
	return s.users.Restore(ctx, id)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// companyRef converts the validated form reference; the id is checked by
// the objectid binding rule, so a parse failure here is a programming
// error.
func companyRef(form *forms.CompanyRefForm) (*models.CompanyRef, error) {
	if form == nil {
		return nil, nil
	}
	id, err := bson.ObjectIDFromHex(form.ID)
	if err != nil {
		return nil, fmt.Errorf("parse company id: %w", err)
	}
	return &models.CompanyRef{ID: id, Name: form.Name}, nil
}
