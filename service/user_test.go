package service

import (
	"context"
	"testing"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

func registerForm(email string) forms.RegisterForm {
	return forms.RegisterForm{
		Name:     "Bob",
		Email:    email,
		Password: "secret1",
		Age:      30,
		Gender:   "male",
		Address:  "Hanoi",
	}
}

func testIdentity() models.Identity {
	return models.Identity{
		ID:    bson.NewObjectID(),
		Name:  "Admin",
		Email: "admin@x.com",
		Role:  models.RoleAdmin,
	}
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	store := db.NewMemoryUserStore()
	svc := NewUserService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerForm("bob@x.com"))
	require.NoError(t, err)

	// Self-registration never grants a privileged role.
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.ID.IsZero())

	// The password is stored hashed, not verbatim.
	assert.NotEqual(t, "secret1", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))

	_, err = svc.Register(ctx, registerForm("bob@x.com"))
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Create_StampsCreator(t *testing.T) {
	t.Parallel()

	store := db.NewMemoryUserStore()
	svc := NewUserService(store)
	ctx := context.Background()
	admin := testIdentity()

	user, err := svc.Create(ctx, forms.CreateUserForm{
		Name:     "Carol",
		Email:    "carol@x.com",
		Password: "secret1",
		Age:      25,
		Gender:   "female",
		Address:  "Saigon",
		Role:     "hr",
	}, admin)
	require.NoError(t, err)

	assert.Equal(t, models.RoleHR, user.Role)
	require.NotNil(t, user.CreatedBy)
	assert.Equal(t, admin.ID, user.CreatedBy.ID)
	assert.Equal(t, "admin@x.com", user.CreatedBy.Email)
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	t.Parallel()

	store := db.NewMemoryUserStore()
	svc := NewUserService(store)
	ctx := context.Background()

	first, err := svc.Register(ctx, registerForm("first@x.com"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, registerForm("second@x.com"))
	require.NoError(t, err)

	form := forms.UpdateUserForm{
		Name:    "First",
		Email:   "second@x.com",
		Age:     31,
		Gender:  "male",
		Address: "Hanoi",
		Role:    "user",
	}
	err = svc.Update(ctx, first.ID, form, testIdentity())
	require.ErrorIs(t, err, ErrEmailTaken)

	// Keeping the own email is not a conflict.
	form.Email = "first@x.com"
	require.NoError(t, svc.Update(ctx, first.ID, form, testIdentity()))

	updated, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 31, updated.Age)
	require.NotNil(t, updated.UpdatedBy)
}

func TestUserService_RemoveAndRestore(t *testing.T) {
	t.Parallel()

	store := db.NewMemoryUserStore()
	svc := NewUserService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerForm("gone@x.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, user.ID, testIdentity()))

	// Soft-deleted users are invisible to reads and email lookups.
	_, err = svc.Get(ctx, user.ID)
	require.ErrorIs(t, err, db.ErrNotFound)
	_, err = store.FindByEmail(ctx, "gone@x.com")
	require.ErrorIs(t, err, db.ErrNotFound)

	// The address is free for a new registration while the old record is
	// deleted.
	replacement, err := svc.Register(ctx, registerForm("gone@x.com"))
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, replacement.ID, testIdentity()))

	require.NoError(t, svc.Restore(ctx, user.ID))
	restored, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.Nil(t, restored.DeletedAt)

	// Restoring a live user is a no-op error.
	require.ErrorIs(t, svc.Restore(ctx, user.ID), db.ErrNotFound)
}

func TestUserService_List_Pagination(t *testing.T) {
	t.Parallel()

	store := db.NewMemoryUserStore()
	svc := NewUserService(store)
	ctx := context.Background()

	for _, email := range []string{"u1@x.com", "u2@x.com", "u3@x.com"} {
		_, err := svc.Register(ctx, registerForm(email))
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, db.Query{Current: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, list.Result, 2)
	assert.Equal(t, int64(3), list.Meta.Total)
	assert.Equal(t, int64(2), list.Meta.Pages)

	list, err = svc.List(ctx, db.Query{Current: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, list.Result, 1)
}
