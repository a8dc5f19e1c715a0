package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trenchhq/trench-api/internal/domain/entity"
)

func newTestUserService() (*UserService, *fakeUserRepo) {
	users := newFakeUserRepo()
	return NewUserService(users, quietLogger()), users
}

func seedUser(t *testing.T, users *fakeUserRepo, id, email, name string, role entity.Role) *entity.User {
	t.Helper()
	u := &entity.User{ID: id, Email: email, Name: name, Password: "x", Role: role}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestUpdateProfile(t *testing.T) {
	svc, users := newTestUserService()
	ctx := context.Background()

	seedUser(t, users, "user_1", "a@example.com", "Alice", entity.RoleStudent)

	u, err := svc.UpdateProfile(ctx, "user_1", UpdateProfileInput{Name: "Alicia", Email: "alicia@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", u.Name)
	assert.Equal(t, "alicia@example.com", u.Email)
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	svc, users := newTestUserService()
	ctx := context.Background()

	seedUser(t, users, "user_1", "a@example.com", "Alice", entity.RoleStudent)
	seedUser(t, users, "user_2", "b@example.com", "Bob", entity.RoleStudent)

	_, err := svc.UpdateProfile(ctx, "user_1", UpdateProfileInput{Email: "b@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDeleteAndRestoreUser(t *testing.T) {
	svc, users := newTestUserService()
	ctx := context.Background()

	seedUser(t, users, "user_1", "a@example.com", "Alice", entity.RoleStudent)

	// Restoring a live user is rejected.
	assert.ErrorIs(t, svc.RestoreUser(ctx, "user_1"), ErrUserNotDeleted)

	require.NoError(t, svc.DeleteUser(ctx, "user_1"))
	assert.True(t, users.users["user_1"].IsDeleted)
	assert.NotNil(t, users.users["user_1"].DeletedAt)

	// Deleting twice reports not found: live lookups no longer see the row.
	assert.ErrorIs(t, svc.DeleteUser(ctx, "user_1"), ErrUserNotFound)

	require.NoError(t, svc.RestoreUser(ctx, "user_1"))
	assert.False(t, users.users["user_1"].IsDeleted)
	assert.Nil(t, users.users["user_1"].DeletedAt)
}

func TestListUsers(t *testing.T) {
	svc, users := newTestUserService()
	ctx := context.Background()

	for _, id := range []string{"user_1", "user_2", "user_3"} {
		seedUser(t, users, id, id+"@example.com", id, entity.RoleStudent)
	}
	now := time.Now()
	users.users["user_3"].IsDeleted = true
	users.users["user_3"].DeletedAt = &now

	list, page, limit, total, err := svc.ListUsers(ctx, 1, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 2, limit)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	list, _, _, total, err = svc.ListUsers(ctx, 1, 10, true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 3)
}

func TestListUsers_ClampsLimit(t *testing.T) {
	svc, users := newTestUserService()

	seedUser(t, users, "user_1", "a@example.com", "Alice", entity.RoleStudent)

	_, page, limit, _, err := svc.ListUsers(context.Background(), -5, 1000, false)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)
}
