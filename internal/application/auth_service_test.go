package application

import (
	"context"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

// --- in-memory fakes ---

type fakeUserRepo struct {
	users map[string]*entity.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) byEmail(email string, includeDeleted bool) *entity.User {
	for _, u := range f.users {
		if u.Email == email && (includeDeleted || !u.IsDeleted) {
			return u
		}
	}
	return nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.byEmail(u.Email, false) != nil {
		return repository.ErrDuplicate
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Revive(_ context.Context, id, name, passwordHash string, role entity.Role) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok || !u.IsDeleted {
		return nil, repository.ErrNotFound
	}
	u.Name = name
	u.Password = passwordHash
	u.Role = role
	u.IsDeleted = false
	u.DeletedAt = nil
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok || u.IsDeleted {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u := f.byEmail(email, false)
	if u == nil {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmailIncludingDeleted(_ context.Context, email string) (*entity.User, error) {
	u := f.byEmail(email, true)
	if u == nil {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cur, ok := f.users[u.ID]
	if !ok || cur.IsDeleted {
		return repository.ErrNotFound
	}
	if other := f.byEmail(u.Email, false); other != nil && other.ID != u.ID {
		return repository.ErrDuplicate
	}
	cur.Name = u.Name
	cur.Email = u.Email
	cur.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := f.users[id]
	if !ok || u.IsDeleted {
		return repository.ErrNotFound
	}
	u.Password = passwordHash
	return nil
}

func (f *fakeUserRepo) SoftDelete(_ context.Context, id string) error {
	u, ok := f.users[id]
	if !ok || u.IsDeleted {
		return repository.ErrNotFound
	}
	now := time.Now()
	u.IsDeleted = true
	u.DeletedAt = &now
	return nil
}

func (f *fakeUserRepo) Restore(_ context.Context, id string) error {
	u, ok := f.users[id]
	if !ok || !u.IsDeleted {
		return repository.ErrNotFound
	}
	u.IsDeleted = false
	u.DeletedAt = nil
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, page repository.Page, includeDeleted bool) ([]entity.PublicUser, int64, error) {
	all := make([]entity.PublicUser, 0, len(f.users))
	for _, u := range f.users {
		if !includeDeleted && u.IsDeleted {
			continue
		}
		all = append(all, u.PublicView())
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))
	if page.Offset >= len(all) {
		return nil, total, nil
	}
	end := page.Offset + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[page.Offset:end], total, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeTokenRepo struct {
	users  *fakeUserRepo
	tokens map[string]*entity.PasswordResetToken // by token value
}

func newFakeTokenRepo(users *fakeUserRepo) *fakeTokenRepo {
	return &fakeTokenRepo{users: users, tokens: make(map[string]*entity.PasswordResetToken)}
}

func (f *fakeTokenRepo) Create(_ context.Context, t *entity.PasswordResetToken) error {
	if _, ok := f.tokens[t.Token]; ok {
		return repository.ErrDuplicate
	}
	t.CreatedAt = time.Now()
	cp := *t
	f.tokens[t.Token] = &cp
	return nil
}

func (f *fakeTokenRepo) GetByToken(_ context.Context, token string) (*entity.PasswordResetToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTokenRepo) InvalidateUnused(_ context.Context, userID string, now time.Time) error {
	for _, t := range f.tokens {
		if t.UserID == userID && !t.Used && t.ExpiresAt.After(now) {
			t.ExpiresAt = now
		}
	}
	return nil
}

func (f *fakeTokenRepo) Consume(ctx context.Context, token, userID, passwordHash string) error {
	t, ok := f.tokens[token]
	if !ok || t.Used {
		return repository.ErrNotFound
	}
	t.Used = true
	return f.users.UpdatePassword(ctx, userID, passwordHash)
}

func (f *fakeTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for k, t := range f.tokens {
		if !t.ExpiresAt.After(now) {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

var _ repository.ResetTokenRepository = (*fakeTokenRepo)(nil)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestAuthService() (*AuthService, *fakeUserRepo, *fakeTokenRepo) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo(users)
	jwt := helpers.NewJWTManager("test-secret", 24*time.Hour, 168*time.Hour)
	svc := NewAuthService(users, tokens, jwt, nil, quietLogger(),
		"http://localhost:3000", "http://localhost:3000/reset-password", false)
	return svc, users, tokens
}

func mustRegister(t *testing.T, svc *AuthService, email, password, name string, role entity.Role) *entity.PublicUser {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterInput{
		Email: email, Password: password, Name: name, Role: role,
	})
	require.NoError(t, err)
	return u
}

// --- tests ---

func TestRegister_DefaultsToStudent(t *testing.T) {
	svc, _, _ := newTestAuthService()

	u := mustRegister(t, svc, "a@example.com", "secret123", "Alice", "")
	assert.Equal(t, entity.RoleStudent, u.Role)
	assert.Equal(t, "a@example.com", u.Email)
	assert.False(t, u.IsDeleted)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	mustRegister(t, svc, "a@example.com", "secret123", "Alice", "")
	_, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@example.com", Password: "other456", Name: "Mallory",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_RevivesSoftDeletedRow(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	old := mustRegister(t, svc, "a@example.com", "secret123", "Alice", "")
	require.NoError(t, users.SoftDelete(ctx, old.ID))

	revived, err := svc.Register(ctx, RegisterInput{
		Email: "a@example.com", Password: "newpass456", Name: "Alice Again", Role: entity.RoleFaculty,
	})
	require.NoError(t, err)

	// Same physical row reclaimed, not a second one.
	assert.Equal(t, old.ID, revived.ID)
	assert.Equal(t, "Alice Again", revived.Name)
	assert.Equal(t, entity.RoleFaculty, revived.Role)
	assert.False(t, revived.IsDeleted)
	assert.Len(t, users.users, 1)

	// The old password is gone with the old hash.
	_, _, _, err = svc.Login(ctx, "a@example.com", "secret123", false)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, _, err = svc.Login(ctx, "a@example.com", "newpass456", false)
	assert.NoError(t, err)
}

func TestLogin_IssuesParseableToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	reg := mustRegister(t, svc, "a@example.com", "secret123", "Alice", entity.RoleAdmin)

	u, token, exp, err := svc.Login(ctx, "a@example.com", "secret123", false)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestLogin_RememberMeExtendsTTL(t *testing.T) {
	svc, _, _ := newTestAuthService()

	mustRegister(t, svc, "a@example.com", "secret123", "Alice", "")
	_, _, exp, err := svc.Login(context.Background(), "a@example.com", "secret123", true)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), exp, time.Minute)
}

func TestLogin_UniformFailure(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	u := mustRegister(t, svc, "a@example.com", "secret123", "Alice", "")

	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "secret123", false)
	_, _, _, wrongErr := svc.Login(ctx, "a@example.com", "wrongpass", false)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	// A soft-deleted account fails the same way.
	require.NoError(t, users.SoftDelete(ctx, u.ID))
	_, _, _, deletedErr := svc.Login(ctx, "a@example.com", "secret123", false)
	assert.ErrorIs(t, deletedErr, ErrInvalidCredentials)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	svc, _, tokens := newTestAuthService()

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, tokens.tokens)
}

func TestForgotPassword_IssuesHourLongToken(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()

	mustRegister(t, svc, "a@example.com", "secret123", "Alice", "")
	now := time.Now()
	svc.Now = func() time.Time { return now }

	require.NoError(t, svc.ForgotPassword(ctx, "a@example.com"))
	require.Len(t, tokens.tokens, 1)
	for _, tok := range tokens.tokens {
		assert.Len(t, tok.Token, 64)
		assert.False(t, tok.Used)
		assert.Equal(t, now.Add(time.Hour), tok.ExpiresAt)
	}
}

func TestForgotPassword_InvalidatesPriorTokens(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()

	mustRegister(t, svc, "a@example.com", "secret123", "Alice", "")
	require.NoError(t, svc.ForgotPassword(ctx, "a@example.com"))

	var first string
	for k := range tokens.tokens {
		first = k
	}

	require.NoError(t, svc.ForgotPassword(ctx, "a@example.com"))
	require.Len(t, tokens.tokens, 2)

	// The older link is dead, the newest one works.
	err := svc.ResetPassword(ctx, first, "newpass456")
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	var second string
	for k := range tokens.tokens {
		if k != first {
			second = k
		}
	}
	assert.NoError(t, svc.ResetPassword(ctx, second, "newpass456"))
}

func TestResetPassword_RoundTripAndReplay(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()

	mustRegister(t, svc, "a@example.com", "secret123", "Alice", "")
	require.NoError(t, svc.ForgotPassword(ctx, "a@example.com"))

	var raw string
	for k := range tokens.tokens {
		raw = k
	}

	require.NoError(t, svc.ResetPassword(ctx, raw, "newpass456"))

	_, _, _, err := svc.Login(ctx, "a@example.com", "secret123", false)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, _, err = svc.Login(ctx, "a@example.com", "newpass456", false)
	assert.NoError(t, err)

	// Replaying the consumed token must not change anything.
	err = svc.ResetPassword(ctx, raw, "attacker789")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
	_, _, _, err = svc.Login(ctx, "a@example.com", "newpass456", false)
	assert.NoError(t, err)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()

	mustRegister(t, svc, "a@example.com", "secret123", "Alice", "")

	issued := time.Now()
	svc.Now = func() time.Time { return issued }
	require.NoError(t, svc.ForgotPassword(ctx, "a@example.com"))

	var raw string
	for k := range tokens.tokens {
		raw = k
	}

	// Exactly at expiry the token is no longer redeemable.
	svc.Now = func() time.Time { return issued.Add(time.Hour) }
	err := svc.ResetPassword(ctx, raw, "newpass456")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPassword_UnknownToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	err := svc.ResetPassword(context.Background(), "deadbeef", "newpass456")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestGetProfile(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	u := mustRegister(t, svc, "a@example.com", "secret123", "Alice", "")

	got, err := svc.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	require.NoError(t, users.SoftDelete(ctx, u.ID))
	_, err = svc.GetProfile(ctx, u.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
