package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
	"github.com/trenchhq/trench-api/pkg/helpers"
	"github.com/trenchhq/trench-api/pkg/mailer"
)

const resetTokenTTL = time.Hour

// AuthService orchestrates the credential store, password hashing, token
// issuance, and the reset-token lifecycle.
type AuthService struct {
	Users  repository.UserRepository
	Tokens repository.ResetTokenRepository
	JWT    *helpers.JWTManager
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger

	FrontendURL      string
	ResetPasswordURL string
	MailEnabled      bool

	// Now is read once per time-sensitive evaluation; overridable in tests.
	Now func() time.Time
}

func NewAuthService(users repository.UserRepository, tokens repository.ResetTokenRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, frontendURL, resetPasswordURL string, mailEnabled bool) *AuthService {
	return &AuthService{
		Users:            users,
		Tokens:           tokens,
		JWT:              jwt,
		Pub:              pub,
		Logger:           logger,
		FrontendURL:      frontendURL,
		ResetPasswordURL: resetPasswordURL,
		MailEnabled:      mailEnabled,
		Now:              time.Now,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.Role
}

// Register creates a live user for an available email. A soft-deleted row
// holding the email is revived in place instead of inserting a second
// physical record. The store's unique constraint is the authoritative
// duplicate signal for races the pre-check misses.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.PublicUser, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleStudent
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	existing, err := s.Users.GetByEmailIncludingDeleted(ctx, in.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	var u *entity.User
	switch {
	case existing != nil && !existing.IsDeleted:
		return nil, ErrEmailTaken
	case existing != nil:
		s.Logger.WithField("email", in.Email).Info("reviving soft-deleted user")
		u, err = s.Users.Revive(ctx, existing.ID, in.Name, hash, role)
		if err != nil {
			return nil, err
		}
	default:
		u = &entity.User{
			ID:       helpers.NewID("user"),
			Email:    in.Email,
			Name:     in.Name,
			Password: hash,
			Role:     role,
		}
		if err := s.Users.Create(ctx, u); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return nil, ErrEmailTaken
			}
			return nil, err
		}
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")

	s.enqueueEmail(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data: map[string]any{
			"Name":         u.Name,
			"DashboardURL": s.FrontendURL + "/dashboard",
		},
	})

	pub := u.PublicView()
	return &pub, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string, remember bool) (*entity.PublicUser, string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(u.ID, u.Email, u.Name, string(u.Role), remember)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		return nil, "", time.Time{}, err
	}

	pub := u.PublicView()
	return &pub, token, exp, nil
}

// ForgotPassword issues a reset token for a live user. The outcome is the
// same whether or not the email exists, so callers cannot enumerate
// accounts. Prior unused tokens are force-expired so only the newest link
// stays redeemable.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.Logger.WithField("email", email).Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	now := s.Now()
	if err := s.Tokens.InvalidateUnused(ctx, u.ID, now); err != nil {
		return err
	}

	raw, err := helpers.GenerateResetToken()
	if err != nil {
		return err
	}
	t := &entity.PasswordResetToken{
		ID:        helpers.NewID("prt"),
		UserID:    u.ID,
		Token:     raw,
		ExpiresAt: now.Add(resetTokenTTL),
	}
	if err := s.Tokens.Create(ctx, t); err != nil {
		return err
	}

	s.Logger.WithField("user_id", u.ID).Info("password reset token issued")

	s.enqueueEmail(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: "reset_password",
		Data: map[string]any{
			"Name":     u.Name,
			"ResetURL": s.ResetPasswordURL + "?token=" + raw,
		},
	})
	return nil
}

// ResetPassword redeems a token and overwrites the owner's password hash.
// The redeemability check and the consume run against a single clock read.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	t, err := s.Tokens.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if !t.Redeemable(s.Now()) {
		return ErrInvalidResetToken
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Tokens.Consume(ctx, token, t.UserID, hash); err != nil {
		// A concurrent redemption already flipped the used flag.
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	s.Logger.WithField("user_id", t.UserID).Info("password reset successful")
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.PublicUser, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	pub := u.PublicView()
	return &pub, nil
}

// enqueueEmail is fire-and-forget: a notification failure never fails the
// flow that triggered it.
func (s *AuthService) enqueueEmail(ctx context.Context, job mailer.EmailJob) {
	if !s.MailEnabled || s.Pub == nil {
		return
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("to", job.To).Warn("email enqueue failed")
	}
}
