package users

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

type usersRepo interface {
	CreateUser(ctx context.Context, user NewUser) (*Profile, error)
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int, patch ProfilePatch) (*Profile, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	repo   usersRepo
	hasher passwordHasher
}

func NewService(repo usersRepo, hasher passwordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *Service) Register(ctx context.Context, reg Registration) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username := strings.TrimSpace(reg.Username)
	if username == "" || len(username) > maxUsernameLength {
		return nil, pkg.NewValidationError("username must be 1 to %d characters", maxUsernameLength)
	}
	fullname := strings.TrimSpace(reg.Fullname)
	if fullname == "" {
		return nil, pkg.NewValidationError("fullname must not be empty")
	}
	if err := validateEmail(reg.Email); err != nil {
		return nil, err
	}
	if err := validatePasswords(reg.Password, reg.ConfirmPassword); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile, err := s.repo.CreateUser(ctx, NewUser{
		Username:     username,
		Fullname:     fullname,
		Email:        strings.TrimSpace(reg.Email),
		PasswordHash: hash,
		Weight:       reg.Weight,
		Height:       reg.Height,
		DOB:          reg.DOB,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	span.SetAttributes(attribute.Int("user_id", profile.ID))
	log.Infof("new user registered: %s [%d]", profile.Username, profile.ID)
	return profile, nil
}

// ResetPassword sets a new password for the username.
func (s *Service) ResetPassword(ctx context.Context, reset PasswordReset) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.reset_password")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(reset.Username) == "" {
		return pkg.NewValidationError("username must not be empty")
	}
	if err := validatePasswords(reset.Password, reset.ConfirmPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(reset.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, strings.TrimSpace(reset.Username), hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	log.Infof("password reset for user %s", reset.Username)
	return nil
}

func (s *Service) Profile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", userID, err)
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, identityUsername string, userID int, update ProfileUpdate) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	if update.Fullname.Set {
		if !update.Fullname.HasValue() || strings.TrimSpace(update.Fullname.Value) == "" {
			return nil, pkg.NewValidationError("fullname must not be empty")
		}
	}
	if update.Email.Set {
		if !update.Email.HasValue() {
			return nil, pkg.NewValidationError("email cannot be null")
		}
		if err := validateEmail(update.Email.Value); err != nil {
			return nil, err
		}
	}

	if update.Password.Set {
		if !update.Password.HasValue() || update.Password.Value == "" {
			return nil, pkg.NewValidationError("password must not be empty")
		}
		hash, err := s.hasher.Hash(update.Password.Value)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		if err := s.repo.UpdatePasswordHash(ctx, identityUsername, hash); err != nil {
			return nil, fmt.Errorf("update password: %w", err)
		}
	}

	profile, err := s.repo.UpdateProfile(ctx, userID, update.ProfilePatch)
	if err != nil {
		return nil, fmt.Errorf("update profile %d: %w", userID, err)
	}
	return profile, nil
}

func validatePasswords(password, confirm string) error {
	if password == "" {
		return pkg.NewValidationError("password must not be empty")
	}
	if password != confirm {
		return pkg.NewValidationError("passwords do not match")
	}
	return nil
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return &pkg.ValidationError{Message: "invalid email address", Err: err}
	}
	return nil
}
