package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

// ErrInvalidCredentials is returned for an unknown username and for a wrong password alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash keeps unknown-user logins as slow as wrong-password ones.
const dummyHash = "$2a$14$H5aVoE1YSTxBF63MLgBfo.u0W7vNcx5JQb7LUix.DicQv3WESnYuq"

type Credentials struct {
	UserID       int
	Username     string
	PasswordHash string
}

type credentialsStore interface {
	GetCredentials(ctx context.Context, username string) (*Credentials, error)
}

type passwordVerifier interface {
	Verify(password, hash string) bool
}

type revocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Service struct {
	credentials credentialsStore
	hasher      passwordVerifier
	tokens      *TokenIssuer
	revocations revocationStore
}

// NewService builds the auth gate. revocations may be nil, logout then only clears the cookie.
func NewService(
	credentials credentialsStore,
	hasher passwordVerifier,
	tokens *TokenIssuer,
	revocations revocationStore,
) *Service {
	return &Service{
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
		revocations: revocations,
	}
}

func (s *Service) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (_ Identity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.authenticate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	creds, err := s.credentials.GetCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFoundOrForbidden) {
			s.hasher.Verify(password, dummyHash)
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, fmt.Errorf("get credentials: %w", err)
	}

	if !s.hasher.Verify(password, creds.PasswordHash) {
		return Identity{}, ErrInvalidCredentials
	}

	span.SetAttributes(attribute.Int("user_id", creds.UserID))
	return Identity{UserID: creds.UserID, Username: creds.Username}, nil
}

// Login authenticates and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, Identity, error) {
	identity, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", Identity{}, err
	}

	token, _, err := s.tokens.Issue(identity)
	if err != nil {
		return "", Identity{}, err
	}

	return token, identity, nil
}

func (s *Service) ResolveToken(ctx context.Context, token string) (_ Identity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return Identity{}, err
	}

	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return Identity{}, fmt.Errorf("check revoked: %w", err)
		}
		if revoked {
			return Identity{}, fmt.Errorf("%w: revoked", ErrInvalidToken)
		}
	}

	span.SetAttributes(attribute.Int("user_id", claims.UserID))
	return Identity{UserID: claims.UserID, Username: claims.Subject}, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}

	if s.revocations == nil {
		log.Warnf("logout for user %d without a revocation store", claims.UserID)
		return nil
	}

	remaining := claims.ExpiresAt.Time.Sub(s.tokens.now())
	if err := s.revocations.Revoke(ctx, claims.ID, remaining); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	return nil
}
