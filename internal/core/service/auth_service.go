package service

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/edukatsiya/education-platform/internal/core/domain"
	"github.com/edukatsiya/education-platform/internal/core/ports"
	"github.com/edukatsiya/education-platform/internal/pkg/token"
)

const minPasswordLength = 8

// LoginLimiter abstracts the failed-login throttle (Redis). Implementations
// must fail open: a limiter outage must never lock users out.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration, login and the admin bootstrap.
type AuthService struct {
	repo    ports.AuthRepository
	issuer  *token.Issuer
	limiter LoginLimiter
	log     zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, issuer *token.Issuer, limiter LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, limiter: limiter, log: log}
}

// Register validates the password policy, hashes the password and persists a
// new identity with the user role. A duplicate email surfaces as
// domain.ErrEmailTaken via the repository's unique index.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	if err := checkPasswordPolicy(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login authenticates by email and password and issues a token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.login(ctx, email, password, false)
}

// AdminLogin is Login with an additional role requirement. A non-admin account
// receives the same generic rejection as bad credentials.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.login(ctx, email, password, true)
}

func (s *AuthService) login(ctx context.Context, email, password string, adminOnly bool) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if blocked, err := s.limiter.TooManyFailures(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login limiter check failed, allowing attempt")
	} else if blocked {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if adminOnly && !user.IsAdmin() {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.issuer.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to reset login limiter")
	}

	return tkn, user, nil
}

// ListUsers returns all identities. Password hashes are excluded by the
// domain model's JSON contract; this is an admin-only operation at the router.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// BootstrapAdmin creates the default admin identity once, at startup, when no
// user with the configured email exists. A duplicate-key error from a
// concurrent process is treated as success: the storage unique index decides.
func (s *AuthService) BootstrapAdmin(ctx context.Context, email, password, name string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		return nil
	}
	if err == nil {
		s.log.Info().Str("email", email).Msg("default admin created")
	}
	return err
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
	}
}

// checkPasswordPolicy enforces the registration password rules: minimum
// length, at least one uppercase letter, at least one digit. Each failure
// class has its own error so clients get a specific message.
func checkPasswordPolicy(password string) error {
	if len(password) < minPasswordLength {
		return domain.ErrPasswordTooShort
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return domain.ErrPasswordNoUpper
	}
	if !hasDigit {
		return domain.ErrPasswordNoDigit
	}
	return nil
}
