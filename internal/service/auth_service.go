package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"saicollege/internal/models"
	"saicollege/internal/repository"
	"saicollege/pkg/auth"
	"saicollege/pkg/config"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// activity log values
const (
	actionLogin         = "LOGIN"
	actionResetPassword = "RESET_PASSWORD"
	statusSuccess       = "SUCCESS"
	statusFailed        = "FAILED"
	statusBlocked       = "BLOCKED"
)

type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
}

type AuthService struct {
	accounts    *repository.AdminFileRepository
	activity    *repository.ActivityLogRepository
	jwtManager  *auth.JWTManager
	attempts    *cache.Cache
	attemptsMu  sync.Mutex
	maxAttempts int
	defaults    models.AdminAccount
	now         func() time.Time
	logger      *zap.Logger
}

func NewAuthService(
	accounts *repository.AdminFileRepository,
	activity *repository.ActivityLogRepository,
	jwtManager *auth.JWTManager,
	cfg *config.AdminConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		accounts:    accounts,
		activity:    activity,
		jwtManager:  jwtManager,
		attempts:    cache.New(cfg.BlockWindow, 2*cfg.BlockWindow),
		maxAttempts: cfg.MaxAttempts,
		defaults: models.AdminAccount{
			Username:   cfg.DefaultUsername,
			Password:   cfg.DefaultPassword,
			SecretCode: cfg.DefaultSecretCode,
		},
		now:    time.Now,
		logger: logger,
	}
}

// EnsureAccount creates the default admin account on first run.
func (s *AuthService) EnsureAccount(ctx context.Context) error {
	_, err := s.accounts.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	password, err := auth.HashPassword(s.defaults.Password)
	if err != nil {
		return err
	}
	secret, err := auth.HashPassword(s.defaults.SecretCode)
	if err != nil {
		return err
	}

	account := &models.AdminAccount{
		Username:   s.defaults.Username,
		Password:   password,
		SecretCode: secret,
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return fmt.Errorf("create default admin account: %w", err)
	}

	s.logger.Warn("Default admin account created, change its password", zap.String("username", account.Username))
	return nil
}

// Login checks the credentials of a client identified by ip. After
// maxAttempts failures the client is refused until the block window ends.
func (s *AuthService) Login(ctx context.Context, ip, username, password string) (*LoginResult, error) {
	if s.failures(ip) >= s.maxAttempts {
		s.logActivity(ctx, ip, actionLogin, statusBlocked)
		return nil, ErrTooManyAttempts
	}

	account, err := s.accounts.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load admin account: %w", err)
	}

	if username != account.Username || !auth.CheckPasswordHash(password, account.Password) {
		if s.recordFailure(ip) >= s.maxAttempts {
			s.logActivity(ctx, ip, actionLogin, statusBlocked)
			return nil, ErrTooManyAttempts
		}
		s.logActivity(ctx, ip, actionLogin, statusFailed)
		return nil, ErrInvalidCredentials
	}

	s.attempts.Delete(ip)

	token, err := s.jwtManager.GenerateToken(account.Username, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, ip, actionLogin, statusSuccess)
	s.logger.Info("Admin logged in", zap.String("username", account.Username), zap.String("ip", ip))

	return &LoginResult{
		Token:     token,
		ExpiresIn: s.jwtManager.GetTokenDuration(),
	}, nil
}

// ResetPassword replaces the admin password when secret matches the stored
// secret code.
func (s *AuthService) ResetPassword(ctx context.Context, ip, secret, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}

	account, err := s.accounts.Get(ctx)
	if err != nil {
		return fmt.Errorf("load admin account: %w", err)
	}

	if !auth.CheckPasswordHash(secret, account.SecretCode) {
		s.logActivity(ctx, ip, actionResetPassword, statusFailed)
		return ErrInvalidSecret
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	account.Password = hashed

	if err := s.accounts.Save(ctx, account); err != nil {
		return fmt.Errorf("save admin account: %w", err)
	}

	s.logActivity(ctx, ip, actionResetPassword, statusSuccess)
	return nil
}

func (s *AuthService) ValidateToken(token string) (*auth.Claims, error) {
	return s.jwtManager.ValidateToken(token)
}

func (s *AuthService) failures(ip string) int {
	n, ok := s.attempts.Get(ip)
	if !ok {
		return 0
	}
	return n.(int)
}

func (s *AuthService) recordFailure(ip string) int {
	s.attemptsMu.Lock()
	defer s.attemptsMu.Unlock()

	n, err := s.attempts.IncrementInt(ip, 1)
	if err != nil {
		// first failure starts the block window
		s.attempts.Set(ip, 1, cache.DefaultExpiration)
		return 1
	}
	return n
}

func (s *AuthService) logActivity(ctx context.Context, ip, action, status string) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Append(ctx, s.now(), ip, action, status); err != nil {
		s.logger.Warn("Failed to log admin activity", zap.String("action", action), zap.Error(err))
	}
}
