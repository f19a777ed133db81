package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/acarder/cardshop/internal/events"
	"github.com/acarder/cardshop/internal/hash"
	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/models"
	"github.com/acarder/cardshop/internal/repo"
	"github.com/acarder/cardshop/pkg/tokens"
)

const accessTokenTTL = 24 * time.Hour

type AuthService struct {
	Store     repo.Store
	JWTSecret []byte
	Producer  events.Producer
}

type LoginResult struct {
	AccessToken string
	AccessExp   time.Time
	User        *models.User
}

func (s *AuthService) Signup(ctx context.Context, username, phone, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup", "username", username)

	if username == "" || phone == "" || password == "" {
		return nil, fmt.Errorf("%w: username, phone and password required", ErrValidation)
	}

	if _, err := s.Store.FindUserByUsername(ctx, username); err == nil {
		l.Warn("signup_failed", "status", 409, "reason", "username taken")
		return nil, ErrUserAlreadyExist
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("signup_failed", "status", 500, "error", err)
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("signup_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Username:      username,
		Phone:         phone,
		PasswordHash:  pwHash,
		Role:          models.RoleUser,
		WalletBalance: 0,
	}
	if err := s.Store.SaveUser(ctx, user); err != nil {
		l.Error("signup_failed", "status", 500, "error", err)
		return nil, err
	}

	s.publish(ctx, events.TopicUserEvents, user.ID, map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	})

	l.Info("signup_success", "user_id", user.ID)
	return user, nil
}

// Login checks username, password and phone, and refuses banned accounts. The
// phone is not a second factor, only a presence check carried over from the
// original flow.
func (s *AuthService) Login(ctx context.Context, username, phone, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	user, err := s.Store.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown username")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password")
		return nil, ErrInvalidCredentials
	}
	if user.IsBanned {
		l.Warn("login_failed", "status", 403, "reason", "account banned")
		return nil, ErrBanned
	}
	if user.Phone != phone {
		l.Warn("login_failed", "status", 401, "reason", "phone mismatch")
		return nil, ErrInvalidCredentials
	}

	accessExp := time.Now().Add(accessTokenTTL)
	token, err := tokens.SignAccessToken(user.ID, user.Role, accessExp, s.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	l.Info("login_success", "user_id", user.ID, "role", user.Role)
	return &LoginResult{
		AccessToken: token,
		AccessExp:   accessExp,
		User:        user,
	}, nil
}

func (s *AuthService) publish(ctx context.Context, topic, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", topic, "error", err)
	}
}
