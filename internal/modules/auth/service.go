package auth

import (
	"context"
	"strings"
	"time"

	"tourism/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users  userRepo
	tokens tokenIssuer
	audits auditRecorder
}

func NewService(users userRepo, tokens tokenIssuer, audits auditRecorder) *Service {
	return &Service{users: users, tokens: tokens, audits: audits}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:  u.ID,
			Action:   "user_registered",
			Entity:   "user",
			EntityID: u.ID,
		})
	}

	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// A missing user and a wrong password look the same to the caller.
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	_ = s.users.TouchLastOnline(ctx, u.ID, time.Now().UTC())

	if s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:  u.ID,
			Action:   "user_logged_in",
			Entity:   "user",
			EntityID: u.ID,
		})
	}

	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
