package service

import (
	"context"
	"fmt"
	"time"

	"edusphere-be/internal/config"
	"edusphere-be/internal/dto"
	"edusphere-be/internal/entity"
	"edusphere-be/internal/pkg/logger"
	"edusphere-be/internal/repository/memory"
	"edusphere-be/internal/repository/specification"
	"edusphere-be/internal/repository/unitofwork"
	"edusphere-be/pkg/events"
	pktNats "edusphere-be/pkg/nats"
	"edusphere-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, userAgent string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, username string) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.SessionRepository
	eventPublisher *pktNats.Publisher
	authCfg        config.AuthConfig
	log            logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, sessions *memory.SessionRepository, eventPublisher *pktNats.Publisher, authCfg config.AuthConfig, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		eventPublisher: eventPublisher,
		authCfg:        authCfg,
		log:            log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrEmptyField
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Create User Entity
	user := &entity.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeUserRegistered, map[string]interface{}{
		"username": user.Username,
	})

	return &dto.RegisterResponse{Username: user.Username, CreatedAt: user.CreatedAt}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, userAgent string) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrEmptyField
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check if user exists
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Compare passwords
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. Generate JWT
	accessTokenExpiry := time.Duration(s.authCfg.TokenExpiry) * time.Hour

	claims := jwt.MapClaims{
		"username": user.Username,
		"exp":      time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.authCfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	// 4. Seed the in-memory tutor session. A fresh login always starts a fresh
	// session; any leftover state from a previous login is replaced.
	s.sessions.Save(&store.TutorSession{
		Username:     user.Username,
		Conversation: []store.Message{},
	})

	s.publishEvent(ctx, events.TypeUserLogin, map[string]interface{}{
		"username": user.Username,
		"device":   userAgent,
		"time":     time.Now().Format(time.RFC822),
	})

	return &dto.LoginResponse{
		AccessToken: signedToken,
		User:        dto.UserDTO{Username: user.Username},
	}, nil
}

func (s *authService) Logout(ctx context.Context, username string) error {
	s.sessions.Delete(username)

	s.publishEvent(ctx, events.TypeUserLogout, map[string]interface{}{
		"username": username,
	})
	return nil
}

func (s *authService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("AuthService", fmt.Sprintf("Failed to publish %s event", eventType), map[string]interface{}{
			"error": err.Error(),
		})
	}
}
