package service

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"open-law-be/internal/config"
	"open-law-be/internal/dto"
	"open-law-be/internal/entity"
	"open-law-be/internal/pkg/apperr"
	"open-law-be/internal/repository/specification"
	"open-law-be/internal/repository/unitofwork"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	authConfig config.AuthConfig
	// Refresh sessions are in-memory: a restart logs everyone out, which is
	// acceptable for session bookkeeping of this size.
	sessions *cache.Cache
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, authConfig config.AuthConfig, sessions *cache.Cache) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		authConfig: authConfig,
		sessions:   sessions,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("username %q is taken", req.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Id: user.Id, Username: user.Username}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	return s.issueTokens(user.Id)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.LoginResponse, error) {
	userID, ok := s.sessions.Get(req.RefreshToken)
	if !ok {
		return nil, apperr.Unauthorized("invalid refresh token")
	}
	s.sessions.Delete(req.RefreshToken)
	return s.issueTokens(userID.(uint))
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.sessions.Delete(refreshToken)
	return nil
}

func (s *authService) issueTokens(userID uint) (*dto.LoginResponse, error) {
	ttl := time.Duration(s.authConfig.TokenTTLMinutes) * time.Minute

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := s.authConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.New().String()
	s.sessions.Set(refreshToken, userID, 30*24*time.Hour)

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: refreshToken,
	}, nil
}
