package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hirely-api/config"
	"hirely-api/internal/models"
	"hirely-api/internal/storage"
	"hirely-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Claims carries the caller's role alongside the registered claims so the
// role gate never needs a user lookup per request.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

type userService struct {
	repo   storage.UserRepository
	tokens storage.RefreshTokenStore
	jwtCfg config.JWTConfig
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, tokens storage.RefreshTokenStore, jwtCfg config.JWTConfig) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		jwtCfg: jwtCfg,
	}
}

// Register creates a new account and logs it in. Every registration gets the
// "user" role; admins are provisioned separately (cmd/create-admin).
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *TokenPair, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v", req.Email, err)
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("registering user %s", req.Email))
	}

	pair, err := s.issueTokens(ctx, created)
	if err != nil {
		return nil, nil, err
	}
	return created, pair, nil
}

// Login checks credentials and issues a fresh token pair. Unknown email and
// wrong password both return ErrInvalidCredentials so callers cannot tell
// which one failed.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *TokenPair, error) {
	emailReq := dto.GetUserByEmailRequest{Email: req.Email}
	user, err := s.repo.GetByEmail(ctx, &emailReq)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued for the user it belonged to.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*TokenPair, error) {
	userID, err := s.tokens.Resolve(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	user, err := s.repo.GetByID(ctx, &dto.GetUserByIdRequest{ID: userID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Account deleted since the token was issued.
			_ = s.tokens.Revoke(ctx, req.RefreshToken)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	if err := s.tokens.Revoke(ctx, req.RefreshToken); err != nil {
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token. The access token simply runs
// out its short expiry.
func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.tokens.Revoke(ctx, req.RefreshToken); err != nil {
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

// UpdateProfile updates only name/email.
func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating profile %s", req.UserID))
	}
	return user, nil
}

// DeleteProfile removes the caller's account and, by cascade, their applications.
func (s *userService) DeleteProfile(ctx context.Context, req *dto.DeleteProfileRequest) error {
	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting profile %s", req.UserID))
	}
	return nil
}

// issueTokens signs an access JWT carrying the role and stores a new opaque
// refresh token in the token store.
func (s *userService) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	now := time.Now()
	claims := &Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.AccessExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Email, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}

	refreshToken := uuid.NewString()
	if err := s.tokens.Save(ctx, refreshToken, user.ID, s.jwtCfg.RefreshExpiration); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", user.Email, err)
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
