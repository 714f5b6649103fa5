package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard-api/internal/cache"
	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// RoleStore is the role-cache surface the services need. Satisfied by
// *cache.RoleCache; faked in tests.
type RoleStore interface {
	Get(ctx context.Context, profileID uuid.UUID) (*cache.Entry, error)
	Set(ctx context.Context, profileID uuid.UUID, entry *cache.Entry) error
	Invalidate(ctx context.Context, profileID uuid.UUID) error
}

type authService struct {
	repo          storage.ProfileRepository
	roles         RoleStore
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(repo storage.ProfileRepository, roles RoleStore, jwtSecret string, jwtExpiration time.Duration) AuthService {
	return &authService{
		repo:          repo,
		roles:         roles,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates a profile with its role fixed at sign-up and signs the
// caller in. The role never changes afterwards; no update path exists.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Profile, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("AuthService: Error hashing password")
		return nil, "", fmt.Errorf("internal error creating profile: %w", err)
	}

	createReq := dto.CreateProfileRequest{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.Role(req.Role),
	}
	profile, err := s.repo.Create(ctx, &createReq)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, "", fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Error().Err(err).Str("email", req.Email).Msg("AuthService: Error creating profile")
		return nil, "", fmt.Errorf("internal error creating profile: %w", err)
	}

	token, err := s.signToken(profile)
	if err != nil {
		return nil, "", err
	}

	return profile, token, nil
}

// Login verifies credentials and returns a signed token.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Profile, string, error) {
	profile, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn().Str("email", req.Email).Msg("Login attempt failed: profile not found")
			return nil, "", ErrInvalidCredentials
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Error fetching profile during login")
		return nil, "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("email", req.Email).Msg("Login attempt failed: invalid password")
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.signToken(profile)
	if err != nil {
		return nil, "", err
	}

	return profile, token, nil
}

// Logout clears the cached role. Access tokens stay valid until they expire;
// what sign-out guarantees is that the cached role entry is gone.
func (s *authService) Logout(ctx context.Context, profileID uuid.UUID) error {
	if err := s.roles.Invalidate(ctx, profileID); err != nil {
		log.Error().Err(err).Str("profile_id", profileID.String()).Msg("AuthService: Error invalidating role cache")
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

// GetProfile resolves the authenticated principal. A missing profile maps to
// ErrNotFound, which handlers treat as unauthenticated.
func (s *authService) GetProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error) {
	profile, err := s.repo.GetByID(ctx, profileID)
	if err != nil {
		return nil, mapRepoError(err, "fetching profile")
	}
	return profile, nil
}

func (s *authService) signToken(profile *models.Profile) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwt.RegisteredClaims{
		Subject:   profile.ID.String(),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Error().Err(err).Str("email", profile.Email).Msg("Error generating JWT token")
		return "", fmt.Errorf("failed to generate login token: %w", err)
	}

	return tokenString, nil
}
