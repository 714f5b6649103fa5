package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type profileService struct {
	repo storage.ProfileRepository
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(repo storage.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Get(ctx context.Context, profileID uuid.UUID) (*models.Profile, error) {
	profile, err := s.repo.GetByID(ctx, profileID)
	if err != nil {
		return nil, mapRepoError(err, "fetching profile")
	}
	return profile, nil
}

// Update mutates the caller's own profile fields. The ID in the request is
// always the authenticated caller's; handlers never accept it from the body.
func (s *profileService) Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.repo.Update(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("profile_id", req.ID.String()).Msg("ProfileService: Error updating profile")
		return nil, mapRepoError(err, "updating profile")
	}
	return profile, nil
}
