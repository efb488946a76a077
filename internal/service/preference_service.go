package service

import (
	"context"
	"fmt"

	"rice-shop/internal/model"
	"rice-shop/internal/repository"

	"github.com/rs/zerolog"
)

// preferenceService implements PreferenceService.
type preferenceService struct {
	prefRepo repository.PreferenceRepository
	logger   zerolog.Logger
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(prefRepo repository.PreferenceRepository, logger zerolog.Logger) PreferenceService {
	return &preferenceService{
		prefRepo: prefRepo,
		logger:   logger.With().Str("service", "preference").Logger(),
	}
}

// Set stores the preferred language for an email.
func (s *preferenceService) Set(ctx context.Context, req *model.PreferenceRequest) (*model.UserPreference, error) {
	if req == nil || req.Email == "" || req.Language == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Email and language are required")
	}

	if !model.ValidLanguage(req.Language) {
		return nil, model.ErrInvalidLanguage
	}

	pref, err := s.prefRepo.Upsert(ctx, req.Email, req.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to save preference: %w", err)
	}

	return pref, nil
}

// Get returns the stored preference, defaulting to English for unknown
// emails.
func (s *preferenceService) Get(ctx context.Context, email string) (*model.UserPreference, error) {
	pref, err := s.prefRepo.Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	if pref == nil {
		return &model.UserPreference{Email: email, Language: model.LanguageEnglish}, nil
	}
	return pref, nil
}
