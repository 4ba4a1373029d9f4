package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/constants"
	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/region"
	"github.com/AndrewK67/shorts-studio/internal/service/cache"
	"github.com/AndrewK67/shorts-studio/internal/service/store"
	"github.com/AndrewK67/shorts-studio/internal/util"
	"github.com/AndrewK67/shorts-studio/pkg/errors"
)

const cacheKeyPrefix = "studio:profile:"

// Service owns creator profile persistence and validation.
type Service struct {
	store   store.Store
	cache   *cache.CacheService // nil when Redis is disabled
	catalog *region.Catalog
	logger  *zap.Logger
}

func NewService(st store.Store, cs *cache.CacheService, catalog *region.Catalog, logger *zap.Logger) *Service {
	return &Service{store: st, cache: cs, catalog: catalog, logger: logger}
}

// Save validates and persists a profile, assigning an ID when missing.
// An existing ID is treated as an upsert.
func (s *Service) Save(ctx context.Context, p *domain.CreatorProfile) error {
	if err := s.validate(p); err != nil {
		return err
	}

	isNew := p.ID == ""
	if isNew {
		p.ID = uuid.NewString()
	}

	rec, err := store.NewRecord(p.ID, p.UserID, p)
	if err != nil {
		return err
	}

	if isNew {
		err = s.store.Create(ctx, store.CollectionProfiles, rec)
	} else {
		err = s.store.Update(ctx, store.CollectionProfiles, rec)
	}
	if err != nil {
		return err
	}

	if s.cache != nil {
		if cerr := s.cache.Set(ctx, cacheKeyPrefix+p.ID, p, constants.CacheTTL.CreatorProfile); cerr != nil {
			s.logger.Warn("Profile cache write failed", zap.String("profile_id", p.ID), zap.Error(cerr))
		}
	}

	s.logger.Info("Profile saved",
		zap.String("profile_id", p.ID),
		zap.String("niche", p.Niche),
		zap.Bool("created", isNew))
	return nil
}

// Get loads a profile by ID, reading through the cache when available.
// A missing profile returns (nil, nil).
func (s *Service) Get(ctx context.Context, id string) (*domain.CreatorProfile, error) {
	if id == "" {
		return nil, errors.NewValidationError("profile id is required", "id", id)
	}

	if s.cache != nil {
		var cached domain.CreatorProfile
		if err := s.cache.Get(ctx, cacheKeyPrefix+id, &cached); err == nil && cached.ID != "" {
			return &cached, nil
		}
	}

	rec, err := s.store.FindByID(ctx, store.CollectionProfiles, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	var p domain.CreatorProfile
	if err := rec.Decode(&p); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cerr := s.cache.Set(ctx, cacheKeyPrefix+id, &p, constants.CacheTTL.CreatorProfile); cerr != nil {
			s.logger.Warn("Profile cache write failed", zap.String("profile_id", id), zap.Error(cerr))
		}
	}
	return &p, nil
}

// Delete removes a profile and its cache entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("profile id is required", "id", id)
	}
	if err := s.store.Delete(ctx, store.CollectionProfiles, id); err != nil {
		return err
	}
	if s.cache != nil {
		if cerr := s.cache.Del(ctx, cacheKeyPrefix+id); cerr != nil {
			s.logger.Warn("Profile cache invalidation failed", zap.String("profile_id", id), zap.Error(cerr))
		}
	}
	return nil
}

func (s *Service) validate(p *domain.CreatorProfile) error {
	if p == nil {
		return errors.NewValidationError("profile is required", "profile", nil)
	}
	if strings.TrimSpace(p.Niche) == "" {
		return errors.NewValidationError("niche is required", "niche", p.Niche)
	}
	if len(p.Niche) > constants.InputLimits.MaxNicheLength {
		return errors.NewValidationError(
			fmt.Sprintf("niche exceeds %d characters", constants.InputLimits.MaxNicheLength),
			"niche", len(p.Niche))
	}
	if len(p.ToneMix) == 0 {
		return errors.NewValidationError("tone mix is required", "tone_mix", nil)
	}
	var tones []string
	for i, share := range p.ToneMix {
		if strings.TrimSpace(share.Tone) == "" {
			return errors.NewValidationError("tone name must not be blank", "tone_mix", i)
		}
		if share.Percent < 0 || share.Percent > 100 {
			return errors.NewValidationError("tone percent must be between 0 and 100", "tone_mix", share.Percent)
		}
		if util.Contains(tones, share.Tone) {
			return errors.NewValidationError("duplicate tone in mix", "tone_mix", share.Tone)
		}
		tones = append(tones, share.Tone)
	}
	for _, phrase := range p.Catchphrases {
		if len(phrase) > constants.InputLimits.MaxCatchphraseLength {
			return errors.NewValidationError(
				fmt.Sprintf("catchphrase exceeds %d characters", constants.InputLimits.MaxCatchphraseLength),
				"catchphrases", phrase)
		}
	}
	if p.CreatorCountry != "" && !s.catalog.Has(p.CreatorCountry) {
		return errors.NewValidationError("unknown creator country", "creator_country", p.CreatorCountry)
	}
	if p.TargetCountry != "" && !s.catalog.Has(p.TargetCountry) {
		return errors.NewValidationError("unknown target country", "target_country", p.TargetCountry)
	}
	return nil
}
