package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

const taxonomyListLimit = 500

// TaxonomyService manages the skill and benefit vocabularies.
type TaxonomyService struct {
	skills   ports.SkillRepository
	benefits ports.BenefitRepository
	logger   zerolog.Logger
}

func NewTaxonomyService(skills ports.SkillRepository, benefits ports.BenefitRepository, logger zerolog.Logger) *TaxonomyService {
	return &TaxonomyService{skills: skills, benefits: benefits, logger: logger}
}

func (s *TaxonomyService) ListSkills(ctx context.Context, category string) ([]*domain.Skill, error) {
	return s.skills.List(ctx, category, taxonomyListLimit)
}

func (s *TaxonomyService) CreateSkill(ctx context.Context, name, category string) (*domain.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrSkillNotFound
	}

	// Name uniqueness is case-insensitive so "Go" and "go" collapse.
	if existing, err := s.skills.FindByName(ctx, name); err == nil && existing != nil {
		return nil, domain.ErrTaxonomyNameTaken
	} else if err != nil && !errors.Is(err, domain.ErrSkillNotFound) {
		return nil, err
	}

	created, err := s.skills.Create(ctx, &domain.Skill{
		Name:      name,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("skill", created.Name).Msg("skill created")
	return created, nil
}

func (s *TaxonomyService) GetSkill(ctx context.Context, id string) (*domain.Skill, error) {
	return s.skills.FindByID(ctx, id)
}

func (s *TaxonomyService) UpdateSkill(ctx context.Context, id, name, category string) (*domain.Skill, error) {
	skill, err := s.skills.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		skill.Name = name
	}
	if category != "" {
		skill.Category = category
	}
	if err := s.skills.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *TaxonomyService) DeleteSkill(ctx context.Context, id string) error {
	if _, err := s.skills.FindByID(ctx, id); err != nil {
		return err
	}
	return s.skills.Delete(ctx, id)
}

func (s *TaxonomyService) ListBenefits(ctx context.Context, category string) ([]*domain.Benefit, error) {
	return s.benefits.List(ctx, category, taxonomyListLimit)
}

func (s *TaxonomyService) CreateBenefit(ctx context.Context, name, category string) (*domain.Benefit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrBenefitNotFound
	}

	if existing, err := s.benefits.FindByName(ctx, name); err == nil && existing != nil {
		return nil, domain.ErrTaxonomyNameTaken
	} else if err != nil && !errors.Is(err, domain.ErrBenefitNotFound) {
		return nil, err
	}

	created, err := s.benefits.Create(ctx, &domain.Benefit{
		Name:      name,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("benefit", created.Name).Msg("benefit created")
	return created, nil
}

func (s *TaxonomyService) GetBenefit(ctx context.Context, id string) (*domain.Benefit, error) {
	return s.benefits.FindByID(ctx, id)
}

func (s *TaxonomyService) UpdateBenefit(ctx context.Context, id, name, category string) (*domain.Benefit, error) {
	benefit, err := s.benefits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		benefit.Name = name
	}
	if category != "" {
		benefit.Category = category
	}
	if err := s.benefits.Update(ctx, benefit); err != nil {
		return nil, err
	}
	return benefit, nil
}

func (s *TaxonomyService) DeleteBenefit(ctx context.Context, id string) error {
	if _, err := s.benefits.FindByID(ctx, id); err != nil {
		return err
	}
	return s.benefits.Delete(ctx, id)
}
