package ports

import (
	"context"

	"github.com/jobhunter/platform/internal/core/domain"
)

// SkillRepository defines persistence operations for the skill taxonomy.
type SkillRepository interface {
	Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, name string) (*domain.Skill, error)
	List(ctx context.Context, category string, limit int) ([]*domain.Skill, error)
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id string) error
}

// BenefitRepository defines persistence operations for the benefit taxonomy.
type BenefitRepository interface {
	Create(ctx context.Context, b *domain.Benefit) (*domain.Benefit, error)
	FindByID(ctx context.Context, id string) (*domain.Benefit, error)
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, name string) (*domain.Benefit, error)
	List(ctx context.Context, category string, limit int) ([]*domain.Benefit, error)
	Update(ctx context.Context, b *domain.Benefit) error
	Delete(ctx context.Context, id string) error
}

// TaxonomyService manages the skill and benefit vocabularies. Creation rejects
// names that already exist (case-insensitive) so free-text tagging UIs cannot
// flood the vocabulary with near-duplicates.
type TaxonomyService interface {
	ListSkills(ctx context.Context, category string) ([]*domain.Skill, error)
	CreateSkill(ctx context.Context, name, category string) (*domain.Skill, error)
	GetSkill(ctx context.Context, id string) (*domain.Skill, error)
	UpdateSkill(ctx context.Context, id, name, category string) (*domain.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	ListBenefits(ctx context.Context, category string) ([]*domain.Benefit, error)
	CreateBenefit(ctx context.Context, name, category string) (*domain.Benefit, error)
	GetBenefit(ctx context.Context, id string) (*domain.Benefit, error)
	UpdateBenefit(ctx context.Context, id, name, category string) (*domain.Benefit, error)
	DeleteBenefit(ctx context.Context, id string) error
}
