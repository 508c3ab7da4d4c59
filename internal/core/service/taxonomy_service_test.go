package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobhunter/platform/internal/core/domain"
)

type stubSkillRepo struct {
	skills map[string]*domain.Skill
	nextID int
}

func newStubSkillRepo() *stubSkillRepo {
	return &stubSkillRepo{skills: make(map[string]*domain.Skill)}
}

func (r *stubSkillRepo) Create(_ context.Context, s *domain.Skill) (*domain.Skill, error) {
	r.nextID++
	clone := *s
	clone.ID = fmt.Sprintf("skill_%d", r.nextID)
	r.skills[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubSkillRepo) FindByID(_ context.Context, id string) (*domain.Skill, error) {
	if s, ok := r.skills[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrSkillNotFound
}

func (r *stubSkillRepo) FindByName(_ context.Context, name string) (*domain.Skill, error) {
	for _, s := range r.skills {
		if strings.EqualFold(s.Name, name) {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrSkillNotFound
}

func (r *stubSkillRepo) List(_ context.Context, category string, limit int) ([]*domain.Skill, error) {
	var out []*domain.Skill
	for _, s := range r.skills {
		if category == "" || s.Category == category {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubSkillRepo) Update(_ context.Context, s *domain.Skill) error {
	if _, ok := r.skills[s.ID]; !ok {
		return domain.ErrSkillNotFound
	}
	clone := *s
	r.skills[s.ID] = &clone
	return nil
}

func (r *stubSkillRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.skills[id]; !ok {
		return domain.ErrSkillNotFound
	}
	delete(r.skills, id)
	return nil
}

type stubBenefitRepo struct {
	benefits map[string]*domain.Benefit
	nextID   int
}

func newStubBenefitRepo() *stubBenefitRepo {
	return &stubBenefitRepo{benefits: make(map[string]*domain.Benefit)}
}

func (r *stubBenefitRepo) Create(_ context.Context, b *domain.Benefit) (*domain.Benefit, error) {
	r.nextID++
	clone := *b
	clone.ID = fmt.Sprintf("benefit_%d", r.nextID)
	r.benefits[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBenefitRepo) FindByID(_ context.Context, id string) (*domain.Benefit, error) {
	if b, ok := r.benefits[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, domain.ErrBenefitNotFound
}

func (r *stubBenefitRepo) FindByName(_ context.Context, name string) (*domain.Benefit, error) {
	for _, b := range r.benefits {
		if strings.EqualFold(b.Name, name) {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBenefitNotFound
}

func (r *stubBenefitRepo) List(_ context.Context, category string, limit int) ([]*domain.Benefit, error) {
	var out []*domain.Benefit
	for _, b := range r.benefits {
		if category == "" || b.Category == category {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBenefitRepo) Update(_ context.Context, b *domain.Benefit) error {
	if _, ok := r.benefits[b.ID]; !ok {
		return domain.ErrBenefitNotFound
	}
	clone := *b
	r.benefits[b.ID] = &clone
	return nil
}

func (r *stubBenefitRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.benefits[id]; !ok {
		return domain.ErrBenefitNotFound
	}
	delete(r.benefits, id)
	return nil
}

func newTaxonomyService() *TaxonomyService {
	return NewTaxonomyService(newStubSkillRepo(), newStubBenefitRepo(), zerolog.Nop())
}

func TestTaxonomyService_CreateSkill_CaseInsensitiveDuplicate(t *testing.T) {
	svc := newTaxonomyService()

	if _, err := svc.CreateSkill(context.Background(), "Go", "language"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateSkill(context.Background(), "go", "language"); !errors.Is(err, domain.ErrTaxonomyNameTaken) {
		t.Fatalf("expected ErrTaxonomyNameTaken, got %v", err)
	}
	if _, err := svc.CreateSkill(context.Background(), "  Go  ", ""); !errors.Is(err, domain.ErrTaxonomyNameTaken) {
		t.Fatalf("expected ErrTaxonomyNameTaken for padded name, got %v", err)
	}
}

func TestTaxonomyService_SkillCRUD(t *testing.T) {
	svc := newTaxonomyService()

	skill, err := svc.CreateSkill(context.Background(), "Kubernetes", "infra")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.GetSkill(context.Background(), skill.ID)
	if err != nil || got.Name != "Kubernetes" {
		t.Fatalf("get failed: %v %+v", err, got)
	}

	updated, err := svc.UpdateSkill(context.Background(), skill.ID, "K8s", "")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "K8s" || updated.Category != "infra" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := svc.DeleteSkill(context.Background(), skill.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetSkill(context.Background(), skill.ID); !errors.Is(err, domain.ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestTaxonomyService_ListSkills_ByCategory(t *testing.T) {
	svc := newTaxonomyService()

	_, _ = svc.CreateSkill(context.Background(), "Go", "language")
	_, _ = svc.CreateSkill(context.Background(), "Postgres", "database")

	skills, err := svc.ListSkills(context.Background(), "language")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "Go" {
		t.Fatalf("unexpected category filter result: %+v", skills)
	}
}

func TestTaxonomyService_CreateBenefit_Duplicate(t *testing.T) {
	svc := newTaxonomyService()

	if _, err := svc.CreateBenefit(context.Background(), "Health Insurance", "health"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateBenefit(context.Background(), "health insurance", ""); !errors.Is(err, domain.ErrTaxonomyNameTaken) {
		t.Fatalf("expected ErrTaxonomyNameTaken, got %v", err)
	}
}
