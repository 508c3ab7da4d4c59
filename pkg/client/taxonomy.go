package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const (
	familySkills   = "skills"
	familyBenefits = "benefits"
)

// SkillsClient reads and mutates the skill vocabulary.
type SkillsClient struct {
	c *Client
}

type taxonomyInput struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// List returns the vocabulary, optionally filtered by category.
func (s *SkillsClient) List(ctx context.Context, category string) ([]Skill, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	key := cacheKey(familySkills, query)
	if cached, ok := s.c.cache.get(key); ok {
		return cached.([]Skill), nil
	}

	var skills []Skill
	if err := s.c.do(ctx, http.MethodGet, "/skills", query, nil, nil, &skills); err != nil {
		return nil, err
	}
	s.c.cache.put(key, skills)
	return skills, nil
}

// Create adds a skill and invalidates the cached vocabulary.
func (s *SkillsClient) Create(ctx context.Context, name, category string) (*Skill, error) {
	var skill Skill
	if err := s.c.do(ctx, http.MethodPost, "/skills", nil, nil, taxonomyInput{Name: name, Category: category}, &skill); err != nil {
		return nil, err
	}
	s.c.cache.invalidate(familySkills)
	return &skill, nil
}

// GetOrCreate returns the skill matching name case-insensitively, creating
// it with exactly one call when absent. Best effort: two sessions racing on
// the same name surface the server's duplicate error to the loser.
func (s *SkillsClient) GetOrCreate(ctx context.Context, name string) (*Skill, error) {
	skills, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range skills {
		if strings.EqualFold(skills[i].Name, name) {
			return &skills[i], nil
		}
	}
	return s.Create(ctx, name, "")
}

// Delete removes a skill and invalidates the cached vocabulary. Admin only.
func (s *SkillsClient) Delete(ctx context.Context, id string) error {
	if err := s.c.do(ctx, http.MethodDelete, "/skills/"+id, nil, nil, nil, nil); err != nil {
		return err
	}
	s.c.cache.invalidate(familySkills)
	return nil
}

// BenefitsClient reads and mutates the benefit vocabulary.
type BenefitsClient struct {
	c *Client
}

// List returns the vocabulary, optionally filtered by category.
func (b *BenefitsClient) List(ctx context.Context, category string) ([]Benefit, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	key := cacheKey(familyBenefits, query)
	if cached, ok := b.c.cache.get(key); ok {
		return cached.([]Benefit), nil
	}

	var benefits []Benefit
	if err := b.c.do(ctx, http.MethodGet, "/benefits", query, nil, nil, &benefits); err != nil {
		return nil, err
	}
	b.c.cache.put(key, benefits)
	return benefits, nil
}

// Create adds a benefit and invalidates the cached vocabulary.
func (b *BenefitsClient) Create(ctx context.Context, name, category string) (*Benefit, error) {
	var benefit Benefit
	if err := b.c.do(ctx, http.MethodPost, "/benefits", nil, nil, taxonomyInput{Name: name, Category: category}, &benefit); err != nil {
		return nil, err
	}
	b.c.cache.invalidate(familyBenefits)
	return &benefit, nil
}

// GetOrCreate returns the benefit matching name case-insensitively, creating
// it with exactly one call when absent.
func (b *BenefitsClient) GetOrCreate(ctx context.Context, name string) (*Benefit, error) {
	benefits, err := b.List(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range benefits {
		if strings.EqualFold(benefits[i].Name, name) {
			return &benefits[i], nil
		}
	}
	return b.Create(ctx, name, "")
}

// Delete removes a benefit and invalidates the cached vocabulary. Admin only.
func (b *BenefitsClient) Delete(ctx context.Context, id string) error {
	if err := b.c.do(ctx, http.MethodDelete, "/benefits/"+id, nil, nil, nil, nil); err != nil {
		return err
	}
	b.c.cache.invalidate(familyBenefits)
	return nil
}
