package domain

import (
	"errors"
	"time"
)

var ErrSkillNotFound = errors.New("skill not found")
var ErrBenefitNotFound = errors.New("benefit not found")
var ErrTaxonomyNameTaken = errors.New("name already exists")

// Skill is a free-text taxonomy entry attached to jobs and profiles.
type Skill struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Category  string    `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Benefit is a free-text taxonomy entry attached to job listings.
type Benefit struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Category  string    `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
