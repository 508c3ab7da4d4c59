package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobhunter/platform/internal/core/domain"
)

const (
	collectionSkills   = "skills"
	collectionBenefits = "benefits"
)

// nameCollation makes the unique name index case-insensitive.
var nameCollation = &options.Collation{Locale: "en", Strength: 2}

// SkillRepository persists the skill taxonomy.
type SkillRepository struct {
	col *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{col: db.Collection(collectionSkills)}
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clone := *s
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}

	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrTaxonomyNameTaken
		}
		return nil, fmt.Errorf("insert skill: %w", err)
	}
	return &clone, nil
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Skill
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}
	return &s, nil
}

func (r *SkillRepository) FindByName(ctx context.Context, name string) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Skill
	err := r.col.FindOne(ctx, bson.M{"name": exactNameMatch(name)}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill by name: %w", err)
	}
	return &s, nil
}

func (r *SkillRepository) List(ctx context.Context, category string, limit int) ([]*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer cur.Close(ctx)

	var skills []*domain.Skill
	if err := cur.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	if skills == nil {
		skills = []*domain.Skill{}
	}
	return skills, nil
}

func (r *SkillRepository) Update(ctx context.Context, s *domain.Skill) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrTaxonomyNameTaken
		}
		return fmt.Errorf("update skill: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepository) EnsureIndexes(ctx context.Context) error {
	return ensureNameIndexes(ctx, r.col)
}

// BenefitRepository persists the benefit taxonomy.
type BenefitRepository struct {
	col *mongo.Collection
}

func NewBenefitRepository(db *mongo.Database) *BenefitRepository {
	return &BenefitRepository{col: db.Collection(collectionBenefits)}
}

func (r *BenefitRepository) Create(ctx context.Context, b *domain.Benefit) (*domain.Benefit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clone := *b
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}

	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrTaxonomyNameTaken
		}
		return nil, fmt.Errorf("insert benefit: %w", err)
	}
	return &clone, nil
}

func (r *BenefitRepository) FindByID(ctx context.Context, id string) (*domain.Benefit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Benefit
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBenefitNotFound
		}
		return nil, fmt.Errorf("find benefit: %w", err)
	}
	return &b, nil
}

func (r *BenefitRepository) FindByName(ctx context.Context, name string) (*domain.Benefit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Benefit
	err := r.col.FindOne(ctx, bson.M{"name": exactNameMatch(name)}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBenefitNotFound
		}
		return nil, fmt.Errorf("find benefit by name: %w", err)
	}
	return &b, nil
}

func (r *BenefitRepository) List(ctx context.Context, category string, limit int) ([]*domain.Benefit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list benefits: %w", err)
	}
	defer cur.Close(ctx)

	var benefits []*domain.Benefit
	if err := cur.All(ctx, &benefits); err != nil {
		return nil, fmt.Errorf("decode benefits: %w", err)
	}
	if benefits == nil {
		benefits = []*domain.Benefit{}
	}
	return benefits, nil
}

func (r *BenefitRepository) Update(ctx context.Context, b *domain.Benefit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrTaxonomyNameTaken
		}
		return fmt.Errorf("update benefit: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBenefitNotFound
	}
	return nil
}

func (r *BenefitRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete benefit: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBenefitNotFound
	}
	return nil
}

func (r *BenefitRepository) EnsureIndexes(ctx context.Context) error {
	return ensureNameIndexes(ctx, r.col)
}

// exactNameMatch builds a case-insensitive whole-string match for a name.
func exactNameMatch(name string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(name) + "$", "$options": "i"}
}

func ensureNameIndexes(ctx context.Context, col *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(nameCollation),
		},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := col.Indexes().CreateMany(ctx, indexes)
	return err
}
