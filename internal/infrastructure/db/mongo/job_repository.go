package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

const collectionJobs = "jobs"

// JobRepository persists job listings.
type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clone := *job
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}

	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return &clone, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var j domain.Job
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": job.ID}, job)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) List(ctx context.Context, page, size int) ([]*domain.Job, int64, error) {
	return r.page(ctx, bson.M{"is_active": true}, page, size)
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID string, activeOnly bool) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"employer_id": employerID}
	if activeOnly {
		filter["is_active"] = true
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list employer jobs: %w", err)
	}
	defer cur.Close(ctx)

	return decodeJobs(ctx, cur)
}

func (r *JobRepository) Featured(ctx context.Context, limit int) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"is_featured": true, "is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("featured jobs: %w", err)
	}
	defer cur.Close(ctx)

	return decodeJobs(ctx, cur)
}

func (r *JobRepository) Search(ctx context.Context, filter ports.SearchJobsFilter) ([]*domain.Job, int64, error) {
	return r.page(ctx, searchFilter(filter), filter.Page, filter.Size)
}

// searchFilter translates the port filter into a Mongo query. Free-text query
// matches title, description and company name case-insensitively.
func searchFilter(f ports.SearchJobsFilter) bson.M {
	filter := bson.M{"is_active": true}

	if f.Query != "" {
		rx := bson.M{"$regex": f.Query, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"description": rx},
			bson.M{"company_name": rx},
		}
	}
	if f.Location != "" {
		filter["location"] = bson.M{"$regex": f.Location, "$options": "i"}
	}
	if f.JobType != "" {
		filter["job_type"] = f.JobType
	}
	if f.ExperienceLevel != "" {
		filter["experience_level"] = f.ExperienceLevel
	}
	if f.SalaryMin > 0 {
		filter["salary_max"] = bson.M{"$gte": f.SalaryMin}
	}
	if f.SalaryMax > 0 {
		filter["salary_min"] = bson.M{"$lte": f.SalaryMax}
	}
	if f.RemoteWork != nil {
		filter["remote_work"] = *f.RemoteWork
	}
	if f.VisaSponsorship != nil {
		filter["visa_sponsorship"] = *f.VisaSponsorship
	}
	return filter
}

func (r *JobRepository) page(ctx context.Context, filter bson.M, page, size int) ([]*domain.Job, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs, err := decodeJobs(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepository) IncrementViews(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"view_count": 1}})
	return err
}

func (r *JobRepository) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employer_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "is_featured", Value: 1}}},
		{Keys: bson.D{{Key: "job_type", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeJobs(ctx context.Context, cur *mongo.Cursor) ([]*domain.Job, error) {
	var jobs []*domain.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	if jobs == nil {
		jobs = []*domain.Job{}
	}
	return jobs, nil
}
