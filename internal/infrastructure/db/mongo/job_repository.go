package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

const collectionJobs = "jobs"

// JobRepository persists jobs in MongoDB.
type JobRepository struct {
	col *mongo.Collection
	seq ports.Sequence
}

func NewJobRepository(db *mongo.Database, seq ports.Sequence) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs), seq: seq}
}

type mongoJob struct {
	ID           int64    `bson:"_id"`
	Title        string   `bson:"title"`
	Description  string   `bson:"description"`
	Location     string   `bson:"location"`
	Urgency      string   `bson:"urgency"`
	BudgetMin    *float64 `bson:"budget_min,omitempty"`
	BudgetMax    *float64 `bson:"budget_max,omitempty"`
	Status       string   `bson:"status"`
	CustomerID   int64    `bson:"customer_id"`
	CustomerName string   `bson:"customer_name"`
	ServiceID    *int64   `bson:"service_id,omitempty"`
	CreatedAt    int64    `bson:"created_at"`
	UpdatedAt    int64    `bson:"updated_at"`
}

func toMongoJob(j *domain.Job) mongoJob {
	return mongoJob{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Location:     j.Location,
		Urgency:      j.Urgency,
		BudgetMin:    j.BudgetMin,
		BudgetMax:    j.BudgetMax,
		Status:       string(j.Status),
		CustomerID:   j.CustomerID,
		CustomerName: j.CustomerName,
		ServiceID:    j.ServiceID,
		CreatedAt:    j.CreatedAt.Unix(),
		UpdatedAt:    j.UpdatedAt.Unix(),
	}
}

func (mj mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:           mj.ID,
		Title:        mj.Title,
		Description:  mj.Description,
		Location:     mj.Location,
		Urgency:      mj.Urgency,
		BudgetMin:    mj.BudgetMin,
		BudgetMax:    mj.BudgetMax,
		Status:       domain.JobStatus(mj.Status),
		CustomerID:   mj.CustomerID,
		CustomerName: mj.CustomerName,
		ServiceID:    mj.ServiceID,
		CreatedAt:    unixToTime(mj.CreatedAt),
		UpdatedAt:    unixToTime(mj.UpdatedAt),
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.Next(ctx, ports.SeqJobs)
	if err != nil {
		return nil, fmt.Errorf("allocate job id: %w", err)
	}

	created := *job
	created.ID = id

	if _, err := r.col.InsertOne(ctx, toMongoJob(&created)); err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mj mongoJob
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return mj.toDomain(), nil
}

func (r *JobRepository) List(ctx context.Context, filter ports.JobFilter) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CustomerID != 0 {
		query["customer_id"] = filter.CustomerID
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := []*domain.Job{}
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC().Unix(),
	}}

	var mj mongoJob
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mj)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job status: %w", err)
	}
	return mj.toDomain(), nil
}

// EnsureIndexes creates the lookup indexes for job listings.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
