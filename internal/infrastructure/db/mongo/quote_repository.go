package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

const collectionQuotes = "quotes"

// QuoteRepository persists quotes in MongoDB.
type QuoteRepository struct {
	col *mongo.Collection
	seq ports.Sequence
}

func NewQuoteRepository(db *mongo.Database, seq ports.Sequence) *QuoteRepository {
	return &QuoteRepository{col: db.Collection(collectionQuotes), seq: seq}
}

type mongoQuote struct {
	ID               int64   `bson:"_id"`
	JobID            int64   `bson:"job_id"`
	ProfessionalID   int64   `bson:"professional_id"`
	ProfessionalName string  `bson:"professional_name"`
	CustomerID       int64   `bson:"customer_id"`
	Amount           float64 `bson:"amount"`
	Notes            string  `bson:"notes,omitempty"`
	Status           string  `bson:"status"`
	CreatedAt        int64   `bson:"created_at"`
}

func toMongoQuote(q *domain.Quote) mongoQuote {
	return mongoQuote{
		ID:               q.ID,
		JobID:            q.JobID,
		ProfessionalID:   q.ProfessionalID,
		ProfessionalName: q.ProfessionalName,
		CustomerID:       q.CustomerID,
		Amount:           q.Amount,
		Notes:            q.Notes,
		Status:           string(q.Status),
		CreatedAt:        q.CreatedAt.Unix(),
	}
}

func (mq mongoQuote) toDomain() *domain.Quote {
	return &domain.Quote{
		ID:               mq.ID,
		JobID:            mq.JobID,
		ProfessionalID:   mq.ProfessionalID,
		ProfessionalName: mq.ProfessionalName,
		CustomerID:       mq.CustomerID,
		Amount:           mq.Amount,
		Notes:            mq.Notes,
		Status:           domain.QuoteStatus(mq.Status),
		CreatedAt:        unixToTime(mq.CreatedAt),
	}
}

func (r *QuoteRepository) Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.Next(ctx, ports.SeqQuotes)
	if err != nil {
		return nil, fmt.Errorf("allocate quote id: %w", err)
	}

	created := *quote
	created.ID = id

	if _, err := r.col.InsertOne(ctx, toMongoQuote(&created)); err != nil {
		return nil, fmt.Errorf("insert quote: %w", err)
	}
	return &created, nil
}

func (r *QuoteRepository) List(ctx context.Context, filter ports.QuoteFilter) ([]*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ProfessionalID != 0 {
		query["professional_id"] = filter.ProfessionalID
	}
	if filter.CustomerID != 0 {
		query["customer_id"] = filter.CustomerID
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer cur.Close(ctx)

	quotes := []*domain.Quote{}
	for cur.Next(ctx) {
		var mq mongoQuote
		if err := cur.Decode(&mq); err != nil {
			return nil, fmt.Errorf("decode quote: %w", err)
		}
		quotes = append(quotes, mq.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

// EnsureIndexes creates the lookup indexes for quote listings.
func (r *QuoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "professional_id", Value: 1}}},
		{Keys: bson.D{{Key: "job_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
