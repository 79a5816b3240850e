package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/ports"
)

const jobsCollection = "jobs"

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type jobDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Company      string             `bson:"company"`
	Category     string             `bson:"category"`
	Location     string             `bson:"location"`
	Salary       string             `bson:"salary"`
	Description  string             `bson:"description"`
	Requirements []string           `bson:"requirements"`
	PostedAt     time.Time          `bson:"posted_at"`
	Image        string             `bson:"image"`
}

func (d *jobDoc) toDomain() *domain.JobPosting {
	return &domain.JobPosting{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Company:      d.Company,
		Category:     d.Category,
		Location:     d.Location,
		Salary:       d.Salary,
		Description:  d.Description,
		Requirements: d.Requirements,
		PostedAt:     d.PostedAt.UTC(),
		Image:        d.Image,
	}
}

func jobToDoc(j *domain.JobPosting) jobDoc {
	return jobDoc{
		Title:        j.Title,
		Company:      j.Company,
		Category:     j.Category,
		Location:     j.Location,
		Salary:       j.Salary,
		Description:  j.Description,
		Requirements: j.Requirements,
		PostedAt:     j.PostedAt,
		Image:        j.Image,
	}
}

// List returns postings matching filter in natural (insertion) order.
// Search uses the collection's $text index.
func (r *JobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.JobPosting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var jobs []*domain.JobPosting
	for cursor.Next(ctx) {
		var doc jobDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

// ReplaceAll wipes the catalog and inserts jobs in its place.
func (r *JobRepository) ReplaceAll(ctx context.Context, jobs []*domain.JobPosting) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("clear jobs: %w", err)
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(jobs))
	for _, j := range jobs {
		docs = append(docs, jobToDoc(j))
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert jobs: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the text index backing search and a category index
// for the exact-match filter.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "company", Value: "text"},
			{Key: "category", Value: "text"},
			{Key: "location", Value: "text"},
			{Key: "description", Value: "text"},
		}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
